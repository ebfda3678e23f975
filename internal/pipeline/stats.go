package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/aspectsort/internal/display"
)

const summaryRule = "=============================="

// RunStats tracks per-ratio counts and byte totals across a run. The zero
// value is ready to use.
type RunStats struct {
	Discovered  int   // media files found in the input directory
	Skipped     int   // files that failed to probe or relocate
	TotalBytes  int64 // bytes of every processed file
	Interrupted bool  // the run stopped early on cancellation

	counts map[string]int
	order  []string // labels in first-seen order
}

// Add records one processed file of the given size under label.
func (s *RunStats) Add(label string, bytes int64) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	if _, seen := s.counts[label]; !seen {
		s.order = append(s.order, label)
	}
	s.counts[label]++
	s.TotalBytes += bytes
}

// Processed returns the number of files recorded with Add.
func (s *RunStats) Processed() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// Count returns the number of files recorded under label.
func (s *RunStats) Count(label string) int {
	return s.counts[label]
}

// Labels returns the recorded labels in the order they were first seen.
func (s *RunStats) Labels() []string {
	return append([]string(nil), s.order...)
}

// MostCommon returns the label with the highest count. Ties go to the label
// seen first. ok is false when nothing was recorded.
func (s *RunStats) MostCommon() (label string, count int, ok bool) {
	for _, l := range s.order {
		if c := s.counts[l]; c > count {
			label, count, ok = l, c, true
		}
	}
	return label, count, ok
}

// WriteSummary renders the end-of-run report to w.
func (s *RunStats) WriteSummary(w io.Writer) error {
	var b strings.Builder
	b.WriteString(summaryRule + "\n")
	b.WriteString("SORT SUMMARY\n")
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "Total Files Processed: %d\n", s.Processed())
	fmt.Fprintf(&b, "Total Data handled:    %s\n", display.FormatMiB(s.TotalBytes))
	if label, count, ok := s.MostCommon(); ok {
		fmt.Fprintf(&b, "Most Common Ratio: %s (%d files)\n", label, count)
	}
	b.WriteString(summaryRule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

