package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/backmassage/aspectsort/internal/config"
	"github.com/backmassage/aspectsort/internal/display"
	"github.com/backmassage/aspectsort/internal/fsx"
	"github.com/backmassage/aspectsort/internal/naming"
	"github.com/backmassage/aspectsort/internal/probe"
	"github.com/backmassage/aspectsort/internal/ratio"
)

// Logger is the logging surface the runner needs. *logging.Logger
// satisfies it; tests use a recorder.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// SetupError is a run-level failure: the input directory is unusable or the
// output root could not be created. No file has been touched when it is
// returned.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string { return e.Err.Error() }

func (e *SetupError) Unwrap() error { return e.Err }

// IsSetup reports whether err is a [*SetupError].
func IsSetup(err error) bool {
	var e *SetupError
	return errors.As(err, &e)
}

// MediaFile is one discovered input file.
type MediaFile struct {
	Path  string
	Name  string
	Ratio ratio.Fraction // set once the file has been approximated

	size    int64
	sizeErr error
	sized   bool
}

// NewMediaFile returns a MediaFile for path.
func NewMediaFile(path string) *MediaFile {
	return &MediaFile{Path: path, Name: filepath.Base(path)}
}

// Size returns the file size in bytes. The first call stats the file; later
// calls return the cached result.
func (m *MediaFile) Size() (int64, error) {
	if !m.sized {
		fi, err := os.Stat(m.Path)
		if err == nil {
			m.size = fi.Size()
		}
		m.sizeErr = err
		m.sized = true
	}
	return m.size, m.sizeErr
}

// Sorter runs one sort over cfg.InputDir. Create it with [NewSorter].
type Sorter struct {
	cfg       *config.Config
	log       Logger
	prober    probe.Prober
	allocator *naming.Allocator

	// Out receives the summary. Defaults to os.Stdout.
	Out io.Writer
}

// NewSorter wires a Sorter. prober is usually [probe.Default].
func NewSorter(cfg *config.Config, log Logger, prober probe.Prober) *Sorter {
	return &Sorter{
		cfg:       cfg,
		log:       log,
		prober:    prober,
		allocator: naming.NewAllocator(),
		Out:       os.Stdout,
	}
}

// Run sorts every media file directly inside the input directory into
// <output root>/<ratio label>/ and writes the summary to s.Out.
//
// Per-file problems are logged and counted in RunStats.Skipped. A returned
// error is always a [*SetupError]. Cancelling ctx stops the run between
// files; files already relocated stay where they are and the summary is
// still written.
func (s *Sorter) Run(ctx context.Context) (*RunStats, error) {
	cfg := s.cfg

	fi, err := os.Stat(cfg.InputDir)
	if err != nil {
		return nil, &SetupError{Err: fmt.Errorf("input directory: %w", err)}
	}
	if !fi.IsDir() {
		return nil, &SetupError{Err: fmt.Errorf("input %s is not a directory", cfg.InputDir)}
	}
	files, err := Discover(cfg.InputDir)
	if err != nil {
		return nil, &SetupError{Err: fmt.Errorf("list %s: %w", cfg.InputDir, err)}
	}

	root, err := s.allocator.Allocate(cfg.InputDir, cfg.Limiter)
	if err != nil {
		return nil, &SetupError{Err: fmt.Errorf("output directory: %w", err)}
	}
	inputAbs, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		return nil, &SetupError{Err: err}
	}
	if err := cfg.ValidatePaths(inputAbs, root); err != nil {
		return nil, &SetupError{Err: err}
	}
	if !cfg.DryRun {
		// Mkdir, not MkdirAll: a root created by someone else since
		// allocation must fail rather than be merged into.
		if err := os.Mkdir(root, 0o755); err != nil {
			return nil, &SetupError{Err: fmt.Errorf("create output directory: %w", err)}
		}
	}

	stats := &RunStats{Discovered: len(files)}
	runID := uuid.NewString()
	s.logHeader(runID, inputAbs, root, len(files))

	for i, path := range files {
		if ctx.Err() != nil {
			stats.Interrupted = true
			s.log.Warn("Interrupted after %d of %d files", i, len(files))
			break
		}
		s.processFile(ctx, root, NewMediaFile(path), stats)
	}

	if err := stats.WriteSummary(s.Out); err != nil {
		s.log.Warn("Could not write summary: %v", err)
	}
	for _, label := range stats.Labels() {
		s.log.Debug("  %s: %d", label, stats.Count(label))
	}
	s.log.Info("Run %s done: %d sorted, %d skipped, %s", runID,
		stats.Processed(), stats.Skipped, display.FormatMiB(stats.TotalBytes))
	return stats, nil
}

// processFile takes one file through probe, approximate, place and relocate.
func (s *Sorter) processFile(ctx context.Context, root string, mf *MediaFile, stats *RunStats) {
	dims, err := s.prober.Dimensions(ctx, mf.Path)
	if err != nil {
		if ctx.Err() != nil {
			// Cancelled mid-probe; the loop reports the interruption.
			return
		}
		s.skip(mf, stats, err)
		return
	}

	frac, err := ratio.FromDimensions(dims.Width, dims.Height, s.cfg.Limiter)
	if err != nil {
		s.skip(mf, stats, err)
		return
	}
	mf.Ratio = frac
	label := frac.Label()

	// Read before relocation: a moved source is gone afterwards.
	size, err := mf.Size()
	if err != nil {
		s.skip(mf, stats, err)
		return
	}
	s.log.Debug("%s: %s via %s, %s -> %s", mf.Name,
		display.FormatDimensions(dims.Width, dims.Height), dims.Source, display.FormatBytes(size), frac)

	dir := naming.RatioDir(root, label)
	if s.cfg.DryRun {
		s.log.Success("[DRY] Would %s: %s -> %s", s.cfg.Mode, mf.Name, label)
		stats.Add(label, size)
		return
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.skip(mf, stats, fmt.Errorf("create %s: %w", label, err))
		return
	}
	relocate := fsx.Copy
	if s.cfg.Mode == config.ModeMove {
		relocate = fsx.Move
	}
	if err := relocate(mf.Path, filepath.Join(dir, mf.Name)); err != nil {
		s.skip(mf, stats, err)
		return
	}

	stats.Add(label, size)
	s.log.Success("Sorted: %s -> %s", mf.Name, label)
}

func (s *Sorter) skip(mf *MediaFile, stats *RunStats, err error) {
	stats.Skipped++
	s.log.Error("Skipping %s: %v", mf.Name, err)
}

func (s *Sorter) logHeader(runID, input, root string, n int) {
	cfg := s.cfg
	s.log.Info("=== Run %s ===", runID)
	s.log.Info("In:  %s", input)
	s.log.Info("Out: %s", root)
	s.log.Info("Limiter: %d, mode: %s, %d media files", cfg.Limiter, cfg.Mode, n)
	if cfg.DryRun {
		s.log.Warn("DRY RUN: no files will be relocated")
	}
}
