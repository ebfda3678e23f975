// Package display formats sizes and prints the startup banner.
package display

import (
	"fmt"
)

const mebibyte = 1024 * 1024

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatMiB returns bytes as mebibytes with two decimals (e.g. "1.50 MiB"),
// the fixed unit of the run summary.
func FormatMiB(bytes int64) string {
	return fmt.Sprintf("%.2f MiB", float64(bytes)/mebibyte)
}

// FormatDimensions returns "WxH".
func FormatDimensions(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
