// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects how files reach the output tree.
type Mode string

const (
	ModeCopy Mode = "copy" // Duplicate, preserving timestamps (default).
	ModeMove Mode = "move" // Relocate; the source entry is removed.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultLimiter is the largest ratio denominator used when none is given.
const DefaultLimiter = 10

// DefaultLogFile is created (or appended to) in the working directory.
const DefaultLogFile = "sort_log.txt"

// ErrInvalidLimiter is returned by [Config.Validate] for limiters below 1.
var ErrInvalidLimiter = errors.New("limiter must be a positive integer")

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Positional arguments.
	InputDir string // Default: ".".
	Limiter  int    // Default: 10. Largest denominator of a ratio label.

	// Behavior.
	Mode   Mode // Default: copy. --move switches to move.
	DryRun bool // Log placements without touching the file system.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Default: "sort_log.txt". Empty disables the file sink.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Dimension probing (not user-configurable).
	FFprobeBin string // Default: "ffprobe", resolved on PATH.
}

// DefaultConfig returns a Config with every default applied.
// Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		InputDir:   ".",
		Limiter:    DefaultLimiter,
		Mode:       ModeCopy,
		DryRun:     false,
		Verbose:    false,
		ColorMode:  ColorAuto,
		LogFile:    DefaultLogFile,
		CheckOnly:  false,
		FFprobeBin: "ffprobe",
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and the limiter. The input directory only has
// to be non-empty here; whether it is a directory is checked when the run
// starts.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeCopy, ModeMove:
		// valid
	default:
		return fmt.Errorf("invalid mode %q (use 'copy' or 'move')", c.Mode)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q", c.ColorMode)
	}

	if c.CheckOnly {
		return nil
	}
	if c.Limiter < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidLimiter, c.Limiter)
	}
	if c.InputDir == "" {
		return errors.New("need a target directory")
	}
	return nil
}

// ValidatePaths ensures the output root is not the input directory itself.
// Both arguments must be absolute, cleaned paths. The output root normally
// sits beside the input directory; nesting is allowed because discovery is
// not recursive and only regular files are sorted.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if filepath.Clean(outputAbs) == filepath.Clean(inputAbs) {
		return errors.New("output directory must differ from the target directory")
	}
	return nil
}
