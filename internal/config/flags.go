package config

// This file implements CLI flag parsing and help text.
// Positional arguments may be mixed with flags ("dir 16 --move" and
// "--move dir 16" are equivalent), so parsing resumes after each positional.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrHelp is returned by [ParseFlags] after usage or version text was
// printed; the caller should exit successfully.
var ErrHelp = errors.New("help requested")

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints to stdout/stderr and returns [ErrHelp].
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("aspectsort", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var u utilityFlags
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &u)
	defineUtilityFlags(fs, &u)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return err
	}

	applyUtilityFlags(cfg, &u)

	if u.showHelp {
		printUsage(version)
		return ErrHelp
	}
	if u.showVersion {
		fmt.Fprintln(os.Stdout, "aspectsort v"+version)
		return ErrHelp
	}

	return parsePositionalArgs(positional, cfg)
}

// utilityFlags holds flags applied after Parse: color overrides and the
// help/version switches.
type utilityFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineBehaviorFlags registers --move and -d/--dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&modeFlag{&cfg.Mode}, "move", "Move instead of copy")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not create or relocate anything")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run dependency diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, u *utilityFlags) {
	fs.BoolVar(&u.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&u.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&u.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&u.showHelp, "h", false, "Same as --help")
}

// applyUtilityFlags resolves --color / --no-color into cfg.ColorMode.
func applyUtilityFlags(cfg *Config, u *utilityFlags) {
	if u.noColor {
		cfg.ColorMode = ColorNever
	} else if u.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parseInterleaved runs fs.Parse repeatedly, collecting the positional
// arguments that stop the standard flag parser.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// parsePositionalArgs sets InputDir and Limiter from up to two positional args.
func parsePositionalArgs(args []string, cfg *Config) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments: %s", strings.Join(args[2:], " "))
	}
	if len(args) >= 1 {
		cfg.InputDir = NormalizeDirArg(args[0])
		if cfg.InputDir == "" {
			cfg.InputDir = "/"
		}
	}
	if len(args) == 2 {
		n, err := parseInt(args[1], "limiter")
		if err != nil {
			return err
		}
		cfg.Limiter = n
	}
	return nil
}

// parseInt parses a string as an integer; returns a clear error on failure.
func parseInt(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number (got %q)", name, s)
	}
	return n, nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 24 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "aspectsort v" + version + " - sort images and videos by aspect ratio"},
		{"", ""},
		{"  aspectsort [OPTIONS] [directory] [limiter]", ""},
		{"", ""},
		{"Arguments", ""},
		{"  directory", "Target directory (default: .)"},
		{"  limiter", "Largest ratio denominator (default: 10)"},
		{"", ""},
		{"Behavior", ""},
		{"  --move", "Move instead of copy"},
		{"  -d, --dry-run", "Preview only; do not create or relocate anything"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file (default: " + DefaultLogFile + ")"},
		{"  -c, --check", "Report available dimension probes and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// modeFlag is a boolean flag.Value that flips Mode to ModeMove, so --move
// and --move=false both work.
type modeFlag struct{ p *Mode }

func (m *modeFlag) String() string {
	if m.p == nil {
		return "false"
	}
	return strconv.FormatBool(*m.p == ModeMove)
}

func (m *modeFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid --move value %q", s)
	}
	if on {
		*m.p = ModeMove
	} else {
		*m.p = ModeCopy
	}
	return nil
}

func (m *modeFlag) IsBoolFlag() bool { return true }
