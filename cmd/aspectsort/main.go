// Command aspectsort sorts the images and videos in a directory into
// subdirectories named after their approximate aspect ratio.
//
// It parses flags, validates configuration, and either runs dependency
// diagnostics (--check) or the sort pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/aspectsort/internal/check"
	"github.com/backmassage/aspectsort/internal/config"
	"github.com/backmassage/aspectsort/internal/display"
	"github.com/backmassage/aspectsort/internal/logging"
	"github.com/backmassage/aspectsort/internal/pipeline"
	"github.com/backmassage/aspectsort/internal/probe"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// exitInterrupted follows the shell convention for SIGINT (128 + 2).
const exitInterrupted = 130

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. Until the logger exists errors go straight to
	// stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "aspectsort: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'aspectsort --help' for usage.")
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "aspectsort: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aspectsort: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout)
	log.Info("aspectsort v%s (%s)", version, commit)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Still images need no external tools, so a missing ffprobe only
	// narrows what can be sorted.
	ffprobeBin := cfg.FFprobeBin
	if err := check.CheckDeps(&cfg); err != nil {
		log.Warn("%v: video files will be skipped", err)
		ffprobeBin = ""
	}
	prober := probe.Default(ffprobeBin)
	log.Debug("Dimension providers: %v", prober.Providers())

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current file")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Sort.
	stats, err := pipeline.NewSorter(&cfg, log, prober).Run(ctx)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Interrupted {
		return exitInterrupted
	}
	if log.FilePath() != "" {
		log.Info("Log written to %s", log.FilePath())
	}
	return 0
}
