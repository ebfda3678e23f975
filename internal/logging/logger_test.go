package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/aspectsort/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if l.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", l.FilePath())
	}
	l.stdout = io.Discard
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "sort_log.txt")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var console bytes.Buffer
	l.stdout = &console
	l.stderr = &console

	l.Info("Sorted: %s -> %s", "a.jpg", "16X9")
	l.Error("Skipping %s: %s", "b.jpg", "no dimensions")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	b, _ := os.ReadFile(cfg.LogFile)
	for _, want := range []string{"[INFO] Sorted: a.jpg -> 16X9", "[ERROR] Skipping b.jpg: no dimensions"} {
		if !bytes.Contains(b, []byte(want)) {
			t.Errorf("log file missing %q:\n%s", want, b)
		}
		if !bytes.Contains(console.Bytes(), []byte(want)) {
			t.Errorf("console missing %q:\n%s", want, console.String())
		}
	}
}

func TestNewLogger_AppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "sort_log.txt")

	for _, msg := range []string{"first run", "second run"} {
		l, err := NewLogger(&cfg)
		if err != nil {
			t.Fatal(err)
		}
		l.stdout = io.Discard
		l.Info("%s", msg)
		l.Close()
	}

	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("first run")) || !bytes.Contains(b, []byte("second run")) {
		t.Errorf("log file should keep both runs:\n%s", b)
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = ""

	for _, verbose := range []bool{false, true} {
		cfg.Verbose = verbose
		l, err := NewLogger(&cfg)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		l.stdout = &buf
		l.Debug("probe chain: %d providers", 3)
		if got := bytes.Contains(buf.Bytes(), []byte("[DEBUG]")); got != verbose {
			t.Errorf("verbose=%v: debug line written = %v", verbose, got)
		}
	}
}
