// Package check provides system diagnostics (--check mode) and the pre-run
// dependency probe (CheckDeps) for the dimension providers.
package check

import (
	"errors"
	"image"
	"os/exec"
	"strings"

	"github.com/backmassage/aspectsort/internal/config"
	"github.com/backmassage/aspectsort/internal/probe"
)

// ErrFfprobeNotFound is returned by CheckDeps when the ffprobe binary cannot
// be resolved. Runs continue without it; video files are then skipped.
var ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Replaced in tests.
var (
	lookPath   = exec.LookPath
	execOutput = func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}
)

// imageSamples are minimal headers used to confirm each still-image
// decoder is registered.
var imageSamples = []struct {
	format string
	header string
}{
	{"jpeg", "\xff\xd8\xff"},
	{"png", "\x89PNG\r\n\x1a\n"},
	{"gif", "GIF89a"},
	{"webp", "RIFF\x00\x00\x00\x00WEBPVP8"},
}

// RunCheck runs the --check flow: ffprobe availability and version, the
// registered still-image decoders, and the resulting provider order. It
// returns false when ffprobe is missing, since video files cannot be
// sorted without it.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkFFprobe(cfg, log)
	checkImageDecoders(log)

	bin := cfg.FFprobeBin
	if !ok {
		bin = ""
	}
	log.Info("Dimension providers: %s", strings.Join(probe.Default(bin).Providers(), " -> "))
	return ok
}

// checkFFprobe verifies ffprobe resolves and logs its version string.
func checkFFprobe(cfg *config.Config, log Logger) bool {
	path, err := lookPath(cfg.FFprobeBin)
	if err != nil {
		log.Error("ffprobe not found (%s); video files will be skipped", cfg.FFprobeBin)
		return false
	}
	out, err := execOutput(path, "-version")
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffprobe: %s", firstLine)
	log.Debug("ffprobe path: %s", path)
	return true
}

// checkImageDecoders reports which still-image formats image.DecodeConfig
// recognizes.
func checkImageDecoders(log Logger) {
	var found []string
	for _, s := range imageSamples {
		// The format name is reported once the magic matches, even though
		// the truncated header then fails to decode.
		if _, format, _ := image.DecodeConfig(strings.NewReader(s.header)); format == s.format {
			found = append(found, s.format)
		} else {
			log.Warn("No %s decoder registered", s.format)
		}
	}
	log.Success("Image decoders: %s", strings.Join(found, ", "))
}

// CheckDeps is the pre-run validation. It only resolves ffprobe; still
// images need no external tools.
func CheckDeps(cfg *config.Config) error {
	if _, err := lookPath(cfg.FFprobeBin); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}
