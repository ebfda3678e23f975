package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// execOutput runs a command and returns its stdout. Tests replace it to
// feed canned ffprobe output.
var execOutput = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// FFprobe is the generic metadata provider: it asks ffprobe for the
// container and stream headers without decoding frames.
type FFprobe struct {
	Bin string // ffprobe executable; "ffprobe" when empty.
}

// Name implements [Provider].
func (FFprobe) Name() string { return "ffprobe" }

// Dimensions implements [Prober] using the primary video stream.
func (p FFprobe) Dimensions(ctx context.Context, path string) (Dimensions, error) {
	pr, err := p.Probe(ctx, path)
	if err != nil {
		return Dimensions{}, err
	}
	v := pr.PrimaryVideo
	if v == nil {
		return Dimensions{}, fmt.Errorf("no video stream in %s container", containerName(pr))
	}
	if v.Width <= 0 || v.Height <= 0 {
		return Dimensions{}, fmt.Errorf("video stream %d (%s) has no dimensions", v.Index, v.Codec)
	}
	return Dimensions{Width: v.Width, Height: v.Height}, nil
}

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result.
func (p FFprobe) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	bin := p.Bin
	if bin == "" {
		bin = "ffprobe"
	}
	out, err := execOutput(ctx, bin,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %s", bin, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("%s: %w", bin, err)
	}
	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	FormatName string `json:"format_name"`
}

type ffprobeStream struct {
	Index       int            `json:"index"`
	CodecName   string         `json:"codec_name"`
	CodecType   string         `json:"codec_type"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Disposition map[string]int `json:"disposition"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *ProbeResult {
	pr := &ProbeResult{FormatName: raw.Format.FormatName}

	primary := -1
	for i := range raw.Streams {
		s := &raw.Streams[i]
		if s.CodecType != "video" {
			continue
		}
		vs := VideoStream{
			Index:         s.Index,
			Codec:         s.CodecName,
			Width:         s.Width,
			Height:        s.Height,
			IsAttachedPic: s.Disposition["attached_pic"] == 1,
		}
		if !vs.IsAttachedPic && primary < 0 {
			primary = len(pr.VideoStreams)
		}
		pr.VideoStreams = append(pr.VideoStreams, vs)
	}
	// A lone cover image (e.g. a still run through ffprobe) is better than nothing.
	if primary < 0 && len(pr.VideoStreams) > 0 {
		primary = 0
	}
	if primary >= 0 {
		pr.PrimaryVideo = &pr.VideoStreams[primary]
	}
	return pr
}

func containerName(pr *ProbeResult) string {
	if pr.FormatName == "" {
		return "unknown"
	}
	return pr.FormatName
}
