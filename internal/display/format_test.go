package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/aspectsort/internal/config"
	"github.com/backmassage/aspectsort/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical photo 4.2 MiB", 4404019, "4.2 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatMiB(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0.00 MiB"},
		{"one byte rounds down", 1, "0.00 MiB"},
		{"half", 512 * 1024, "0.50 MiB"},
		{"exact", 3 * 1024 * 1024, "3.00 MiB"},
		{"rounding", 1024*1024 + 10486, "1.01 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMiB(tt.bytes); got != tt.want {
				t.Errorf("FormatMiB(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDimensions(t *testing.T) {
	if got := FormatDimensions(1920, 1080); got != "1920x1080" {
		t.Errorf("FormatDimensions = %q, want %q", got, "1920x1080")
	}
}

func TestPrintBanner_NoColor(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf)
	if strings.Contains(buf.String(), "\033[") {
		t.Error("banner should not contain escape codes when colors are off")
	}
	if buf.Len() == 0 {
		t.Error("banner should not be empty")
	}
}
