package probe

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	_ "golang.org/x/image/webp" // register WebP
)

// ImageDecoder reads still-image dimensions from the file header with
// image.DecodeConfig, without decoding pixel data.
type ImageDecoder struct{}

// Name implements [Provider].
func (ImageDecoder) Name() string { return "image" }

// Dimensions implements [Prober].
func (d ImageDecoder) Dimensions(_ context.Context, path string) (Dimensions, error) {
	if !IsStillImage(path) {
		return Dimensions{}, notApplicable(d.Name(), path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode header: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}
