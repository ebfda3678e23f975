package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// EXIF reads PixelXDimension/PixelYDimension from a JPEG's EXIF block. It
// answers for JPEGs whose frame header cannot be decoded but whose metadata
// survived.
type EXIF struct{}

// Name implements [Provider].
func (EXIF) Name() string { return "exif" }

// Dimensions implements [Prober].
func (e EXIF) Dimensions(_ context.Context, path string) (Dimensions, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
	default:
		return Dimensions{}, notApplicable(e.Name(), path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode: %w", err)
	}
	w, err := exifInt(x, exif.PixelXDimension)
	if err != nil {
		return Dimensions{}, err
	}
	h, err := exifInt(x, exif.PixelYDimension)
	if err != nil {
		return Dimensions{}, err
	}
	return Dimensions{Width: w, Height: h}, nil
}

func exifInt(x *exif.Exif, field exif.FieldName) (int, error) {
	tag, err := x.Get(field)
	if err != nil {
		return 0, err
	}
	n, err := tag.Int(0)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}
