package probe

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrNotApplicable is returned by a provider that does not handle a file.
	ErrNotApplicable = errors.New("not applicable")

	// ErrDimensionUnavailable matches every [*UnavailableError].
	ErrDimensionUnavailable = errors.New("dimensions unavailable")
)

// Dimensions is the pixel size of a file and the provider that read it.
type Dimensions struct {
	Width  int
	Height int
	Source string
}

// Prober returns the dimensions of the file at path.
type Prober interface {
	Dimensions(ctx context.Context, path string) (Dimensions, error)
}

// Provider is one strategy in a [Chain].
type Provider interface {
	Prober
	Name() string
}

// Attempt records why one provider could not answer.
type Attempt struct {
	Provider string
	Err      error
}

// UnavailableError reports that no provider could read dimensions for Path.
type UnavailableError struct {
	Path     string
	Attempts []Attempt
}

func (e *UnavailableError) Error() string {
	name := filepath.Base(e.Path)
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("%s: no dimension provider handles this file", name)
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, a.Provider+": "+a.Err.Error())
	}
	return fmt.Sprintf("%s: unsupported format or missing dimension metadata (%s)", name, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrDimensionUnavailable) true.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrDimensionUnavailable
}

// stillImageExtensions are handed to the image decoder.
var stillImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsStillImage reports whether path has a still-image extension.
func IsStillImage(path string) bool {
	return stillImageExtensions[strings.ToLower(filepath.Ext(path))]
}

func notApplicable(name, path string) error {
	return fmt.Errorf("%s: %w for %s", name, ErrNotApplicable, filepath.Ext(path))
}
