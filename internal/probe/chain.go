package probe

import (
	"context"
	"errors"
	"fmt"
)

// Chain is an ordered list of providers.
type Chain struct {
	providers []Provider
}

// NewChain returns a chain that tries providers in the given order.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Default returns the standard chain: image header, EXIF, then ffprobe.
// An empty ffprobeBin leaves ffprobe out (e.g. when it is not installed).
func Default(ffprobeBin string) *Chain {
	providers := []Provider{ImageDecoder{}, EXIF{}}
	if ffprobeBin != "" {
		providers = append(providers, FFprobe{Bin: ffprobeBin})
	}
	return NewChain(providers...)
}

// Providers returns the provider names in order.
func (c *Chain) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Dimensions returns the first positive width/height any provider reports.
// Context cancellation is returned as-is rather than as an
// [*UnavailableError].
func (c *Chain) Dimensions(ctx context.Context, path string) (Dimensions, error) {
	var attempts []Attempt
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return Dimensions{}, err
		}

		d, err := p.Dimensions(ctx, path)
		if err == nil {
			if d.Width > 0 && d.Height > 0 {
				d.Source = p.Name()
				return d, nil
			}
			err = fmt.Errorf("invalid dimensions %dx%d", d.Width, d.Height)
		}
		if errors.Is(err, ErrNotApplicable) {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Dimensions{}, ctxErr
		}
		attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
	}
	return Dimensions{}, &UnavailableError{Path: path, Attempts: attempts}
}
