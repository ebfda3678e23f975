// Package ratio approximates aspect ratios with small fractions using a
// bounded Stern–Brocot (mediant) search.
package ratio

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the approximators.
var (
	ErrInvalidLimiter = errors.New("limiter must be a positive integer")
	ErrInvalidRatio   = errors.New("ratio must be finite and non-negative")
)

// Fraction is a non-negative ratio Num/Den in lowest terms.
type Fraction struct {
	Num int
	Den int
}

// Label returns the directory label for f, e.g. "16X9".
func (f Fraction) Label() string {
	return fmt.Sprintf("%dX%d", f.Num, f.Den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// bound is one side of the search interval. The initial upper bound is
// unbounded (the "1/0" of the Stern–Brocot tree) and has no num/den of its
// own.
type bound struct {
	num, den  int64
	unbounded bool
}

// mediant returns (lo.num+hi.num)/(lo.den+hi.den), treating an unbounded hi
// as 1/0.
func mediant(lo, hi bound) bound {
	if hi.unbounded {
		return bound{num: lo.num + 1, den: lo.den}
	}
	return bound{num: lo.num + hi.num, den: lo.den + hi.den}
}

// closer picks the neighbour nearest to an exact target lying on their
// mediant. The gap to a neighbour is 1/(neighbour.den*mediant.den), so the
// larger denominator wins.
func closer(lower, upper bound) bound {
	if upper.unbounded || lower.den >= upper.den {
		return lower
	}
	return upper
}

func (b bound) fraction() Fraction {
	return Fraction{Num: int(b.num), Den: int(b.den)}
}

// compareFunc reports the sign of target - num/den.
type compareFunc func(num, den int64) int

// Approximate returns the fraction with denominator at most limiter that the
// mediant search settles on for r.
func Approximate(r float64, limiter int) (Fraction, error) {
	if limiter < 1 {
		return Fraction{}, fmt.Errorf("%w (got %d)", ErrInvalidLimiter, limiter)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return Fraction{}, fmt.Errorf("%w (got %v)", ErrInvalidRatio, r)
	}
	// Mediant numerators stay below (floor(r)+1)*2*limiter.
	if r >= float64(maxWhole(limiter)) {
		return Fraction{}, fmt.Errorf("%w: %v is too large for limiter %d", ErrInvalidRatio, r, limiter)
	}
	return search(limiter, int64(math.Floor(r)), func(num, den int64) int {
		lhs, rhs := r*float64(den), float64(num)
		switch {
		case lhs > rhs:
			return 1
		case lhs == rhs:
			return 0
		default:
			return -1
		}
	}), nil
}

// FromDimensions approximates width/height with the same search as
// [Approximate], comparing with integer cross-multiplication so that
// exact ratios such as 1920x1080 hit the exact-match branch.
func FromDimensions(width, height, limiter int) (Fraction, error) {
	if limiter < 1 {
		return Fraction{}, fmt.Errorf("%w (got %d)", ErrInvalidLimiter, limiter)
	}
	if width < 0 || height <= 0 {
		return Fraction{}, fmt.Errorf("%w (got %dx%d)", ErrInvalidRatio, width, height)
	}
	w, h := int64(width), int64(height)
	// Cross products stay below (w+h)*2*limiter.
	if w+h > maxWhole(limiter) {
		return Fraction{}, fmt.Errorf("%w: %dx%d is too large for limiter %d", ErrInvalidRatio, width, height, limiter)
	}
	return search(limiter, w/h, func(num, den int64) int {
		lhs, rhs := w*den, num*h
		switch {
		case lhs > rhs:
			return 1
		case lhs == rhs:
			return 0
		default:
			return -1
		}
	}), nil
}

// maxWhole bounds the integer part of a target so that no mediant
// arithmetic overflows int64. Mediant denominators stay below 2*limiter.
func maxWhole(limiter int) int64 {
	return math.MaxInt64/2/int64(limiter) - 1
}

// search walks the Stern–Brocot tree towards the target described by cmp
// and stops once the next mediant's denominator would exceed limiter. whole
// is floor(target).
//
// While upper is unbounded every mediant is an integer, so the walk starts
// at (whole-1)/1 instead of stepping up from 0/1. The next mediant is then
// whole/1, which keeps the exact-match test for integer targets, and the
// result matches the full walk.
//
// An exact match whose denominator exceeds limiter returns the closer of
// the two bracketing fractions rather than the exact mediant. This
// deliberately differs from an unbounded exact match (1080x1920 at limiter
// 10 is 5/9, not 9/16) so the result never exceeds limiter.
func search(limiter int, whole int64, cmp compareFunc) Fraction {
	lim := int64(limiter)
	lower := bound{num: 0, den: 1}
	if whole > 0 {
		lower.num = whole - 1
	}
	upper := bound{unbounded: true}

	for {
		m := mediant(lower, upper)
		switch c := cmp(m.num, m.den); {
		case c > 0:
			if lim < m.den {
				return upper.fraction()
			}
			lower = m
		case c == 0:
			if lim < m.den {
				return closer(lower, upper).fraction()
			}
			return m.fraction()
		default:
			if lim < m.den {
				return lower.fraction()
			}
			upper = m
		}
	}
}
