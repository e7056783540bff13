// Package unit converts device pixels to zoom-independent layout units.
//
// All layout arithmetic runs in Lengths so that a zoom change rescales every
// pane uniformly. Conversion is pure and total: degenerate zoom factors and
// missing pixel values are normalized rather than rejected, so optional panes
// contribute a zero term instead of forcing callers to special-case absence.
package unit

import "math"

// Length is a width or height in zoom-independent layout units.
type Length float64

// Zoom scales device pixels into layout units. A zoom of 2 means every
// layout unit covers two device pixels.
type Zoom float64

// Normalize returns a usable zoom factor. Non-finite or non-positive values
// collapse to 1 so conversion never divides by zero.
func (z Zoom) Normalize() Zoom {
	f := float64(z)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 1
	}
	return z
}

// FromPixels converts a device-pixel value into layout units.
// NaN and infinite inputs convert to zero.
func FromPixels(px float64, z Zoom) Length {
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return 0
	}
	return Length(px / float64(z.Normalize()))
}

// FromPixelsPtr converts an optional device-pixel value. A nil pointer is an
// absent input and converts to zero.
func FromPixelsPtr(px *float64, z Zoom) Length {
	if px == nil {
		return 0
	}
	return FromPixels(*px, z)
}

// Pixels converts the length back into device pixels.
func (l Length) Pixels(z Zoom) float64 {
	return float64(l) * float64(z.Normalize())
}

// Clamp limits the length to [lo, hi]. If hi < lo the lower bound wins,
// matching the clamp order the layout engine depends on.
func (l Length) Clamp(lo, hi Length) Length {
	if l > hi {
		l = hi
	}
	if l < lo {
		l = lo
	}
	return l
}

// Max returns the larger of two lengths.
func Max(a, b Length) Length {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two lengths.
func Min(a, b Length) Length {
	if a < b {
		return a
	}
	return b
}
