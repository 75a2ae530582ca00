package pipeline

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Target is the computed output size and whether scaling is needed.
type Target struct {
	Width   int
	Height  int
	Resized bool
}

// Fit computes the output dimensions for a source of w x h. Sources within
// MaxWidth x MaxHeight keep their exact dimensions. Larger sources are scaled
// by min(MaxWidth/w, MaxHeight/h) so the aspect ratio is preserved and both
// bounds hold. Never upscales.
func Fit(w, h int) (Target, error) {
	if w <= 0 || h <= 0 {
		return Target{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}

	if w <= MaxWidth && h <= MaxHeight {
		return Target{Width: w, Height: h}, nil
	}

	scale := math.Min(float64(MaxWidth)/float64(w), float64(MaxHeight)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	if nw > MaxWidth {
		nw = MaxWidth
	}
	if nh > MaxHeight {
		nh = MaxHeight
	}
	return Target{Width: nw, Height: nh, Resized: true}, nil
}

// Apply resamples img to the target dimensions with a Lanczos filter.
// A non-resized target returns img unchanged.
func Apply(img image.Image, t Target) image.Image {
	if !t.Resized {
		return img
	}
	return imaging.Resize(img, t.Width, t.Height, imaging.Lanczos)
}
