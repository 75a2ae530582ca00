package pipeline

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// ApplyEXIFOrientation rotates/flips img according to the EXIF orientation
// tag read from r (the original encoded bytes). Sources without usable EXIF
// are returned unchanged; the bool reports whether a transform was applied.
func ApplyEXIFOrientation(img image.Image, r io.Reader) (image.Image, bool) {
	x, err := exif.Decode(r)
	if err != nil {
		return img, false
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return img, false
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return img, false
	}

	switch orientation {
	case 2:
		return imaging.FlipH(img), true
	case 3:
		return imaging.Rotate180(img), true
	case 4:
		return imaging.FlipV(img), true
	case 5:
		return imaging.Transpose(img), true
	case 6:
		// 90 degrees clockwise
		return imaging.Rotate270(img), true
	case 7:
		return imaging.Transverse(img), true
	case 8:
		// 90 degrees counter-clockwise
		return imaging.Rotate90(img), true
	}
	return img, false
}
