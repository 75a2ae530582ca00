package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"

	webp "github.com/chai2010/webp"
	"github.com/gen2brain/avif"
)

// Metadata describes a successfully decoded source image.
type Metadata struct {
	Width  int
	Height int
	Format string // "jpeg", "png", "gif", "webp" or "avif"
}

// Decode sniffs the payload's magic bytes and decodes it into pixels.
// Non-image payloads are rejected from the first 512 bytes without a full
// decode attempt. Recognized formats that fail to decode report
// ErrCorruptImage.
func Decode(data []byte) (image.Image, Metadata, error) {
	format := sniffFormat(data)
	if format == "" {
		return nil, Metadata{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, http.DetectContentType(data))
	}

	var img image.Image
	var err error
	switch format {
	case "jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "png":
		img, err = png.Decode(bytes.NewReader(data))
	case "gif":
		img, err = gif.Decode(bytes.NewReader(data))
	case "webp":
		img, err = webp.Decode(bytes.NewReader(data))
	case "avif":
		img, err = avif.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("%w: decode %s: %v", ErrCorruptImage, format, err)
	}

	b := img.Bounds()
	meta := Metadata{Width: b.Dx(), Height: b.Dy(), Format: format}
	if meta.Width <= 0 || meta.Height <= 0 {
		return nil, Metadata{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, meta.Width, meta.Height)
	}
	return img, meta, nil
}

// sniffFormat maps magic bytes to a supported source format, or "" if the
// payload is not a supported image. AVIF is probed directly because the
// stdlib sniffer does not know its ftyp brand.
func sniffFormat(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return "jpeg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}
	if len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")) {
		brand := string(data[8:12])
		if brand == "avif" || brand == "avis" {
			return "avif"
		}
	}
	return ""
}
