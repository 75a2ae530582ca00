// Package pipeline implements image ingestion: an uploaded file is decoded,
// validated, resized to fit the display bounds, re-encoded to WebP and
// written atomically to the durable image area.
package pipeline

import "errors"

var (
	ErrNotAnImage         = errors.New("declared media type is not an image")
	ErrPayloadTooLarge    = errors.New("upload exceeds size limit")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrCorruptImage       = errors.New("image data is corrupt")
	ErrInvalidDimensions  = errors.New("image dimensions out of range")
	ErrEncodingFailed     = errors.New("image encoding failed")
	ErrStorageWriteFailed = errors.New("storage write failed")
)

// Fixed ingestion limits. These are deliberately constants, not config.
const (
	// MaxUploadBytes caps a single upload at 50 MiB.
	MaxUploadBytes = 50 << 20

	// MaxWidth and MaxHeight bound the stored image. Larger sources are
	// scaled down uniformly; smaller ones are kept as-is.
	MaxWidth  = 1920
	MaxHeight = 1080
)
