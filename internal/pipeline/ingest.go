package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"inkwell/internal/storage"
)

// UploadRequest carries one upload through a single Ingest call. The buffers
// are owned exclusively by that call and discarded when it returns.
type UploadRequest struct {
	Data             []byte
	OriginalFilename string
	MediaType        string
}

// Result reports a completed ingestion. Width and Height are the true
// dimensions of the stored file; ByteSize is re-measured from storage so it
// matches exactly what a later read returns.
type Result struct {
	StoredFilename   string
	OriginalFilename string
	ByteSize         int64
	Width            int
	Height           int
	Resized          bool
}

// Ingest runs the full pipeline: validate -> decode -> fit -> re-encode ->
// atomic write -> re-measure. Any failure aborts the call with one of the
// package sentinels and leaves nothing under a final filename.
func Ingest(ctx context.Context, store *storage.Storage, req UploadRequest) (*Result, error) {
	if !strings.HasPrefix(req.MediaType, "image/") {
		return nil, fmt.Errorf("%w: %q", ErrNotAnImage, req.MediaType)
	}
	if int64(len(req.Data)) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(req.Data))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, meta, err := Decode(req.Data)
	if err != nil {
		return nil, err
	}

	// Camera JPEGs store rotation in EXIF; bake it in so the stored pixels
	// and reported dimensions agree.
	if meta.Format == "jpeg" {
		img, _ = ApplyEXIFOrientation(img, bytes.NewReader(req.Data))
	}

	b := img.Bounds()
	target, err := Fit(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := EncodeWebP(Apply(img, target), &buf); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := AllocateFilename(req.OriginalFilename)
	if err := storage.AtomicWrite(store.ImagePath(name), bytes.NewReader(buf.Bytes())); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	size, err := store.FileSize(name)
	if err != nil {
		_ = store.Remove(name)
		return nil, fmt.Errorf("%w: measure: %v", ErrStorageWriteFailed, err)
	}

	return &Result{
		StoredFilename:   name,
		OriginalFilename: req.OriginalFilename,
		ByteSize:         size,
		Width:            target.Width,
		Height:           target.Height,
		Resized:          target.Resized,
	}, nil
}
