package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"testing"
)

func encodeJPEG(w io.Writer, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 80})
}

func encodePNG(w io.Writer, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return png.Encode(w, img)
}

func TestDecode_JPEG(t *testing.T) {
	var b bytes.Buffer
	if err := encodeJPEG(&b, 320, 240); err != nil {
		t.Fatal(err)
	}
	img, meta, err := Decode(b.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img == nil {
		t.Fatalf("expected image, got nil")
	}
	if meta.Format != "jpeg" {
		t.Fatalf("expected format jpeg, got %s", meta.Format)
	}
	if meta.Width != 320 || meta.Height != 240 {
		t.Fatalf("expected 320x240, got %dx%d", meta.Width, meta.Height)
	}
}

func TestDecode_PNG(t *testing.T) {
	var b bytes.Buffer
	if err := encodePNG(&b, 100, 50); err != nil {
		t.Fatal(err)
	}
	_, meta, err := Decode(b.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Format != "png" || meta.Width != 100 || meta.Height != 50 {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestDecode_RejectsText(t *testing.T) {
	_, _, err := Decode([]byte("this is definitely not an image payload"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecode_RejectsTruncatedJPEG(t *testing.T) {
	var b bytes.Buffer
	if err := encodeJPEG(&b, 320, 240); err != nil {
		t.Fatal(err)
	}
	// keep the magic bytes but cut the stream short
	truncated := b.Bytes()[:64]
	_, _, err := Decode(truncated)
	if !errors.Is(err, ErrCorruptImage) {
		t.Fatalf("expected ErrCorruptImage, got %v", err)
	}
}

func TestSniffFormat_AVIFBrand(t *testing.T) {
	// minimal ftyp box with the avif brand
	data := append([]byte{0, 0, 0, 0x1c}, []byte("ftypavif")...)
	data = append(data, make([]byte, 16)...)
	if got := sniffFormat(data); got != "avif" {
		t.Fatalf("expected avif, got %q", got)
	}
}
