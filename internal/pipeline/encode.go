package pipeline

import (
	"fmt"
	"image"
	"io"
	"log"

	webp "github.com/chai2010/webp"
)

// WebPQuality is the fixed quality for the single output format.
const WebPQuality = 85

// EncodeWebP encodes img as lossy WebP at the fixed quality and writes it to
// w. It logs the encoded size. Encoder or writer failures surface as
// ErrEncodingFailed and are not retried.
func EncodeWebP(img image.Image, w io.Writer) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrEncodingFailed)
	}
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrEncodingFailed)
	}

	c := &countingWriter{w: w}
	opts := &webp.Options{Quality: WebPQuality}
	if err := webp.Encode(c, img, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}

	log.Printf("webp encoded size=%d quality=%d", c.n, WebPQuality)
	return nil
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	m, err := c.w.Write(p)
	c.n += int64(m)
	return m, err
}
