package pipeline

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"
)

// OutputExtension is the extension of every stored image, regardless of the
// source format.
const OutputExtension = "webp"

// filenameRandRange is the width of the random component. Combined with the
// millisecond timestamp this makes collisions negligible at this traffic
// scale; no existence check is performed.
const filenameRandRange = 1_000_000_000

// AllocateFilename derives a stored filename from the original upload name:
// "<unixMillis>-<random>-<sanitizedBase>.webp".
func AllocateFilename(originalName string) string {
	return fmt.Sprintf("%d-%d-%s.%s",
		time.Now().UnixMilli(),
		rand.Int64N(filenameRandRange),
		sanitizeBaseName(originalName),
		OutputExtension,
	)
}

// sanitizeBaseName strips directory components and the original extension,
// then replaces anything outside [A-Za-z0-9._-] with a hyphen. An empty
// result falls back to "image".
func sanitizeBaseName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	out := strings.Trim(b.String(), ".-")
	if out == "" {
		return "image"
	}
	return out
}
