package storage

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanOrphanedTempFiles removes leftover ".tmp-*" files from the image area
// that are older than maxAge. These only exist after a crash between a temp
// write and its rename.
func (s *Storage) CleanOrphanedTempFiles(maxAge time.Duration) error {
	dir := s.ImagesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), ".tmp-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
	return nil
}
