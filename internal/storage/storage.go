// Package storage manages the durable image area on the local filesystem.
// The area is a flat namespace: every stored image lives directly under
// {BaseDir}/images and is addressed by filename alone.
package storage

import (
	"os"
	"path/filepath"
)

const imagesDirName = "images"

type Storage struct {
	BaseDir string
}

// New creates a Storage rooted at baseDir and ensures the image area exists.
func New(baseDir string) (*Storage, error) {
	s := &Storage{BaseDir: baseDir}
	if err := EnsureDir(s.ImagesDir()); err != nil {
		return nil, err
	}
	return s, nil
}

// ImagesDir returns the directory holding all stored images.
func (s *Storage) ImagesDir() string {
	return filepath.Join(s.BaseDir, imagesDirName)
}

// ImagePath returns the full path for a stored filename. The name is reduced
// to its base component so a crafted filename cannot escape the image area.
func (s *Storage) ImagePath(filename string) string {
	return filepath.Join(s.ImagesDir(), filepath.Base(filename))
}

// FileSize reports the byte size of a stored image as it exists on disk.
func (s *Storage) FileSize(filename string) (int64, error) {
	info, err := os.Stat(s.ImagePath(filename))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Remove deletes a stored image. Missing files are not an error.
func (s *Storage) Remove(filename string) error {
	err := os.Remove(s.ImagePath(filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
