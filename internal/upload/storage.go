// Package upload implements the image storage endpoint the product flows
// call around their mutations. Files land on local disk and are addressed by
// an opaque public path; products store that path and nothing else.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type DiskStorage struct {
	dir        string
	publicPath string
}

// NewDiskStorage creates dir if needed. publicPath is the URL prefix the
// saved files are served under, e.g. "/uploads".
func NewDiskStorage(dir, publicPath string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStorage{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}, nil
}

func (s *DiskStorage) Dir() string { return s.dir }

// Save stores the file under a fresh uuid name, keeping only the original
// extension, and returns the public path.
func (s *DiskStorage) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.publicPath + "/" + name, nil
}

// Delete removes the file behind a public path previously returned by Save.
// Deleting a path that is already gone is not an error.
func (s *DiskStorage) Delete(publicPath string) error {
	name, ok := s.fileName(publicPath)
	if !ok {
		return fmt.Errorf("invalid upload path: %q", publicPath)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// fileName extracts the bare file name from a public path, rejecting anything
// outside the upload prefix or containing path separators.
func (s *DiskStorage) fileName(publicPath string) (string, bool) {
	name, found := strings.CutPrefix(publicPath, s.publicPath+"/")
	if !found || name == "" {
		return "", false
	}
	if name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", false
	}
	return name, true
}
