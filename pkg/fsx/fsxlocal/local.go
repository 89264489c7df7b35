package fsxlocal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/resumatch/resumatch/pkg/fsx"
)

// LocalFileSystem implements fsx.FileSystem on a local directory
type LocalFileSystem struct {
	root string
}

// NewLocalFileSystem creates a FileSystem rooted at dir
func NewLocalFileSystem(dir string) fsx.FileSystem {
	return &LocalFileSystem{root: dir}
}

func (f *LocalFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	full := filepath.Join(f.root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (f *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.root, path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (f *LocalFileSystem) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(filepath.Join(f.root, path)); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (f *LocalFileSystem) Join(parts ...string) string {
	return filepath.Join(parts...)
}
