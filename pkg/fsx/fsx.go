package fsx

import "context"

// FileSystem abstracts blob-style file storage (S3, local disk, ...)
type FileSystem interface {
	// WriteFile stores data at path, creating parent locations as needed
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFile reads the full content stored at path
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// DeleteFile removes the file at path
	DeleteFile(ctx context.Context, path string) error

	// Join builds a storage path from parts using the backend's separator
	Join(parts ...string) string
}
