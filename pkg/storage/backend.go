package storage

import (
	"context"
)

// FileInfo represents metadata about a filesystem entry
type FileInfo struct {
	Path  string
	Size  int64
	IsDir bool
}

// Backend defines the filesystem operations a batch move needs.
// Implementations include the local filesystem and an in-memory filesystem.
type Backend interface {
	// Glob returns the paths matching a shell glob pattern, or nil if none match
	Glob(ctx context.Context, pattern string) ([]string, error)

	// Exists checks if a file, directory or symlink exists at path
	Exists(ctx context.Context, path string) (bool, error)

	// Stat returns file metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Rename moves oldPath to newPath, replacing newPath if it exists
	Rename(ctx context.Context, oldPath, newPath string) error

	// MkdirAll creates a directory and all necessary parents
	MkdirAll(ctx context.Context, path string) error

	// Close releases any resources held by the backend
	Close() error
}
