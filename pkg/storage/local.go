package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Local is a storage backend on top of an afero filesystem.
// Paths are used as given: relative paths resolve against the working directory.
type Local struct {
	fs afero.Fs
}

// NewLocal creates a backend on the operating system filesystem
func NewLocal() *Local {
	return &Local{fs: afero.NewOsFs()}
}

// NewFromFs wraps an existing afero filesystem
func NewFromFs(fs afero.Fs) *Local {
	return &Local{fs: fs}
}

// Glob returns the paths matching pattern, sorted within each directory
func (l *Local) Glob(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, err := afero.Glob(l.fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to expand pattern: %w", err)
	}

	return matches, nil
}

// Exists checks if a path exists. Symlinks are not followed, so a dangling
// link still counts as an existing destination.
func (l *Local) Exists(ctx context.Context, path string) (bool, error) {
	_, err := l.lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence: %w", err)
}

// Stat returns file metadata
func (l *Local) Stat(ctx context.Context, path string) (*FileInfo, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &FileInfo{
		Path:  path,
		Size:  info.Size(),
		IsDir: info.IsDir(),
	}, nil
}

// Rename moves a file or directory
func (l *Local) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.fs.Rename(oldPath, newPath)
}

// MkdirAll creates a directory and all necessary parents
func (l *Local) MkdirAll(ctx context.Context, path string) error {
	if err := l.fs.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Close releases resources (no-op for afero filesystems)
func (l *Local) Close() error {
	return nil
}

func (l *Local) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := l.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return l.fs.Stat(path)
}
