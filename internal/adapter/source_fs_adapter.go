// Package adapter contains process and infrastructure adapters for the repotopdf CLI.
package adapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning a source tree and building the output tree. It hides direct
// `os` access so the pipeline can be tested against fakes.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// ReadDir lists a directory's entries sorted by file name.
	ReadDir(ctx context.Context, dir m.Path) ([]os.DirEntry, error)

	// Walk traverses root depth-first in lexical order, calling fn for each entry.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(ctx context.Context, path m.Path) bool

	// MkdirAll creates a directory and any missing parents. Existing
	// directories are not an error.
	MkdirAll(ctx context.Context, path m.Path) error

	// CreateTempDir creates a scratch directory.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// Remove deletes a single file.
	Remove(ctx context.Context, path m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// Abs returns an absolute representation of path.
	Abs(ctx context.Context, path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, entry fs.DirEntry, err error) error

// ErrSkipDir may be returned from a FilepathWalkFunc to skip a directory.
var ErrSkipDir = filepath.SkipDir

// LocalSourceFSAdapter is the os-backed implementation of SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadDir lists directory entries sorted by name.
func (a *LocalSourceFSAdapter) ReadDir(ctx context.Context, dir m.Path) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadDir(string(dir))
}

// Walk iterates over every entry under root.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, entry, err)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// IsDir reports whether path resolves to an existing directory.
func (a *LocalSourceFSAdapter) IsDir(ctx context.Context, path m.Path) bool {
	info, err := a.FileInfo(ctx, path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// MkdirAll creates the directory tree for path.
func (a *LocalSourceFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// CreateTempDir creates a temporary directory.
func (a *LocalSourceFSAdapter) CreateTempDir(ctx context.Context, pattern string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// Remove deletes a single file. A missing file is not an error.
func (a *LocalSourceFSAdapter) Remove(_ context.Context, path m.Path) error {
	if err := os.Remove(string(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// RemoveAll removes a directory and all its contents. It ignores context
// cancellation so cleanup still runs after an interrupt.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// Abs returns the absolute form of path.
func (a *LocalSourceFSAdapter) Abs(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
