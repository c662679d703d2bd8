package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/raestrada95/repotopdf/internal/logfields"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// ErrCloneFailed is wrapped by every acquisition failure.
var ErrCloneFailed = errors.New("clone failed")

// RepoAdapter acquires a source tree for a repository identifier.
type RepoAdapter interface {
	// Clone fetches url into dest, which must be empty or absent.
	Clone(ctx context.Context, url string, dest m.Path) error
}

// LocalRepoAdapter clones repositories with go-git.
type LocalRepoAdapter struct {
	depth int
}

// NewLocalRepoAdapter constructs a LocalRepoAdapter. depth > 0 requests a
// shallow clone with that many commits; 0 fetches full history.
func NewLocalRepoAdapter(depth int) *LocalRepoAdapter {
	if depth < 0 {
		depth = 0
	}

	return &LocalRepoAdapter{depth: depth}
}

// Clone clones url into dest.
func (a *LocalRepoAdapter) Clone(ctx context.Context, url string, dest m.Path) error {
	start := time.Now()
	slog.Debug("Cloning repository", logfields.URL(url), logfields.Path(string(dest)), slog.Int("depth", a.depth))

	repository, err := git.PlainCloneContext(ctx, string(dest), false, &git.CloneOptions{
		URL:   url,
		Depth: a.depth,
	})
	if err != nil {
		return classifyCloneError(url, err)
	}

	if ref, headErr := repository.Head(); headErr == nil {
		slog.Info("Repository cloned successfully", logfields.URL(url), slog.String("commit", ref.Hash().String()[:8]), logfields.Duration(time.Since(start)))
	} else {
		slog.Info("Repository cloned successfully", logfields.URL(url), logfields.Duration(time.Since(start)))
	}

	return nil
}

// classifyCloneError turns go-git failures into actionable messages.
func classifyCloneError(url string, err error) error {
	switch {
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return fmt.Errorf("%w: repository %s not found: %w", ErrCloneFailed, url, err)
	case errors.Is(err, transport.ErrAuthenticationRequired), errors.Is(err, transport.ErrAuthorizationFailed):
		return fmt.Errorf("%w: repository %s requires authentication: %w", ErrCloneFailed, url, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: clone of %s interrupted: %w", ErrCloneFailed, url, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrCloneFailed, url, err)
	}
}
