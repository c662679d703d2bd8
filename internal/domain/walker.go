package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/logfields"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// TreeWalker enumerates the eligible files of a source root as jobs whose
// outputs mirror the source layout under an output base directory.
type TreeWalker interface {
	// Walk streams jobs lazily. The job channel closes when the walk ends;
	// the error channel then yields at most one error and closes. Directories
	// listed in skip, typically nested source roots, are not entered.
	Walk(ctx context.Context, root, outputBase m.Path, skip ...m.Path) (<-chan m.Job, <-chan error)
}

type treeWalker struct {
	adapter.SourceFSAdapter
	PathMatcher
}

// NewTreeWalker creates a TreeWalker using matcher to select files.
func NewTreeWalker(fsAdapter adapter.SourceFSAdapter, matcher PathMatcher) TreeWalker {
	return &treeWalker{
		SourceFSAdapter: fsAdapter,
		PathMatcher:     matcher,
	}
}

func (tw *treeWalker) Walk(ctx context.Context, root, outputBase m.Path, skip ...m.Path) (<-chan m.Job, <-chan error) {
	jobs := make(chan m.Job)
	errs := make(chan error, 1)

	skipped := make(map[m.Path]struct{}, len(skip))
	for _, dir := range skip {
		skipped[m.Path(filepath.Clean(string(dir)))] = struct{}{}
	}

	go func() {
		defer close(errs)
		defer close(jobs)

		if err := tw.walk(ctx, root, outputBase, skipped, jobs); err != nil {
			errs <- err
		}
	}()

	return jobs, errs
}

func (tw *treeWalker) walk(ctx context.Context, root, outputBase m.Path, skipped map[m.Path]struct{}, jobs chan<- m.Job) error {
	outputAbs, err := tw.Abs(ctx, outputBase)
	if err != nil {
		return fmt.Errorf("resolve output dir: %w", err)
	}

	count := 0

	err = tw.SourceFSAdapter.Walk(ctx, root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if _, ok := skipped[m.Path(filepath.Clean(path))]; ok && m.Path(path) != root {
				slog.Debug("Skipping nested source root", logfields.Path(path))
				return adapter.ErrSkipDir
			}

			return tw.mirrorDir(ctx, root, outputBase, outputAbs, m.Path(path), entry.Name())
		}

		if !tw.IsEligible(entry.Name()) {
			return nil
		}

		job, err := tw.newJob(ctx, root, outputBase, m.Path(path))
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- job:
			count++
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk source root", logfields.Root(string(root)), logfields.Error(err))
		return fmt.Errorf("walk %s: %w", root, err)
	}

	slog.Debug("Walked source root", logfields.Root(string(root)), logfields.Count(count))

	return nil
}

// mirrorDir creates the output directory matching a source directory. The
// output tree itself and VCS metadata are skipped.
func (tw *treeWalker) mirrorDir(ctx context.Context, root, outputBase, outputAbs, dir m.Path, name string) error {
	if dir != root {
		if name == vcsDirName {
			return adapter.ErrSkipDir
		}

		if abs, err := tw.Abs(ctx, dir); err == nil && abs == outputAbs {
			return adapter.ErrSkipDir
		}
	}

	rel, err := tw.RelPath(ctx, root, dir)
	if err != nil {
		return fmt.Errorf("relative path of %s: %w", dir, err)
	}

	target := tw.JoinPath(ctx, string(outputBase), string(rel))
	if err := tw.MkdirAll(ctx, target); err != nil {
		return fmt.Errorf("create output dir %s: %w", target, err)
	}

	return nil
}

func (tw *treeWalker) newJob(ctx context.Context, root, outputBase, input m.Path) (m.Job, error) {
	rel, err := tw.RelPath(ctx, root, input)
	if err != nil {
		return m.Job{}, fmt.Errorf("relative path of %s: %w", input, err)
	}

	output := tw.JoinPath(ctx, string(outputBase), filepath.Dir(string(rel)), tw.ArtifactName(filepath.Base(string(rel))))

	// Parent normally exists from mirrorDir; ensure it for odd layouts.
	if err := tw.MkdirAll(ctx, tw.JoinPath(ctx, filepath.Dir(string(output)))); err != nil {
		return m.Job{}, fmt.Errorf("create output dir for %s: %w", output, err)
	}

	return m.Job{Input: input, Output: output, Root: root}, nil
}
