package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/logfields"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// ErrNoSourceRoots is returned when discovery finds no directory to convert.
var ErrNoSourceRoots = errors.New("no documentation folders found")

// Defaults for MatcherConfig fields left empty.
const (
	DefaultFolderName = "docs"
	DefaultInputExt   = ".md"
	DefaultOutputExt  = ".pdf"
)

// vcsDirName is never descended into during discovery or walking.
const vcsDirName = ".git"

// MatcherConfig controls which directories and files are selected.
type MatcherConfig struct {
	FolderName string // directory name that marks a source root
	InputExt   string // eligible input extension, compared case-insensitively
	OutputExt  string // extension given to produced artifacts
}

// DiscoveryArgs describes one source-root resolution.
type DiscoveryArgs struct {
	Root       m.Path // acquired source tree
	KnownHint  m.Path // override from the known-roots table, relative to Root
	CustomHint m.Path // user-supplied override, relative to Root
	Recursive  bool
}

// PathMatcher decides which directories are source roots and which files are
// eligible inputs.
type PathMatcher interface {
	ResolveSourceRoots(ctx context.Context, args DiscoveryArgs) ([]m.SourceRoot, error)
	IsEligible(name string) bool
	ArtifactName(name string) string
	OutputExt() string
}

type pathMatcher struct {
	adapter.SourceFSAdapter
	config MatcherConfig
}

// NewPathMatcher creates a PathMatcher, filling unset config fields with the
// package defaults.
func NewPathMatcher(fsAdapter adapter.SourceFSAdapter, config MatcherConfig) PathMatcher {
	if config.FolderName == "" {
		config.FolderName = DefaultFolderName
	}

	config.InputExt = normalizeExt(config.InputExt, DefaultInputExt)
	config.OutputExt = normalizeExt(config.OutputExt, DefaultOutputExt)

	return &pathMatcher{SourceFSAdapter: fsAdapter, config: config}
}

func normalizeExt(ext, fallback string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return fallback
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// ResolveSourceRoots applies the override hints first, then falls back to
// folder-name discovery under args.Root.
func (pm *pathMatcher) ResolveSourceRoots(ctx context.Context, args DiscoveryArgs) ([]m.SourceRoot, error) {
	root, err := pm.Abs(ctx, args.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve source tree: %w", err)
	}

	if !pm.IsDir(ctx, root) {
		return nil, fmt.Errorf("source tree %s: %w", root, ErrNoSourceRoots)
	}

	for _, hint := range []m.Path{args.KnownHint, args.CustomHint} {
		if match, ok := pm.resolveHint(ctx, root, hint); ok {
			return []m.SourceRoot{match}, nil
		}
	}

	var matches []m.Path
	if args.Recursive {
		matches, err = pm.findAll(ctx, root)
	} else {
		matches, err = pm.findFirst(ctx, root)
	}

	if err != nil {
		return nil, fmt.Errorf("discover source roots: %w", err)
	}

	if len(matches) == 0 {
		return nil, ErrNoSourceRoots
	}

	roots := make([]m.SourceRoot, 0, len(matches))
	for i, match := range matches {
		roots = append(roots, m.SourceRoot{Path: match, Index: i})
	}

	slog.Debug("Discovered source roots", logfields.Root(string(root)), logfields.Count(len(roots)), slog.Bool("recursive", args.Recursive))

	return roots, nil
}

func (pm *pathMatcher) resolveHint(ctx context.Context, root, hint m.Path) (m.SourceRoot, bool) {
	if strings.TrimSpace(string(hint)) == "" {
		return m.SourceRoot{}, false
	}

	candidate := pm.JoinPath(ctx, string(root), string(hint))
	if !pm.IsDir(ctx, candidate) {
		slog.Warn("Docs path override is not a directory, falling back to discovery", logfields.Path(string(candidate)))
		return m.SourceRoot{}, false
	}

	return m.SourceRoot{Path: candidate, Hint: hint}, true
}

// findFirst searches breadth-first in lexical order and returns the
// shallowest matching directory.
func (pm *pathMatcher) findFirst(ctx context.Context, root m.Path) ([]m.Path, error) {
	queue := []m.Path{root}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		children, err := pm.childDirs(ctx, dir)
		if err != nil {
			return nil, err
		}

		for _, child := range children {
			if filepath.Base(string(child)) == pm.config.FolderName {
				return []m.Path{child}, nil
			}

			queue = append(queue, child)
		}
	}

	return nil, nil
}

// findAll searches depth-first in lexical order, descending into matched
// directories as well, and returns every match in pre-order.
func (pm *pathMatcher) findAll(ctx context.Context, dir m.Path) ([]m.Path, error) {
	children, err := pm.childDirs(ctx, dir)
	if err != nil {
		return nil, err
	}

	var matches []m.Path

	for _, child := range children {
		if filepath.Base(string(child)) == pm.config.FolderName {
			matches = append(matches, child)
		}

		nested, err := pm.findAll(ctx, child)
		if err != nil {
			return nil, err
		}

		matches = append(matches, nested...)
	}

	return matches, nil
}

func (pm *pathMatcher) childDirs(ctx context.Context, dir m.Path) ([]m.Path, error) {
	entries, err := pm.ReadDir(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	dirs := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == vcsDirName {
			continue
		}

		dirs = append(dirs, pm.JoinPath(ctx, string(dir), entry.Name()))
	}

	return dirs, nil
}

// IsEligible reports whether a file name carries the input extension.
func (pm *pathMatcher) IsEligible(name string) bool {
	return strings.EqualFold(filepath.Ext(name), pm.config.InputExt)
}

// ArtifactName swaps the extension of name for the output extension.
func (pm *pathMatcher) ArtifactName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + pm.config.OutputExt
}

// OutputExt returns the artifact extension.
func (pm *pathMatcher) OutputExt() string {
	return pm.config.OutputExt
}
