package domain

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// ErrInvalidSource is returned for a source identifier no repository name can
// be derived from.
var ErrInvalidSource = errors.New("invalid source identifier")

// KnownRoots maps owner/name repository identifiers to the directory holding
// their documentation.
type KnownRoots map[string]m.Path

// DefaultKnownRoots returns the built-in table.
func DefaultKnownRoots() KnownRoots {
	return KnownRoots{
		"sveltejs/svelte": "documentation/docs",
		"reactjs/react":   "docs",
		"vuejs/vue":       "docs",
		"angular/angular": "aio/content",
	}
}

// With returns a copy of k extended by overrides. Keys are matched
// case-insensitively; an empty path removes the entry.
func (k KnownRoots) With(overrides map[string]string) KnownRoots {
	merged := make(KnownRoots, len(k)+len(overrides))
	for name, docs := range k {
		merged[strings.ToLower(name)] = docs
	}

	for name, docs := range overrides {
		key := strings.ToLower(strings.TrimSpace(name))
		if strings.TrimSpace(docs) == "" {
			delete(merged, key)
			continue
		}

		merged[key] = m.Path(strings.TrimSpace(docs))
	}

	return merged
}

// Lookup returns the documentation path registered for repo.
func (k KnownRoots) Lookup(repo m.Repository) (m.Path, bool) {
	docs, ok := k[strings.ToLower(repo.FullName())]

	return docs, ok
}

// Clone returns an independent copy of the table.
func (k KnownRoots) Clone() map[string]m.Path {
	return maps.Clone(map[string]m.Path(k))
}

// ParseRepository derives owner and name from a clone URL, an scp-style git
// address or a local path. Owner and name are the last two path segments with
// any ".git" suffix trimmed.
func ParseRepository(source string) (m.Repository, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return m.Repository{}, fmt.Errorf("%w: empty", ErrInvalidSource)
	}

	segments := splitSourcePath(source)
	if len(segments) == 0 {
		return m.Repository{}, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	repo := m.Repository{URL: source, Name: strings.TrimSuffix(segments[len(segments)-1], ".git")}
	if len(segments) > 1 {
		repo.Owner = segments[len(segments)-2]
	}

	if repo.Name == "" {
		return m.Repository{}, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	return repo, nil
}

func splitSourcePath(source string) []string {
	var p string

	switch {
	case strings.Contains(source, "://"):
		parsed, err := url.Parse(source)
		if err != nil {
			return nil
		}

		p = parsed.Path
	case isSCPLike(source):
		p = source[strings.Index(source, ":")+1:]
	default:
		p = filepath.ToSlash(filepath.Clean(source))
	}

	var segments []string

	for _, segment := range strings.Split(path.Clean("/"+p), "/") {
		if segment != "" && segment != "." && segment != ".." {
			segments = append(segments, segment)
		}
	}

	return segments
}

// isSCPLike matches user@host:path addresses.
func isSCPLike(source string) bool {
	at := strings.Index(source, "@")
	colon := strings.Index(source, ":")

	return at > 0 && colon > at && !strings.Contains(source[:colon], "/")
}
