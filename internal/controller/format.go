package controller

import (
	"path/filepath"
	"sort"
	"strings"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// displayPath shortens a job input to its path under the source root.
func displayPath(job m.Job) string {
	if job.Root == "" {
		return string(job.Input)
	}

	rel, err := filepath.Rel(string(job.Root), string(job.Input))
	if err != nil || strings.HasPrefix(rel, "..") {
		return string(job.Input)
	}

	return rel
}

func rootSelector(root m.SourceRoot) string {
	if root.Hint == "" {
		return "folder name"
	}

	return "override " + string(root.Hint)
}

func sortedKnownRoots(roots map[string]m.Path) []string {
	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// firstLine trims a diagnostic to its first non-empty line.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}

	return ""
}
