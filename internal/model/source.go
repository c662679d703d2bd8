// Package model defines the data structures shared by the conversion pipeline.
package model

import "strings"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string { return string(p) }

// SourceRoot identifies one documentation subtree selected for conversion.
type SourceRoot struct {
	// Path is the absolute directory of the subtree.
	Path Path
	// Hint is the override (known or custom) that selected this root, empty
	// when it was found by folder name.
	Hint Path
	// Index is the discovery order of the root, starting at zero.
	Index int
}

// Repository describes a source identifier such as a clone URL.
type Repository struct {
	URL   string
	Owner string
	Name  string
}

// FullName returns the owner/name form used by the known-roots table.
func (r Repository) FullName() string {
	if r.Owner == "" {
		return r.Name
	}

	return r.Owner + "/" + r.Name
}

// OutputDirName is the per-repository directory created under the output dir.
func (r Repository) OutputDirName() string {
	return strings.ReplaceAll(r.FullName(), "/", "-")
}

// MergedFilename is the file name of the final combined deliverable, ending
// in ext.
func (r Repository) MergedFilename(ext string) string {
	return strings.ReplaceAll(r.FullName(), "/", "_") + "_docs" + ext
}
