// Package logfields holds the canonical slog attribute keys used across the tool.
package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names.
const (
	KeyPath       = "path"
	KeyInput      = "input"
	KeyOutput     = "output"
	KeyRoot       = "root"
	KeyRepository = "repository"
	KeyURL        = "url"
	KeyRunID      = "run_id"
	KeyState      = "state"
	KeyCommand    = "command"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Input(p string) slog.Attr      { return slog.String(KeyInput, p) }
func Output(p string) slog.Attr     { return slog.String(KeyOutput, p) }
func Root(p string) slog.Attr       { return slog.String(KeyRoot, p) }
func Repository(r string) slog.Attr { return slog.String(KeyRepository, r) }
func URL(u string) slog.Attr        { return slog.String(KeyURL, u) }
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func State(s string) slog.Attr      { return slog.String(KeyState, s) }
func Command(c string) slog.Attr    { return slog.String(KeyCommand, c) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }

// Duration records d in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

// Error renders err as a string attribute; a nil error yields an empty value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}

	return slog.String(KeyError, err.Error())
}
