// Package controller provides output adapters for displaying conversion runs.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeStatic StartMode = iota
	ModeProgress
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	title string
}

// WithStaticMode sets the UI to print-only mode.
func WithStaticMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeStatic
	}
}

// WithProgressMode sets the UI to live progress mode for a conversion run.
func WithProgressMode(title string) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeProgress
		c.title = title
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeStatic}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// RunInfo describes a conversion run before it starts.
type RunInfo struct {
	RunID      string
	Repository string
	Source     m.Path
	Output     m.Path
	Parallel   int
	Recursive  bool
}

// UI defines the interface for displaying conversion progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplaySourceRoots(ctx context.Context, roots []m.SourceRoot)
	DisplayStateChange(ctx context.Context, state m.RunState)
	DisplayJobStarted(ctx context.Context, job m.Job)
	DisplayJobCompleted(ctx context.Context, outcome m.Outcome)
	DisplayFailures(ctx context.Context, failures []m.Outcome)
	DisplayMergeResult(ctx context.Context, merged m.Path, count int, err error)
	DisplaySummary(ctx context.Context, report m.RunReport)
	DisplayReport(ctx context.Context, report m.RunReport)
	DisplayKnownRoots(ctx context.Context, roots map[string]m.Path)
}

// NewUI picks the interactive UI for terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
