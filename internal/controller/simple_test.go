package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/raestrada95/repotopdf/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_StartRespectsContext(t *testing.T) {
	ui, _ := newTestSimpleUI()

	require.NoError(t, ui.Start(context.Background(), WithProgressMode("svelte")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, ui.Start(ctx), context.Canceled)

	ui.Wait(context.Background())
	ui.Close(context.Background())
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayRunInfo(context.Background(), RunInfo{
		RunID:      "run-1",
		Repository: "sveltejs/svelte",
		Source:     "/tmp/src",
		Output:     "output/sveltejs-svelte",
		Parallel:   5,
		Recursive:  true,
	})

	assert.Contains(t, out.String(), "Converting sveltejs/svelte with 5 worker(s) (recursive discovery)")
	assert.Contains(t, out.String(), "Output: output/sveltejs-svelte")
	assert.Contains(t, out.String(), "Run: run-1")
}

func TestSimpleUI_DisplaySourceRoots(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplaySourceRoots(context.Background(), []m.SourceRoot{
		{Path: "/repo/documentation/docs", Hint: "documentation/docs", Index: 0},
		{Path: "/repo/packages/docs", Index: 1},
	})

	assert.Contains(t, out.String(), "/repo/documentation/docs")
	assert.Contains(t, out.String(), "override documentation/docs")
	assert.Contains(t, out.String(), "folder name")
	assert.Contains(t, out.String(), "TOTAL 2")

	out.Reset()
	ui.DisplaySourceRoots(context.Background(), nil)
	assert.Equal(t, "No documentation folders found\n", out.String())
}

func TestSimpleUI_DisplayJobLifecycle(t *testing.T) {
	ui, out := newTestSimpleUI()
	ctx := context.Background()

	job := m.Job{Root: "/repo/docs", Input: "/repo/docs/sub/c.md", Output: "/out/sub/c.pdf"}

	ui.DisplayJobStarted(ctx, job)
	ui.DisplayJobCompleted(ctx, m.Outcome{Job: job, Status: m.Succeeded, Output: job.Output, Warning: "Warning: low dpi\n"})
	ui.DisplayJobCompleted(ctx, m.Outcome{Job: job, Status: m.Failed, Diagnostic: "\nexit status 1\nmore"})

	assert.Contains(t, out.String(), "Converting sub/c.md\n")
	assert.Contains(t, out.String(), "Converted sub/c.md -> /out/sub/c.pdf\n")
	assert.Contains(t, out.String(), "Warning sub/c.md: Warning: low dpi\n")
	assert.Contains(t, out.String(), "Failed sub/c.md: exit status 1\n")
}

func TestSimpleUI_DisplayFailures(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayFailures(context.Background(), nil)
	assert.Empty(t, out.String())

	ui.DisplayFailures(context.Background(), []m.Outcome{
		{Job: m.Job{Input: "/repo/docs/b.md"}, Status: m.Failed, Diagnostic: "wkhtmltopdf: exit status 1: boom"},
	})

	assert.Contains(t, out.String(), "1 file(s) failed to convert:")
	assert.Contains(t, out.String(), "  /repo/docs/b.md\n")
	assert.Contains(t, out.String(), "    wkhtmltopdf: exit status 1: boom\n")
}

func TestSimpleUI_DisplayMergeResult(t *testing.T) {
	tests := []struct {
		name  string
		count int
		err   error
		want  string
	}{
		{"nothing to merge", 0, errors.New("nothing to merge"), "No PDFs created, nothing to merge\n"},
		{"merge failed", 2, errors.New("pdftk: exit status 1"), "Merge failed: pdftk: exit status 1\n"},
		{"merged", 3, nil, "Merged 3 file(s) into out/a_b_docs.pdf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out := newTestSimpleUI()
			ui.DisplayMergeResult(context.Background(), "out/a_b_docs.pdf", tt.count, tt.err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, out := newTestSimpleUI()

	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ui.DisplayReport(context.Background(), m.RunReport{
		ID:         "run-1",
		Repository: "vuejs/vue",
		State:      m.StateDone.String(),
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Roots:      []m.Path{"/tmp/vue/docs"},
		Merged:     "output/vuejs-vue/vuejs_vue_docs.pdf",
		Successes:  []m.ReportEntry{{Input: "a.md", Output: "a.pdf"}},
		Failures:   []m.ReportEntry{{Input: "b.md", Diagnostic: "exit status 1"}},
	})

	assert.Contains(t, out.String(), "Run run-1 for vuejs/vue")
	assert.Contains(t, out.String(), "Root: /tmp/vue/docs")
	assert.Contains(t, out.String(), "Merged: output/vuejs-vue/vuejs_vue_docs.pdf")
	assert.Contains(t, out.String(), "a.md")
	assert.Contains(t, out.String(), "exit status 1")
	assert.Contains(t, out.String(), "Converted 1 of 2 file(s), 1 failed (done)")
}

func TestSimpleUI_DisplayKnownRoots(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayKnownRoots(context.Background(), map[string]m.Path{
		"vuejs/vue":       "docs",
		"angular/angular": "aio/content",
	})

	text := out.String()
	assert.Contains(t, text, "angular/angular")
	assert.Contains(t, text, "aio/content")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("angular/angular")), bytes.Index(out.Bytes(), []byte("vuejs/vue")))
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "sub/c.md", displayPath(m.Job{Root: "/repo/docs", Input: "/repo/docs/sub/c.md"}))
	assert.Equal(t, "/elsewhere/c.md", displayPath(m.Job{Root: "/repo/docs", Input: "/elsewhere/c.md"}))
	assert.Equal(t, "c.md", displayPath(m.Job{Input: "c.md"}))
}
