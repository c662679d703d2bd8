package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/raestrada95/repotopdf/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	dir := filepath.Join(t.TempDir(), "out")
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	report := m.RunReport{
		ID:         "run-1",
		Repository: "sveltejs/svelte",
		State:      "done",
		StartedAt:  started,
		FinishedAt: started.Add(time.Minute),
		Roots:      []m.Path{"/tmp/repo/docs"},
		Merged:     "/out/sveltejs_svelte_docs.pdf",
		Successes:  []m.ReportEntry{{Input: "/tmp/repo/docs/a.md", Output: "/out/a.pdf", DurationMS: 12}},
		Failures:   []m.ReportEntry{{Input: "/tmp/repo/docs/b.md", Diagnostic: "exit status 1"}},
	}

	require.NoError(t, store.SaveReport(context.Background(), m.Path(dir), report))

	loaded, err := store.LoadReport(context.Background(), m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, report.ID, loaded.ID)
	assert.Equal(t, report.Roots, loaded.Roots)
	assert.Equal(t, report.Successes, loaded.Successes)
	assert.Equal(t, report.Failures, loaded.Failures)
	assert.True(t, report.StartedAt.Equal(loaded.StartedAt))
}

func TestYAMLReportStore_LoadMissing(t *testing.T) {
	_, err := NewReportStore().LoadReport(context.Background(), m.Path(t.TempDir()))
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestYAMLReportStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReportFilename), []byte("id: [unterminated"), 0o600))

	_, err := NewReportStore().LoadReport(context.Background(), m.Path(dir))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrReportNotFound)
}
