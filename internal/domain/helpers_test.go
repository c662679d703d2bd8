package domain

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raestrada95/repotopdf/internal/adapter"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// fakeConverter copies input to output in-process. Inputs whose base name is
// in failures fail with that stderr.
type fakeConverter struct {
	failures map[string]string
	warnings map[string]string
	delay    time.Duration

	calls    atomic.Int64
	inFlight atomic.Int64
	peak     atomic.Int64
}

func (f *fakeConverter) Convert(ctx context.Context, input, output m.Path) (adapter.ProcessOutput, error) {
	f.calls.Add(1)

	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	for {
		peak := f.peak.Load()
		if current <= peak || f.peak.CompareAndSwap(peak, current) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return adapter.ProcessOutput{}, ctx.Err()
		}
	}

	name := filepath.Base(string(input))
	if stderr, ok := f.failures[name]; ok {
		return adapter.ProcessOutput{Stderr: stderr}, &adapter.ProcessError{
			Command:  adapter.CommandLine("fake-converter", string(input), string(output)),
			ExitCode: 1,
			Stderr:   stderr,
		}
	}

	data, err := os.ReadFile(string(input))
	if err != nil {
		return adapter.ProcessOutput{}, err
	}

	if err := os.WriteFile(string(output), data, 0o600); err != nil {
		return adapter.ProcessOutput{}, err
	}

	return adapter.ProcessOutput{Stderr: f.warnings[name]}, nil
}

// recordingObserver keeps every notification in arrival order.
type recordingObserver struct {
	mu        sync.Mutex
	events    []string
	states    []m.RunState
	started   []m.Job
	completed []m.Outcome
	failures  []m.Outcome
	roots     []m.SourceRoot
}

func (r *recordingObserver) DisplayStateChange(_ context.Context, state m.RunState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states = append(r.states, state)
	r.events = append(r.events, "state:"+state.String())
}

func (r *recordingObserver) DisplaySourceRoots(_ context.Context, roots []m.SourceRoot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roots = roots
	r.events = append(r.events, "roots")
}

func (r *recordingObserver) DisplayJobStarted(_ context.Context, job m.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started = append(r.started, job)
}

func (r *recordingObserver) DisplayJobCompleted(_ context.Context, outcome m.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.completed = append(r.completed, outcome)
}

func (r *recordingObserver) DisplayFailures(_ context.Context, failures []m.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failures = failures
	r.events = append(r.events, "failures")
}

// writeTree creates files (with parents) under root; paths ending in "/"
// create empty directories.
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("# "+p+"\n"), 0o644))
	}
}

func newTestMatcher() PathMatcher {
	return NewPathMatcher(newTestFS(), MatcherConfig{})
}

func collectJobs(t *testing.T, jobs <-chan m.Job, errs <-chan error) []m.Job {
	t.Helper()

	var collected []m.Job
	for job := range jobs {
		collected = append(collected, job)
	}

	require.NoError(t, <-errs)

	return collected
}

func newTestFS() adapter.SourceFSAdapter {
	return adapter.NewLocalSourceFSAdapter()
}
