package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/logfields"
	"github.com/raestrada95/repotopdf/internal/metrics"
	m "github.com/raestrada95/repotopdf/internal/model"
)

var (
	// ErrNothingToMerge is returned when no artifact was produced.
	ErrNothingToMerge = errors.New("no artifacts produced, nothing to merge")
	// ErrMergeFailed wraps a failed merger invocation.
	ErrMergeFailed = errors.New("merge failed")
)

// Aggregator combines the produced artifacts into one deliverable.
type Aggregator interface {
	Merge(ctx context.Context, outputs []m.Path, destination m.Path) error
}

type aggregator struct {
	merger   adapter.MergerAdapter
	recorder metrics.Recorder
}

// NewAggregator creates an Aggregator backed by merger. A nil recorder
// disables metrics.
func NewAggregator(merger adapter.MergerAdapter, recorder metrics.Recorder) Aggregator {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	return &aggregator{merger: merger, recorder: recorder}
}

// Merge invokes the merger exactly once with the full ordered list, or not at
// all when outputs is empty.
func (a *aggregator) Merge(ctx context.Context, outputs []m.Path, destination m.Path) error {
	if len(outputs) == 0 {
		slog.Info("No artifacts produced, skipping merge", logfields.Output(string(destination)))
		return ErrNothingToMerge
	}

	start := time.Now()

	output, err := a.merger.Merge(ctx, outputs, destination)
	a.recorder.ObserveMerge(time.Since(start), err == nil)

	if err != nil {
		slog.Error("Failed to merge artifacts", logfields.Output(string(destination)), logfields.Count(len(outputs)), logfields.Error(err))
		return fmt.Errorf("%w: %w", ErrMergeFailed, err)
	}

	if output.Stderr != "" {
		slog.Warn("Merger reported diagnostics", logfields.Output(string(destination)), slog.String("stderr", output.Stderr))
	}

	slog.Info("Merged artifacts", logfields.Output(string(destination)), logfields.Count(len(outputs)), logfields.Duration(time.Since(start)))

	return nil
}
