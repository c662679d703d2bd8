package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/logfields"
	"github.com/raestrada95/repotopdf/internal/metrics"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// JobRunner performs one conversion and classifies its outcome.
type JobRunner interface {
	Run(ctx context.Context, job m.Job) m.Outcome
}

type jobRunner struct {
	converter adapter.ConverterAdapter
	recorder  metrics.Recorder
}

// NewJobRunner creates a JobRunner invoking converter once per job. A nil
// recorder disables metrics.
func NewJobRunner(converter adapter.ConverterAdapter, recorder metrics.Recorder) JobRunner {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	return &jobRunner{converter: converter, recorder: recorder}
}

// Run never retries. Failure is decided by the converter's exit status only;
// stderr of a successful run is kept as a warning.
func (r *jobRunner) Run(ctx context.Context, job m.Job) (outcome m.Outcome) {
	start := time.Now()

	r.recorder.ConversionStarted()

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Converter panicked", logfields.Input(string(job.Input)), slog.Any("panic", rec))
			outcome = failedOutcome(job, fmt.Sprintf("panic: %v", rec))
		}

		outcome.Duration = time.Since(start)
		r.recorder.ConversionFinished(outcome.Status, outcome.Duration)
	}()

	output, err := r.converter.Convert(ctx, job.Input, job.Output)
	if err != nil {
		slog.Error("Failed to convert file", logfields.Input(string(job.Input)), logfields.Error(err))
		return failedOutcome(job, err.Error())
	}

	outcome = m.Outcome{Job: job, Status: m.Succeeded, Output: job.Output}

	if warning := strings.TrimSpace(output.Stderr); warning != "" {
		slog.Warn("Converter reported diagnostics", logfields.Input(string(job.Input)), slog.String("stderr", warning))
		outcome.Warning = warning
	}

	slog.Debug("Converted file", logfields.Input(string(job.Input)), logfields.Output(string(job.Output)))

	return outcome
}

func failedOutcome(job m.Job, diagnostic string) m.Outcome {
	return m.Outcome{Job: job, Status: m.Failed, Diagnostic: diagnostic}
}
