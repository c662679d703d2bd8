// Package metrics provides observability hooks for conversion runs.
package metrics

import (
	"time"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// Recorder receives run, job and merge measurements. Implementations must be
// safe for concurrent use.
type Recorder interface {
	ConversionStarted()
	ConversionFinished(status m.OutcomeStatus, d time.Duration)
	ObserveMerge(d time.Duration, success bool)
	IncRunOutcome(state string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ConversionStarted()                               {}
func (NoopRecorder) ConversionFinished(m.OutcomeStatus, time.Duration) {}
func (NoopRecorder) ObserveMerge(time.Duration, bool)                 {}
func (NoopRecorder) IncRunOutcome(string)                             {}
