package domain

import (
	"sync"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// Accumulator collects the outcomes of one source root. Appends are safe from
// concurrent jobs; order within each sequence is completion order.
type Accumulator struct {
	mu        sync.Mutex
	successes []m.Outcome
	failures  []m.Outcome
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Record appends outcome to the sequence matching its status.
func (a *Accumulator) Record(outcome m.Outcome) {
	if outcome.Succeeded() {
		a.RecordSuccess(outcome)
		return
	}

	a.RecordFailure(outcome)
}

// RecordSuccess appends a successful outcome.
func (a *Accumulator) RecordSuccess(outcome m.Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.successes = append(a.successes, outcome)
}

// RecordFailure appends a failed outcome.
func (a *Accumulator) RecordFailure(outcome m.Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.failures = append(a.failures, outcome)
}

// Snapshot returns a copy of both sequences.
func (a *Accumulator) Snapshot() m.BatchResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	return m.BatchResult{
		Successes: append([]m.Outcome(nil), a.successes...),
		Failures:  append([]m.Outcome(nil), a.failures...),
	}
}

// MergeBatches concatenates batches in the given order.
func MergeBatches(batches ...m.BatchResult) m.BatchResult {
	var merged m.BatchResult

	for _, batch := range batches {
		merged.Successes = append(merged.Successes, batch.Successes...)
		merged.Failures = append(merged.Failures, batch.Failures...)
	}

	return merged
}
