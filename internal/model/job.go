package model

import "time"

// Job is one pending transformation of a single input document.
type Job struct {
	Input  Path // eligible file inside a source root
	Output Path // mirrored artifact path under the output tree
	Root   Path // source root the input was found under
}

// OutcomeStatus tells whether a job produced its artifact.
type OutcomeStatus int

const (
	// Succeeded indicates the converter produced the output file.
	Succeeded OutcomeStatus = iota
	// Failed indicates the converter exited abnormally or could not start.
	Failed
)

func (s OutcomeStatus) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the recorded result of running one Job.
type Outcome struct {
	Job        Job
	Status     OutcomeStatus
	Output     Path          // set on success
	Diagnostic string        // failure message, including converter stderr when present
	Warning    string        // converter stderr on a successful run
	Duration   time.Duration // wall time of the converter invocation
}

// Succeeded reports whether the outcome carries a produced artifact.
func (o Outcome) Succeeded() bool { return o.Status == Succeeded }

// BatchResult holds the merged outcomes of every source root of a run.
type BatchResult struct {
	Successes []Outcome
	Failures  []Outcome
}

// Outputs returns the artifact paths of all successes, in order.
func (b BatchResult) Outputs() []Path {
	outputs := make([]Path, 0, len(b.Successes))
	for _, outcome := range b.Successes {
		outputs = append(outputs, outcome.Output)
	}

	return outputs
}

// Total returns the number of recorded outcomes.
func (b BatchResult) Total() int { return len(b.Successes) + len(b.Failures) }
