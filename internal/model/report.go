package model

import "time"

// ReportEntry is the persisted form of one Outcome.
type ReportEntry struct {
	Input      Path   `yaml:"input"`
	Output     Path   `yaml:"output,omitempty"`
	Diagnostic string `yaml:"diagnostic,omitempty"`
	Warning    string `yaml:"warning,omitempty"`
	DurationMS int64  `yaml:"duration_ms"`
}

// RunReport summarizes a finished conversion run.
type RunReport struct {
	ID         string        `yaml:"id"`
	Repository string        `yaml:"repository"`
	State      string        `yaml:"state"`
	StartedAt  time.Time     `yaml:"started_at"`
	FinishedAt time.Time     `yaml:"finished_at"`
	Roots      []Path        `yaml:"roots"`
	Merged     Path          `yaml:"merged,omitempty"`
	MergeError string        `yaml:"merge_error,omitempty"`
	Successes  []ReportEntry `yaml:"successes"`
	Failures   []ReportEntry `yaml:"failures"`
}

// NewReportEntry converts an Outcome to its persisted form.
func NewReportEntry(outcome Outcome) ReportEntry {
	return ReportEntry{
		Input:      outcome.Job.Input,
		Output:     outcome.Output,
		Diagnostic: outcome.Diagnostic,
		Warning:    outcome.Warning,
		DurationMS: outcome.Duration.Milliseconds(),
	}
}
