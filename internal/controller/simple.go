package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayRunInfo prints what is about to be converted.
func (s *SimpleUI) DisplayRunInfo(_ context.Context, info RunInfo) {
	mode := "first match"
	if info.Recursive {
		mode = "recursive"
	}

	s.printf("Converting %s with %d worker(s) (%s discovery)\n", info.Repository, info.Parallel, mode)
	s.printf("Source: %s\n", info.Source)
	s.printf("Output: %s\n", info.Output)

	if info.RunID != "" {
		s.printf("Run: %s\n", info.RunID)
	}
}

// DisplaySourceRoots prints the discovered source roots.
func (s *SimpleUI) DisplaySourceRoots(_ context.Context, roots []m.SourceRoot) {
	if len(roots) == 0 {
		s.printf("No documentation folders found\n")
		return
	}

	s.printf("\n%s", renderRootsTable(roots))
}

// DisplayStateChange is a no-op; state transitions are only logged.
func (s *SimpleUI) DisplayStateChange(_ context.Context, _ m.RunState) {}

// DisplayJobStarted prints the file being converted.
func (s *SimpleUI) DisplayJobStarted(_ context.Context, job m.Job) {
	s.printf("Converting %s\n", displayPath(job))
}

// DisplayJobCompleted prints the outcome of one conversion.
func (s *SimpleUI) DisplayJobCompleted(_ context.Context, outcome m.Outcome) {
	if !outcome.Succeeded() {
		s.printf("Failed %s: %s\n", displayPath(outcome.Job), firstLine(outcome.Diagnostic))
		return
	}

	s.printf("Converted %s -> %s\n", displayPath(outcome.Job), outcome.Output)

	if outcome.Warning != "" {
		s.printf("Warning %s: %s\n", displayPath(outcome.Job), firstLine(outcome.Warning))
	}
}

// DisplayFailures lists every failed file with its diagnostic.
func (s *SimpleUI) DisplayFailures(_ context.Context, failures []m.Outcome) {
	if len(failures) == 0 {
		return
	}

	s.printf("\n%d file(s) failed to convert:\n", len(failures))

	for _, failure := range failures {
		s.printf("  %s\n", failure.Job.Input)

		for _, line := range strings.Split(strings.TrimSpace(failure.Diagnostic), "\n") {
			s.printf("    %s\n", line)
		}
	}
}

// DisplayMergeResult reports the aggregation step.
func (s *SimpleUI) DisplayMergeResult(_ context.Context, merged m.Path, count int, err error) {
	switch {
	case count == 0:
		s.printf("No PDFs created, nothing to merge\n")
	case err != nil:
		s.printf("Merge failed: %v\n", err)
	default:
		s.printf("Merged %d file(s) into %s\n", count, merged)
	}
}

// DisplaySummary prints the outcome counts of a run.
func (s *SimpleUI) DisplaySummary(_ context.Context, report m.RunReport) {
	total := len(report.Successes) + len(report.Failures)
	s.printf("\nConverted %d of %d file(s), %d failed (%s)\n", len(report.Successes), total, len(report.Failures), report.State)
}

// DisplayReport prints a saved run report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) {
	s.printf("Run %s for %s\n", report.ID, report.Repository)
	s.printf("Started %s, finished %s\n", report.StartedAt.Format("2006-01-02 15:04:05"), report.FinishedAt.Format("2006-01-02 15:04:05"))

	for _, root := range report.Roots {
		s.printf("Root: %s\n", root)
	}

	if report.Merged != "" {
		s.printf("Merged: %s\n", report.Merged)
	}

	if report.MergeError != "" {
		s.printf("Merge error: %s\n", report.MergeError)
	}

	s.printf("\n%s", renderReportTable(report))
	s.DisplaySummary(ctx, report)
}

// DisplayKnownRoots prints the known-roots table.
func (s *SimpleUI) DisplayKnownRoots(_ context.Context, roots map[string]m.Path) {
	s.printf("%s", renderKnownRootsTable(roots))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderRootsTable(roots []m.SourceRoot) string {
	var buf bytes.Buffer

	table := newTable(&buf, "#", "Source root", "Selected by")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, root := range roots {
		table.Append([]string{fmt.Sprintf("%d", root.Index+1), string(root.Path), rootSelector(root)})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(roots)), ""})
	table.Render()

	return buf.String()
}

func renderKnownRootsTable(roots map[string]m.Path) string {
	var buf bytes.Buffer

	table := newTable(&buf, "Repository", "Docs path")

	for _, name := range sortedKnownRoots(roots) {
		table.Append([]string{name, string(roots[name])})
	}

	table.Render()

	return buf.String()
}

func renderReportTable(report m.RunReport) string {
	var buf bytes.Buffer

	table := newTable(&buf, "Status", "Input", "Result")

	for _, entry := range report.Successes {
		result := string(entry.Output)
		if entry.Warning != "" {
			result += " (warning: " + firstLine(entry.Warning) + ")"
		}

		table.Append([]string{m.Succeeded.String(), string(entry.Input), result})
	}

	for _, entry := range report.Failures {
		table.Append([]string{m.Failed.String(), string(entry.Input), firstLine(entry.Diagnostic)})
	}

	table.Render()

	return buf.String()
}
