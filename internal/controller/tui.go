package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/raestrada95/repotopdf/internal/model"
)

// maxActiveJobs caps how many in-flight files the progress view lists.
const maxActiveJobs = 5

// TUI implements UI using Bubble Tea for live progress and lipgloss for
// static output.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view when progress mode is requested.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)
	if cfg.mode != ModeProgress {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	// Input and signals stay with the terminal so an interrupt cancels the
	// run context instead of being swallowed as a key press.
	program := tea.NewProgram(
		newProgressModel(cfg.title),
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done

	return nil
}

// Close stops the progress view and waits for its final frame.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishMsg{})
	<-done
}

// Wait blocks until the progress view exits or ctx is done.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayRunInfo prints what is about to be converted.
func (t *TUI) DisplayRunInfo(_ context.Context, info RunInfo) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("repotopdf"), labelStyle.Render(info.Repository))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("source"), info.Source)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("output"), info.Output)
	fmt.Fprintf(&b, "  %s %d", dimStyle.Render("workers"), info.Parallel)

	if info.Recursive {
		b.WriteString(dimStyle.Render(" (recursive)"))
	}

	t.println(b.String())
}

// DisplaySourceRoots prints the discovered source roots.
func (t *TUI) DisplaySourceRoots(_ context.Context, roots []m.SourceRoot) {
	if len(roots) == 0 {
		t.println(failureStyle.Render("✗ No documentation folders found"))
		return
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", labelStyle.Render(fmt.Sprintf("📁 %d source root(s)", len(roots))))

	for _, root := range roots {
		fmt.Fprintf(&b, "  %d. %s %s\n", root.Index+1, root.Path, dimStyle.Render("("+rootSelector(root)+")"))
	}

	t.println(strings.TrimRight(b.String(), "\n"))
}

// DisplayStateChange forwards the current stage to the progress view.
func (t *TUI) DisplayStateChange(_ context.Context, state m.RunState) {
	t.send(stateMsg{state: state})
}

// DisplayJobStarted forwards a started job to the progress view.
func (t *TUI) DisplayJobStarted(_ context.Context, job m.Job) {
	t.send(jobStartedMsg{job: job})
}

// DisplayJobCompleted forwards a finished job to the progress view.
func (t *TUI) DisplayJobCompleted(_ context.Context, outcome m.Outcome) {
	if !t.send(jobCompletedMsg{outcome: outcome}) {
		t.println(renderOutcomeLine(outcome))
	}
}

// DisplayFailures lists every failed file with its diagnostic.
func (t *TUI) DisplayFailures(_ context.Context, failures []m.Outcome) {
	if len(failures) == 0 {
		return
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", failureStyle.Render(fmt.Sprintf("✗ %d file(s) failed to convert", len(failures))))

	for _, failure := range failures {
		fmt.Fprintf(&b, "  %s\n", failure.Job.Input)

		for _, line := range strings.Split(strings.TrimSpace(failure.Diagnostic), "\n") {
			fmt.Fprintf(&b, "    %s\n", dimStyle.Render(line))
		}
	}

	t.println(strings.TrimRight(b.String(), "\n"))
}

// DisplayMergeResult reports the aggregation step.
func (t *TUI) DisplayMergeResult(_ context.Context, merged m.Path, count int, err error) {
	switch {
	case count == 0:
		t.println(warningStyle.Render("⚠ No PDFs created, nothing to merge"))
	case err != nil:
		t.println(failureStyle.Render(fmt.Sprintf("✗ Merge failed: %v", err)))
	default:
		t.println(successStyle.Render(fmt.Sprintf("✓ Merged %d file(s) into %s", count, merged)))
	}
}

// DisplaySummary prints the outcome counts of a run.
func (t *TUI) DisplaySummary(_ context.Context, report m.RunReport) {
	total := len(report.Successes) + len(report.Failures)

	style := successStyle
	if report.State != m.StateDone.String() {
		style = failureStyle
	}

	t.println(fmt.Sprintf("📊 %s converted, %s failed, %d total %s",
		successStyle.Render(fmt.Sprintf("%d", len(report.Successes))),
		failureStyle.Render(fmt.Sprintf("%d", len(report.Failures))),
		total,
		style.Render("["+report.State+"]"),
	))
}

// DisplayReport prints a saved run report.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", titleStyle.Render("repotopdf"), labelStyle.Render(report.Repository), dimStyle.Render(report.ID))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("started "), report.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("finished"), report.FinishedAt.Format("2006-01-02 15:04:05"))

	for _, root := range report.Roots {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("root    "), root)
	}

	if report.Merged != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("merged  "), report.Merged)
	}

	if report.MergeError != "" {
		fmt.Fprintf(&b, "  %s\n", failureStyle.Render("merge error: "+report.MergeError))
	}

	b.WriteString("\n")

	for _, entry := range report.Successes {
		fmt.Fprintf(&b, "  %s %s → %s\n", successStyle.Render("✓"), entry.Input, entry.Output)

		if entry.Warning != "" {
			fmt.Fprintf(&b, "    %s\n", warningStyle.Render(firstLine(entry.Warning)))
		}
	}

	for _, entry := range report.Failures {
		fmt.Fprintf(&b, "  %s %s\n", failureStyle.Render("✗"), entry.Input)
		fmt.Fprintf(&b, "    %s\n", dimStyle.Render(firstLine(entry.Diagnostic)))
	}

	t.println(strings.TrimRight(b.String(), "\n"))
	t.DisplaySummary(ctx, report)
}

// DisplayKnownRoots prints the known-roots table.
func (t *TUI) DisplayKnownRoots(_ context.Context, roots map[string]m.Path) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", labelStyle.Render("📚 Known documentation roots"))

	for _, name := range sortedKnownRoots(roots) {
		fmt.Fprintf(&b, "  %-28s %s\n", name, dimStyle.Render(string(roots[name])))
	}

	t.println(strings.TrimRight(b.String(), "\n"))
}

// send delivers msg to the running progress view and reports whether one
// was running.
func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// println prints above the progress view when it runs, directly otherwise.
func (t *TUI) println(s string) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Println(s)
		return
	}

	_, _ = fmt.Fprintln(t.output, s)
}

func renderOutcomeLine(outcome m.Outcome) string {
	if !outcome.Succeeded() {
		return fmt.Sprintf("%s %s %s", failureStyle.Render("✗"), displayPath(outcome.Job), dimStyle.Render(firstLine(outcome.Diagnostic)))
	}

	line := fmt.Sprintf("%s %s", successStyle.Render("✓"), displayPath(outcome.Job))
	if outcome.Warning != "" {
		line += " " + warningStyle.Render(firstLine(outcome.Warning))
	}

	return line
}

type (
	jobStartedMsg   struct{ job m.Job }
	jobCompletedMsg struct{ outcome m.Outcome }
	stateMsg        struct{ state m.RunState }
	finishMsg       struct{}
)

// progressModel is the Bubble Tea model for a running conversion.
type progressModel struct {
	title     string
	spinner   spinner.Model
	progress  progress.Model
	state     m.RunState
	started   int
	completed int
	failed    int
	active    []m.Job
	finished  bool
}

func newProgressModel(title string) progressModel {
	return progressModel{
		title:    title,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		state:    m.StateDiscover,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobStartedMsg:
		pm.started++
		pm.active = append(pm.active, msg.job)

		return pm, nil

	case jobCompletedMsg:
		pm.completed++
		if !msg.outcome.Succeeded() {
			pm.failed++
		}

		pm.active = removeJob(pm.active, msg.outcome.Job)

		return pm, tea.Println(renderOutcomeLine(msg.outcome))

	case stateMsg:
		pm.state = msg.state

		return pm, nil

	case finishMsg:
		pm.finished = true
		pm.active = nil

		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.started == 0 {
		return 0
	}

	return float64(pm.completed) / float64(pm.started)
}

func (pm progressModel) View() string {
	var b strings.Builder

	if pm.finished {
		fmt.Fprintf(&b, "%s %s %s\n", successStyle.Render("✓"), pm.title, dimStyle.Render("["+pm.state.String()+"]"))
	} else {
		fmt.Fprintf(&b, "%s %s %s\n", pm.spinner.View(), pm.title, dimStyle.Render("["+pm.state.String()+"]"))
	}

	fmt.Fprintf(&b, "%s %d/%d", pm.progress.ViewAs(pm.percent()), pm.completed, pm.started)

	if pm.failed > 0 {
		b.WriteString(failureStyle.Render(fmt.Sprintf(" (%d failed)", pm.failed)))
	}

	b.WriteString("\n")

	for i, job := range pm.active {
		if i == maxActiveJobs {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("… %d more", len(pm.active)-maxActiveJobs)))
			break
		}

		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("›"), displayPath(job))
	}

	return b.String()
}

func removeJob(jobs []m.Job, job m.Job) []m.Job {
	for i := range jobs {
		if jobs[i] == job {
			return append(jobs[:i:i], jobs[i+1:]...)
		}
	}

	return jobs
}
