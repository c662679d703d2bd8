package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/controller"
	"github.com/raestrada95/repotopdf/internal/logfields"
	"github.com/raestrada95/repotopdf/internal/metrics"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// ConvertArgs contains the arguments for converting a source.
type ConvertArgs struct {
	Source      string // clone URL or local directory
	Output      m.Path // parent of the per-repository output directory
	Parallel    int
	Clean       bool
	Recursive   bool
	DocsPath    m.Path // custom docs path relative to the source tree
	SortOutputs bool
	MetricsFile m.Path // Prometheus text file, empty to disable
}

// DiscoverArgs contains the arguments for listing source roots.
type DiscoverArgs struct {
	Source    string
	Recursive bool
	DocsPath  m.Path
}

// MergeArgs contains the arguments for merging existing artifacts.
type MergeArgs struct {
	Dir         m.Path
	Destination m.Path // defaults to <Dir>/<base of Dir><output ext>
}

// ViewArgs contains the arguments for displaying a saved run report.
type ViewArgs struct {
	Dir m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) error
	Discover(ctx context.Context, args DiscoverArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	View(ctx context.Context, args ViewArgs) error
	Known(ctx context.Context) error
}

// WorkflowConfig holds settings shared by every operation.
type WorkflowConfig struct {
	Matcher    MatcherConfig
	KnownRoots KnownRoots
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	repo      adapter.RepoAdapter
	converter adapter.ConverterAdapter
	merger    adapter.MergerAdapter
	matcher   PathMatcher
	known     KnownRoots
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	repoAdapter adapter.RepoAdapter,
	converter adapter.ConverterAdapter,
	merger adapter.MergerAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	config WorkflowConfig,
) Workflow {
	known := config.KnownRoots
	if known == nil {
		known = DefaultKnownRoots()
	}

	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		repo:            repoAdapter,
		converter:       converter,
		merger:          merger,
		matcher:         NewPathMatcher(fsAdapter, config.Matcher),
		known:           known,
	}
}

// acquiredSource is a local source tree ready for discovery.
type acquiredSource struct {
	Root       m.Path
	Repository m.Repository
	Owned      bool // created by this run and removed when it ends
}

// Convert runs the whole pipeline for one source and writes the run report.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	if _, err := NewLimiter(args.Parallel); err != nil {
		return err
	}

	startedAt := time.Now()
	runID := uuid.NewString()

	source, err := w.acquire(ctx, args.Source)
	if err != nil {
		return fmt.Errorf("acquire source: %w", err)
	}

	repo := source.Repository
	outputDir := w.JoinPath(ctx, string(args.Output), repo.OutputDirName())

	if err := w.MkdirAll(ctx, outputDir); err != nil {
		w.release(ctx, source)
		slog.Error("Failed to create output dir", logfields.Path(string(outputDir)), logfields.Error(err))

		return fmt.Errorf("create output dir: %w", err)
	}

	var (
		recorder   metrics.Recorder = metrics.NoopRecorder{}
		promRecord *metrics.PrometheusRecorder
	)

	if args.MetricsFile != "" {
		promRecord = metrics.NewPrometheusRecorder(nil)
		recorder = promRecord
	}

	knownHint, _ := w.known.Lookup(repo)

	slog.Info("Starting conversion", logfields.RunID(runID), logfields.Repository(repo.FullName()), logfields.Path(string(source.Root)))

	w.DisplayRunInfo(ctx, controller.RunInfo{
		RunID:      runID,
		Repository: repo.FullName(),
		Source:     m.Path(args.Source),
		Output:     outputDir,
		Parallel:   args.Parallel,
		Recursive:  args.Recursive,
	})

	if err := w.Start(ctx, controller.WithProgressMode(repo.FullName())); err != nil {
		w.release(ctx, source)
		slog.Error("Failed to start workflow UI", logfields.Error(err))

		return err
	}

	walker := NewTreeWalker(w.SourceFSAdapter, w.matcher)
	orchestrator := NewOrchestrator(
		w.SourceFSAdapter,
		w.matcher,
		walker,
		NewJobRunner(w.converter, recorder),
		NewAggregator(w.merger, recorder),
		w.UI,
	)

	result, runErr := orchestrator.Run(ctx, RunArgs{
		Discovery: DiscoveryArgs{
			Root:       source.Root,
			KnownHint:  knownHint,
			CustomHint: args.DocsPath,
			Recursive:  args.Recursive,
		},
		OutputDir:   outputDir,
		Destination: w.JoinPath(ctx, string(outputDir), repo.MergedFilename(w.matcher.OutputExt())),
		Parallel:    args.Parallel,
		Clean:       args.Clean,
		OwnsSource:  source.Owned,
		SortOutputs: args.SortOutputs,
	})

	w.Close(ctx)

	if result.Merged != "" || result.MergeErr != nil {
		w.DisplayMergeResult(ctx, result.Merged, len(result.Batch.Successes), result.MergeErr)
	}

	report := newRunReport(runID, repo, result, startedAt)

	// Saved without the run context so an interrupted run still leaves a report.
	saveErr := w.SaveReport(context.WithoutCancel(ctx), outputDir, report)
	if saveErr != nil {
		slog.Error("Failed to save run report", logfields.Path(string(outputDir)), logfields.Error(saveErr))
	}

	w.DisplaySummary(ctx, report)

	recorder.IncRunOutcome(result.State.String())

	if promRecord != nil {
		if err := promRecord.WriteTextfile(string(args.MetricsFile)); err != nil {
			slog.Error("Failed to write metrics file", logfields.Path(string(args.MetricsFile)), logfields.Error(err))
		}
	}

	if runErr != nil {
		return fmt.Errorf("convert %s: %w", repo.FullName(), runErr)
	}

	if saveErr != nil {
		return fmt.Errorf("save report: %w", saveErr)
	}

	return nil
}

// Discover lists the source roots a conversion would process.
func (w *workflow) Discover(ctx context.Context, args DiscoverArgs) error {
	source, err := w.acquire(ctx, args.Source)
	if err != nil {
		return fmt.Errorf("acquire source: %w", err)
	}
	defer w.release(ctx, source)

	knownHint, _ := w.known.Lookup(source.Repository)

	roots, err := w.matcher.ResolveSourceRoots(ctx, DiscoveryArgs{
		Root:       source.Root,
		KnownHint:  knownHint,
		CustomHint: args.DocsPath,
		Recursive:  args.Recursive,
	})
	if err != nil {
		slog.Error("Failed to discover source roots", logfields.Repository(source.Repository.FullName()), logfields.Error(err))
		return fmt.Errorf("discover %s: %w", source.Repository.FullName(), err)
	}

	// Cloned trees are removed on return, so show roots relative to them.
	display := make([]m.SourceRoot, 0, len(roots))
	for _, root := range roots {
		if rel, err := w.RelPath(ctx, source.Root, root.Path); err == nil {
			root.Path = rel
		}

		display = append(display, root)
	}

	w.DisplaySourceRoots(ctx, display)

	return nil
}

// Merge combines every artifact under args.Dir, in lexical path order, into
// one deliverable.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	dir, err := w.Abs(ctx, args.Dir)
	if err != nil {
		return fmt.Errorf("resolve dir: %w", err)
	}

	destination := args.Destination
	if destination == "" {
		destination = w.JoinPath(ctx, string(dir), filepath.Base(string(dir))+w.matcher.OutputExt())
	}

	destination, err = w.Abs(ctx, destination)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	artifacts, err := w.collectArtifacts(ctx, dir, destination)
	if err != nil {
		return fmt.Errorf("collect artifacts: %w", err)
	}

	mergeErr := NewAggregator(w.merger, nil).Merge(ctx, artifacts, destination)
	w.DisplayMergeResult(ctx, destination, len(artifacts), mergeErr)

	return mergeErr
}

func (w *workflow) collectArtifacts(ctx context.Context, dir, destination m.Path) ([]m.Path, error) {
	var artifacts []m.Path

	err := w.Walk(ctx, dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), w.matcher.OutputExt()) || m.Path(path) == destination {
			return nil
		}

		artifacts = append(artifacts, m.Path(path))

		return nil
	})

	return artifacts, err
}

// View displays the run report saved in args.Dir.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Dir)
	if err != nil {
		slog.Error("Failed to load run report", logfields.Path(string(args.Dir)), logfields.Error(err))
		return fmt.Errorf("load report: %w", err)
	}

	w.DisplayReport(ctx, report)

	return nil
}

// Known displays the known-roots table.
func (w *workflow) Known(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.DisplayKnownRoots(ctx, w.known.Clone())

	return nil
}

// acquire uses an existing local directory in place and clones anything else
// into a scratch directory.
func (w *workflow) acquire(ctx context.Context, source string) (acquiredSource, error) {
	if strings.TrimSpace(source) == "" {
		return acquiredSource{}, fmt.Errorf("%w: empty", ErrInvalidSource)
	}

	if w.IsDir(ctx, m.Path(source)) {
		root, err := w.Abs(ctx, m.Path(source))
		if err != nil {
			return acquiredSource{}, err
		}

		repo, err := ParseRepository(string(root))
		if err != nil {
			return acquiredSource{}, err
		}

		slog.Debug("Using local source", logfields.Path(string(root)))

		return acquiredSource{Root: root, Repository: repo}, nil
	}

	repo, err := ParseRepository(source)
	if err != nil {
		return acquiredSource{}, err
	}

	scratch, err := w.CreateTempDir(ctx, "repotopdf-*")
	if err != nil {
		return acquiredSource{}, fmt.Errorf("create scratch dir: %w", err)
	}

	if err := w.repo.Clone(ctx, source, scratch); err != nil {
		slog.Error("Failed to clone repository", logfields.URL(source), logfields.Error(err))
		w.release(ctx, acquiredSource{Root: scratch, Owned: true})

		return acquiredSource{}, err
	}

	return acquiredSource{Root: scratch, Repository: repo, Owned: true}, nil
}

func (w *workflow) release(ctx context.Context, source acquiredSource) {
	if !source.Owned {
		return
	}

	if err := w.RemoveAll(ctx, source.Root); err != nil {
		slog.Error("Failed to remove source tree", logfields.Path(string(source.Root)), logfields.Error(err))
	}
}

func newRunReport(runID string, repo m.Repository, result RunResult, startedAt time.Time) m.RunReport {
	report := m.RunReport{
		ID:         runID,
		Repository: repo.FullName(),
		State:      result.State.String(),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Merged:     result.Merged,
		Successes:  make([]m.ReportEntry, 0, len(result.Batch.Successes)),
		Failures:   make([]m.ReportEntry, 0, len(result.Batch.Failures)),
	}

	for _, root := range result.Roots {
		report.Roots = append(report.Roots, root.Path)
	}

	if result.MergeErr != nil {
		report.MergeError = result.MergeErr.Error()
	}

	for _, outcome := range result.Batch.Successes {
		report.Successes = append(report.Successes, m.NewReportEntry(outcome))
	}

	for _, outcome := range result.Batch.Failures {
		report.Failures = append(report.Failures, m.NewReportEntry(outcome))
	}

	return report
}
