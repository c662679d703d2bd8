package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/logfields"
	m "github.com/raestrada95/repotopdf/internal/model"
)

// Observer receives progress notifications from a run. controller.UI
// satisfies it.
type Observer interface {
	DisplayStateChange(ctx context.Context, state m.RunState)
	DisplaySourceRoots(ctx context.Context, roots []m.SourceRoot)
	DisplayJobStarted(ctx context.Context, job m.Job)
	DisplayJobCompleted(ctx context.Context, outcome m.Outcome)
	DisplayFailures(ctx context.Context, failures []m.Outcome)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) DisplayStateChange(context.Context, m.RunState)       {}
func (NopObserver) DisplaySourceRoots(context.Context, []m.SourceRoot) {}
func (NopObserver) DisplayJobStarted(context.Context, m.Job)             {}
func (NopObserver) DisplayJobCompleted(context.Context, m.Outcome)       {}
func (NopObserver) DisplayFailures(context.Context, []m.Outcome)         {}

// RunArgs configures one orchestrated conversion.
type RunArgs struct {
	Discovery   DiscoveryArgs // Discovery.Root is the acquired source tree
	OutputDir   m.Path        // per-repository output directory
	Destination m.Path        // merged deliverable
	Parallel    int           // limit on concurrent converter invocations
	Clean       bool          // remove intermediates once the deliverable exists
	OwnsSource  bool          // remove the source tree when the run ends
	SortOutputs bool          // order each root's artifacts by input path before merging
}

// RunResult is the final state of an orchestrated conversion.
type RunResult struct {
	State    m.RunState
	Roots    []m.SourceRoot
	Batch    m.BatchResult // successes and failures, roots in discovery order
	Merged   m.Path        // empty when no deliverable was produced
	MergeErr error
}

// Orchestrator drives Discover -> FanOutWalk -> Aggregate -> Cleanup -> Done,
// with Failed reachable from every stage.
type Orchestrator interface {
	Run(ctx context.Context, args RunArgs) (RunResult, error)
}

type orchestrator struct {
	fs         adapter.SourceFSAdapter
	matcher    PathMatcher
	walker     TreeWalker
	runner     JobRunner
	aggregator Aggregator
	observer   Observer
}

// NewOrchestrator composes the pipeline stages. A nil observer is replaced by
// NopObserver.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	matcher PathMatcher,
	walker TreeWalker,
	runner JobRunner,
	aggregator Aggregator,
	observer Observer,
) Orchestrator {
	if observer == nil {
		observer = NopObserver{}
	}

	return &orchestrator{
		fs:         fsAdapter,
		matcher:    matcher,
		walker:     walker,
		runner:     runner,
		aggregator: aggregator,
		observer:   observer,
	}
}

func (o *orchestrator) Run(ctx context.Context, args RunArgs) (RunResult, error) {
	var result RunResult

	releaseSource := sync.OnceFunc(func() {
		if args.OwnsSource {
			o.removeSource(ctx, args.Discovery.Root)
		}
	})
	defer releaseSource()

	limiter, err := NewLimiter(args.Parallel)
	if err != nil {
		return o.fail(ctx, result, err)
	}

	o.transition(ctx, &result, m.StateDiscover)

	roots, err := o.matcher.ResolveSourceRoots(ctx, args.Discovery)
	if err != nil {
		return o.fail(ctx, result, err)
	}

	result.Roots = roots
	o.observer.DisplaySourceRoots(ctx, roots)

	o.transition(ctx, &result, m.StateFanOutWalk)

	batches, err := o.fanOut(ctx, roots, args, limiter)
	result.Batch = MergeBatches(batches...)

	if err != nil {
		return o.fail(ctx, result, fmt.Errorf("convert files: %w", err))
	}

	slog.Info("Conversions finished",
		slog.Int("succeeded", len(result.Batch.Successes)),
		slog.Int("failed", len(result.Batch.Failures)))

	o.observer.DisplayFailures(ctx, result.Batch.Failures)

	o.transition(ctx, &result, m.StateAggregate)

	mergeErr := o.aggregator.Merge(ctx, orderedOutputs(batches, args.SortOutputs), args.Destination)
	if mergeErr == nil {
		result.Merged = args.Destination
	} else {
		result.MergeErr = mergeErr
	}

	o.transition(ctx, &result, m.StateCleanup)

	if args.Clean && result.Merged != "" {
		o.removeIntermediates(ctx, args.OutputDir, result.Merged)
	}

	releaseSource()

	if mergeErr != nil && !errors.Is(mergeErr, ErrNothingToMerge) {
		return o.fail(ctx, result, mergeErr)
	}

	o.transition(ctx, &result, m.StateDone)

	return result, nil
}

// fanOut processes every root concurrently. Only the limiter bounds work;
// the returned batches are indexed by discovery order.
func (o *orchestrator) fanOut(ctx context.Context, roots []m.SourceRoot, args RunArgs, limiter *Limiter) ([]m.BatchResult, error) {
	batches := make([]m.BatchResult, len(roots))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, root := range roots {
		outputBase := o.outputBase(ctx, args, root, len(roots))
		nested := nestedRoots(root, roots)

		group.Go(func() error {
			batch, err := o.processRoot(groupCtx, root, outputBase, nested, limiter)
			batches[i] = batch

			return err
		})
	}

	err := group.Wait()

	return batches, err
}

// nestedRoots lists the other roots located below root. Each file belongs to
// its deepest enclosing root, so the outer walk leaves these to their own root.
func nestedRoots(root m.SourceRoot, roots []m.SourceRoot) []m.Path {
	var nested []m.Path

	prefix := filepath.Clean(string(root.Path)) + string(filepath.Separator)

	for _, other := range roots {
		if strings.HasPrefix(filepath.Clean(string(other.Path)), prefix) {
			nested = append(nested, other.Path)
		}
	}

	return nested
}

// outputBase places a single root directly in the output directory. With
// several roots each one is nested under its path relative to the source
// tree. Nested roots are excluded from the walk of their ancestors, so each
// artifact path is produced by exactly one root.
func (o *orchestrator) outputBase(ctx context.Context, args RunArgs, root m.SourceRoot, rootCount int) m.Path {
	if rootCount < 2 {
		return args.OutputDir
	}

	rel, err := o.fs.RelPath(ctx, args.Discovery.Root, root.Path)
	if err != nil || rel == "." {
		return o.fs.JoinPath(ctx, string(args.OutputDir), fmt.Sprintf("root-%d", root.Index+1))
	}

	return o.fs.JoinPath(ctx, string(args.OutputDir), string(rel))
}

func (o *orchestrator) processRoot(ctx context.Context, root m.SourceRoot, outputBase m.Path, nested []m.Path, limiter *Limiter) (m.BatchResult, error) {
	acc := NewAccumulator()
	jobs, walkErrs := o.walker.Walk(ctx, root.Path, outputBase, nested...)

	var tickets []*Ticket

	for job := range jobs {
		tickets = append(tickets, limiter.Submit(ctx, func(ctx context.Context) {
			o.observer.DisplayJobStarted(ctx, job)
			outcome := o.runner.Run(ctx, job)
			acc.Record(outcome)
			o.observer.DisplayJobCompleted(ctx, outcome)
		}))
	}

	walkErr := <-walkErrs

	var admitErr error

	for _, ticket := range tickets {
		if err := ticket.Wait(); err != nil && admitErr == nil {
			admitErr = err
		}
	}

	batch := acc.Snapshot()

	slog.Debug("Source root processed",
		logfields.Root(string(root.Path)),
		slog.Int("succeeded", len(batch.Successes)),
		slog.Int("failed", len(batch.Failures)))

	if walkErr != nil {
		return batch, walkErr
	}

	return batch, admitErr
}

func orderedOutputs(batches []m.BatchResult, sortWithinRoot bool) []m.Path {
	var outputs []m.Path

	for _, batch := range batches {
		successes := batch.Successes
		if sortWithinRoot {
			successes = append([]m.Outcome(nil), successes...)
			sort.SliceStable(successes, func(i, j int) bool {
				return successes[i].Job.Input < successes[j].Job.Input
			})
		}

		for _, outcome := range successes {
			outputs = append(outputs, outcome.Output)
		}
	}

	return outputs
}

// removeIntermediates deletes everything in outputDir except the deliverable
// and the run report.
func (o *orchestrator) removeIntermediates(ctx context.Context, outputDir, keep m.Path) {
	entries, err := o.fs.ReadDir(ctx, outputDir)
	if err != nil {
		slog.Error("Failed to list output dir for cleanup", logfields.Path(string(outputDir)), logfields.Error(err))
		return
	}

	removed := 0

	for _, entry := range entries {
		if entry.Name() == filepath.Base(string(keep)) || entry.Name() == adapter.ReportFilename {
			continue
		}

		path := o.fs.JoinPath(ctx, string(outputDir), entry.Name())
		if err := o.fs.RemoveAll(ctx, path); err != nil {
			slog.Error("Failed to remove intermediate output", logfields.Path(string(path)), logfields.Error(err))
			continue
		}

		removed++
	}

	slog.Debug("Removed intermediate outputs", logfields.Path(string(outputDir)), logfields.Count(removed))
}

func (o *orchestrator) removeSource(ctx context.Context, source m.Path) {
	if source == "" {
		return
	}

	if err := o.fs.RemoveAll(ctx, source); err != nil {
		slog.Error("Failed to remove source tree", logfields.Path(string(source)), logfields.Error(err))
		return
	}

	slog.Debug("Removed source tree", logfields.Path(string(source)))
}

func (o *orchestrator) transition(ctx context.Context, result *RunResult, state m.RunState) {
	result.State = state

	slog.Info("Run state changed", logfields.State(state.String()))
	o.observer.DisplayStateChange(ctx, state)
}

func (o *orchestrator) fail(ctx context.Context, result RunResult, err error) (RunResult, error) {
	slog.Error("Run failed", logfields.State(result.State.String()), logfields.Error(err))
	o.transition(ctx, &result, m.StateFailed)

	return result, err
}
