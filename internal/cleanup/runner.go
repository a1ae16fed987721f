package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"sweeparr/internal/config"
	"sweeparr/internal/logging"
	"sweeparr/internal/metrics"
	"sweeparr/internal/services"
	"sweeparr/internal/services/plex"
	"sweeparr/internal/services/sonarr"
)

const component = "runner"

// SeriesResult aggregates the outcome for one series within a run.
type SeriesResult struct {
	SeriesID  int64
	Title     string
	Eligible  int
	Processed int
}

// Summary aggregates one whole run. It is returned to the caller for
// rendering and never persisted.
type Summary struct {
	RunID             string
	DryRun            bool
	SeriesScanned     int
	Eligible          int
	Processed         int
	PrunedDirs        int
	RefreshedSections []string
	Duration          time.Duration
	Results           []SeriesResult
}

// Runner executes one cleanup run end to end: fetch daily series, process
// eligible episodes per series, refresh the media server, prune empty
// directories, and log a summary. Either backend may be nil; at least one
// must be present.
type Runner struct {
	cfg       *config.Config
	library   sonarr.Client
	media     plex.Service
	collector *metrics.Collector
	logger    *slog.Logger
	now       func() time.Time
}

// NewRunner builds a Runner. The collector may be nil outside watch mode.
func NewRunner(cfg *config.Config, library sonarr.Client, media plex.Service, collector *metrics.Collector, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		library:   library,
		media:     media,
		collector: collector,
		logger:    logging.NewComponentLogger(logger, component),
		now:       time.Now,
	}
}

// Run performs one cleanup run. Fetch failures and per-item failures are
// logged and absorbed; only a missing backend configuration is fatal.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.library == nil && r.media == nil {
		return nil, services.Wrap(services.ErrConfiguration, component, "run", "no backend configured", nil)
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))

	start := r.now()
	dryRun := r.cfg.Cleanup.DryRun
	summary := &Summary{RunID: runID, DryRun: dryRun}

	logger.Info("starting cleanup run",
		logging.Int("days_threshold", r.cfg.Cleanup.DaysThreshold),
		logging.Bool(logging.FieldDryRun, dryRun),
	)

	if r.library != nil {
		r.processSeries(ctx, logger, summary, Cutoff(start.UTC(), r.cfg.Cleanup.DaysThreshold))
	}

	if r.media != nil {
		if dryRun {
			logger.Debug("skipping library refresh", logging.Bool(logging.FieldDryRun, true))
		} else {
			r.refreshLibrary(ctx, logger, summary)
		}
	}

	if r.cfg.Cleanup.DeleteEmptyDirs && !dryRun {
		pruner := NewPruner(r.cfg.Cleanup.MediaRoot, logger)
		result := pruner.Prune(ctx)
		summary.PrunedDirs = len(result.Removed)
	}

	summary.Duration = r.now().Sub(start)

	mode := "actual run"
	if dryRun {
		mode = "dry run"
	}
	logger.Info("cleanup complete",
		logging.Int("processed", summary.Processed),
		logging.String("mode", mode),
		logging.Duration("duration", summary.Duration),
	)

	r.collector.RecordRun(dryRun, true, summary.Duration)
	r.collector.RecordEpisodes(summary.Processed, summary.Eligible-summary.Processed)
	r.collector.RecordPruned(summary.PrunedDirs)

	return summary, nil
}

func (r *Runner) processSeries(ctx context.Context, logger *slog.Logger, summary *Summary, cutoff time.Time) {
	all, err := r.library.Series(ctx)
	if err != nil {
		logger.Error("failed to fetch series", logging.Error(err))
		return
	}

	daily := SelectDaily(all)
	summary.SeriesScanned = len(daily)

	proc := NewProcessor(r.library, logger, r.cfg.Cleanup.DryRun)

	for _, s := range daily {
		sctx := services.WithSeriesID(ctx, s.ID)
		slogger := logger.With(
			logging.Int64(logging.FieldSeriesID, s.ID),
			logging.String(logging.FieldSeriesTitle, s.Title),
		)

		episodes, err := r.library.EpisodesForSeries(sctx, s.ID)
		if err != nil {
			slogger.Error("failed to fetch episodes", logging.Error(err))
			continue
		}

		eligible := EligibleEpisodes(episodes, cutoff)
		if len(eligible) == 0 {
			continue
		}

		slogger.Info("processing episodes", logging.Int(logging.FieldEpisodeCount, len(eligible)))

		processed := r.processBatch(sctx, proc, eligible)

		summary.Eligible += len(eligible)
		summary.Processed += processed
		summary.Results = append(summary.Results, SeriesResult{
			SeriesID:  s.ID,
			Title:     s.Title,
			Eligible:  len(eligible),
			Processed: processed,
		})
	}
}

// processBatch runs one series' eligible episodes, sequentially or through a
// bounded worker pool. The batch joins before the caller moves on; the
// success count is taken from the results slice after the join.
func (r *Runner) processBatch(ctx context.Context, proc *Processor, episodes []sonarr.Episode) int {
	if !r.cfg.Performance.ParallelProcessing || len(episodes) < 2 {
		processed := 0
		for _, ep := range episodes {
			if proc.Process(services.WithEpisodeID(ctx, ep.ID), ep) {
				processed++
			}
		}
		return processed
	}

	workers := r.cfg.Performance.MaxWorkers
	if workers < 1 {
		workers = 1
	}

	results := make([]bool, len(episodes))
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, ep := range episodes {
		wg.Add(1)
		go func(index int, ep sonarr.Episode) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			results[index] = proc.Process(services.WithEpisodeID(ctx, ep.ID), ep)
		}(i, ep)
	}
	wg.Wait()

	processed := 0
	for _, ok := range results {
		if ok {
			processed++
		}
	}
	return processed
}

func (r *Runner) refreshLibrary(ctx context.Context, logger *slog.Logger, summary *Summary) {
	refreshed, err := plex.RefreshShowSections(ctx, r.media)
	for _, section := range refreshed {
		logger.Info("refreshed library section", logging.String("section", section.Title))
		summary.RefreshedSections = append(summary.RefreshedSections, section.Title)
	}
	if err != nil {
		logger.Error("library refresh failed", logging.Error(err))
	}
}
