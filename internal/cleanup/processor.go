package cleanup

import (
	"context"
	"log/slog"

	"sweeparr/internal/logging"
	"sweeparr/internal/services/sonarr"
)

// Processor removes a single episode: unmonitor it so the library manager
// does not re-grab it, then delete its file record. Under dry run it only
// reports what it would do.
type Processor struct {
	client sonarr.Client
	logger *slog.Logger
	dryRun bool
}

// NewProcessor builds a Processor. A nil logger falls back to a nop logger.
func NewProcessor(client sonarr.Client, logger *slog.Logger, dryRun bool) *Processor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Processor{client: client, logger: logger, dryRun: dryRun}
}

// Process handles one episode and reports whether it counts as processed.
// Failures are logged here; a false return never aborts the batch.
func (p *Processor) Process(ctx context.Context, ep sonarr.Episode) bool {
	if p.dryRun {
		p.logger.Info("would delete episode",
			logging.Int64(logging.FieldEpisodeID, ep.ID),
			logging.String("title", ep.Title),
			logging.Bool(logging.FieldDryRun, true),
		)
		return true
	}

	if err := p.client.UnmonitorEpisode(ctx, ep); err != nil {
		p.logger.Error("failed to unmonitor episode",
			logging.Int64(logging.FieldEpisodeID, ep.ID),
			logging.Error(err),
		)
		return false
	}

	// The episode is already unmonitored at this point. A delete failure
	// leaves that as is; the run reports the episode as failed.
	if err := p.client.DeleteEpisodeFile(ctx, ep.EpisodeFileID); err != nil {
		p.logger.Error("failed to delete episode file",
			logging.Int64(logging.FieldEpisodeID, ep.ID),
			logging.Int64("episode_file_id", ep.EpisodeFileID),
			logging.Error(err),
		)
		return false
	}

	p.logger.Info("deleted episode",
		logging.Int64(logging.FieldEpisodeID, ep.ID),
		logging.String("title", ep.Title),
	)
	return true
}
