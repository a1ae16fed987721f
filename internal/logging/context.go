package logging

import (
	"context"
	"log/slog"

	"sweeparr/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for cleanup run identifiers.
	FieldRunID = "run_id"
	// FieldSeriesID is the standardized structured logging key for series identifiers.
	FieldSeriesID = "series_id"
	// FieldSeriesTitle is the standardized structured logging key for series titles.
	FieldSeriesTitle = "series"
	// FieldEpisodeID is the standardized structured logging key for episode identifiers.
	FieldEpisodeID = "episode_id"
	// FieldEpisodeCount is the standardized structured logging key for episodes in a batch.
	FieldEpisodeCount = "episode_count"
	// FieldDryRun is the standardized structured logging key for the dry-run switch.
	FieldDryRun = "dry_run"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if id, ok := services.SeriesIDFromContext(ctx); ok {
		fields = append(fields, slog.Int64(FieldSeriesID, id))
	}
	if id, ok := services.EpisodeIDFromContext(ctx); ok {
		fields = append(fields, slog.Int64(FieldEpisodeID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
