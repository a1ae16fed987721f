package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	seriesIDKey  contextKey = "series_id"
	episodeIDKey contextKey = "episode_id"
)

// WithRunID annotates context with the cleanup run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the cleanup run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSeriesID annotates context with the series identifier being processed.
func WithSeriesID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, seriesIDKey, id)
}

// SeriesIDFromContext extracts the series identifier if present.
func SeriesIDFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(seriesIDKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	default:
		return 0, false
	}
}

// WithEpisodeID annotates context with the episode identifier being processed.
func WithEpisodeID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, episodeIDKey, id)
}

// EpisodeIDFromContext extracts the episode identifier if present.
func EpisodeIDFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(episodeIDKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	default:
		return 0, false
	}
}
