package services_test

import (
	"context"
	"testing"

	"sweeparr/internal/services"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run ID on fresh context")
	}

	ctx = services.WithRunID(ctx, "run-abc")
	id, ok := services.RunIDFromContext(ctx)
	if !ok || id != "run-abc" {
		t.Fatalf("expected run-abc, got %q (ok=%v)", id, ok)
	}

	// Empty IDs are ignored rather than stored.
	if withEmpty := services.WithRunID(context.Background(), ""); withEmpty != context.Background() {
		if _, ok := services.RunIDFromContext(withEmpty); ok {
			t.Fatal("expected empty run ID to be dropped")
		}
	}
}

func TestSeriesAndEpisodeIDRoundTrip(t *testing.T) {
	ctx := services.WithSeriesID(context.Background(), 42)
	ctx = services.WithEpisodeID(ctx, 9001)

	seriesID, ok := services.SeriesIDFromContext(ctx)
	if !ok || seriesID != 42 {
		t.Fatalf("expected series 42, got %d (ok=%v)", seriesID, ok)
	}
	episodeID, ok := services.EpisodeIDFromContext(ctx)
	if !ok || episodeID != 9001 {
		t.Fatalf("expected episode 9001, got %d (ok=%v)", episodeID, ok)
	}

	if _, ok := services.SeriesIDFromContext(context.Background()); ok {
		t.Fatal("expected no series ID on fresh context")
	}
}
