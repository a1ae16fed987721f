package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRunCountsByModeAndOutcome(t *testing.T) {
	c := NewCollector()

	c.RecordRun(false, true, 2*time.Second)
	c.RecordRun(false, true, 3*time.Second)
	c.RecordRun(true, false, time.Second)

	if got := testutil.ToFloat64(c.runs.WithLabelValues("real", "success")); got != 2 {
		t.Fatalf("expected 2 real successes, got %v", got)
	}
	if got := testutil.ToFloat64(c.runs.WithLabelValues("dry_run", "error")); got != 1 {
		t.Fatalf("expected 1 dry-run error, got %v", got)
	}
	if got := testutil.ToFloat64(c.lastRun); got == 0 {
		t.Fatal("expected last run timestamp to be set")
	}
}

func TestRecordEpisodesSplitsResults(t *testing.T) {
	c := NewCollector()

	c.RecordEpisodes(4, 1)
	c.RecordEpisodes(0, 0)

	if got := testutil.ToFloat64(c.episodes.WithLabelValues("success")); got != 4 {
		t.Fatalf("expected 4 successes, got %v", got)
	}
	if got := testutil.ToFloat64(c.episodes.WithLabelValues("failure")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector

	c.RecordRun(true, true, time.Second)
	c.RecordEpisodes(1, 1)
	c.RecordPruned(3)
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	c := NewCollector()
	c.RecordPruned(2)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "sweeparr_directories_pruned_total 2") {
		t.Fatalf("expected pruned counter in output, got:\n%s", rec.Body.String())
	}
}
