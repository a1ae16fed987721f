package daemon

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"sweeparr/internal/cleanup"
	"sweeparr/internal/logging"
	"sweeparr/internal/metrics"
	"sweeparr/internal/services/plex"
	"sweeparr/internal/testsupport"
)

type stubPlex struct{}

func (stubPlex) Sections(context.Context) ([]plex.Section, error) { return nil, nil }
func (stubPlex) RefreshSection(context.Context, string) error     { return nil }

type fakeNotifier struct {
	mu        sync.Mutex
	completed []int
	failed    []error
}

func (f *fakeNotifier) RunCompleted(ctx context.Context, processed int, dryRun bool, duration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, processed)
	return nil
}

func (f *fakeNotifier) RunFailed(ctx context.Context, err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = append(f.failed, err)
	return nil
}

func (f *fakeNotifier) Test(ctx context.Context) error { return nil }

func TestRunLockExcludesSecondHolder(t *testing.T) {
	dir := t.TempDir()

	first := NewRunLock(dir)
	if err := first.Acquire(); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	second := NewRunLock(dir)
	if err := second.Acquire(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := second.Acquire(); err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
	_ = second.Release()
}

func TestDaemonStartStop(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	runner := cleanup.NewRunner(cfg, nil, stubPlex{}, nil, logging.NewNop())
	d, err := New(cfg, runner, &fakeNotifier{}, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !d.Status().Running {
		t.Fatal("expected daemon to report running")
	}
	if d.Status().NextRun.IsZero() {
		t.Fatal("expected a next scheduled run")
	}

	if err := d.Start(ctx); err == nil {
		t.Fatal("expected second start to fail")
	}

	d.Stop()
	if d.Status().Running {
		t.Fatal("expected daemon to be stopped")
	}

	if err := d.Start(ctx); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	d.Stop()
}

func TestDaemonRejectsBadCron(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Schedule.Cron = "definitely not cron"
	runner := cleanup.NewRunner(cfg, nil, stubPlex{}, nil, logging.NewNop())
	d, err := New(cfg, runner, &fakeNotifier{}, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := d.Start(context.Background()); err == nil {
		t.Fatal("expected start to fail with bad cron expression")
	}

	// The lock must be released on a failed start.
	lock := NewRunLock(cfg.Logging.Dir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("expected lock to be free after failed start: %v", err)
	}
	_ = lock.Release()
}

func TestDaemonServesMetrics(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Metrics.Listen = "127.0.0.1:0"
	collector := metrics.NewCollector()
	runner := cleanup.NewRunner(cfg, nil, stubPlex{}, collector, logging.NewNop())
	d, err := New(cfg, runner, &fakeNotifier{}, collector, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer d.Stop()

	addr := d.Status().MetricsAddr
	if addr == "" {
		t.Fatal("expected a metrics address")
	}

	resp, err := http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "sweeparr_directories_pruned_total") {
		t.Fatalf("expected sweeparr metrics in scrape output, got:\n%s", body)
	}
}

func TestRunOnceNotifiesCompletion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	notifier := &fakeNotifier{}
	runner := cleanup.NewRunner(cfg, nil, stubPlex{}, nil, logging.NewNop())
	d, err := New(cfg, runner, notifier, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	d.runOnce(context.Background())

	if len(notifier.completed) != 1 {
		t.Fatalf("expected one completion notification, got %+v", notifier)
	}
	if len(notifier.failed) != 0 {
		t.Fatalf("expected no failure notifications, got %+v", notifier.failed)
	}
}

func TestRunOnceNotifiesFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	notifier := &fakeNotifier{}
	runner := cleanup.NewRunner(cfg, nil, nil, nil, logging.NewNop())
	d, err := New(cfg, runner, notifier, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	d.runOnce(context.Background())

	if len(notifier.failed) != 1 {
		t.Fatalf("expected one failure notification, got %+v", notifier)
	}
	if len(notifier.completed) != 0 {
		t.Fatalf("expected no completion notifications, got %+v", notifier.completed)
	}
}
