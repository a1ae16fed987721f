package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"sweeparr/internal/cleanup"
	"sweeparr/internal/config"
	"sweeparr/internal/logging"
	"sweeparr/internal/metrics"
	"sweeparr/internal/notifications"
)

// Daemon runs cleanup on the configured cron schedule and enforces
// single-instance execution through the run lock.
type Daemon struct {
	cfg       *config.Config
	runner    *cleanup.Runner
	notifier  notifications.Service
	collector *metrics.Collector
	logger    *slog.Logger

	lock    *RunLock
	cron    *cron.Cron
	metrics *metricsServer

	running atomic.Bool
	runMu   sync.Mutex
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	LockFilePath string
	NextRun      time.Time
	MetricsAddr  string
}

// New constructs a daemon with initialized dependencies. The collector may
// be nil when the metrics endpoint is disabled.
func New(cfg *config.Config, runner *cleanup.Runner, notifier notifications.Service, collector *metrics.Collector, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || runner == nil || notifier == nil || logger == nil {
		return nil, errors.New("daemon requires config, runner, notifier, and logger")
	}

	return &Daemon{
		cfg:       cfg,
		runner:    runner,
		notifier:  notifier,
		collector: collector,
		logger:    logging.NewComponentLogger(logger, "daemon"),
		lock:      NewRunLock(cfg.Logging.Dir),
	}, nil
}

// Start acquires the run lock, validates the schedule, and begins the cron
// loop plus the optional metrics endpoint.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	if err := d.lock.Acquire(); err != nil {
		return err
	}

	expr := d.cfg.Schedule.Cron
	if _, err := cron.ParseStandard(expr); err != nil {
		_ = d.lock.Release()
		return fmt.Errorf("invalid cron schedule %q: %w", expr, err)
	}

	d.cron = cron.New()
	if _, err := d.cron.AddFunc(expr, func() {
		d.runOnce(ctx)
	}); err != nil {
		_ = d.lock.Release()
		return fmt.Errorf("schedule cleanup run: %w", err)
	}
	d.cron.Start()

	srv, err := newMetricsServer(d.cfg, d.collector, d.logger)
	if err != nil {
		d.stopCron()
		_ = d.lock.Release()
		return err
	}
	d.metrics = srv
	if err := d.metrics.start(ctx); err != nil {
		d.stopCron()
		_ = d.lock.Release()
		return err
	}

	d.running.Store(true)
	d.logger.Info("sweeparr daemon started",
		logging.String("schedule", expr),
		logging.String("lock", d.lock.Path()),
		logging.Any("next_run", d.nextRun()),
	)
	return nil
}

// Stop drains an in-flight run, shuts the metrics endpoint down, and
// releases the run lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	d.stopCron()
	d.metrics.stop()
	if err := d.lock.Release(); err != nil {
		d.logger.Warn("failed to release run lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("sweeparr daemon stopped")
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	return Status{
		Running:      d.running.Load(),
		LockFilePath: d.lock.Path(),
		NextRun:      d.nextRun(),
		MetricsAddr:  d.metrics.addr(),
	}
}

func (d *Daemon) stopCron() {
	if d.cron == nil {
		return
	}
	stopCtx := d.cron.Stop()
	<-stopCtx.Done()
}

func (d *Daemon) nextRun() time.Time {
	if d.cron == nil {
		return time.Time{}
	}
	entries := d.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// runOnce executes one scheduled run. The mutex keeps a slow run from
// overlapping with the next firing.
func (d *Daemon) runOnce(ctx context.Context) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	start := time.Now()
	summary, err := d.runner.Run(ctx)
	if err != nil {
		d.logger.Error("scheduled run failed", logging.Error(err))
		d.collector.RecordRun(d.cfg.Cleanup.DryRun, false, time.Since(start))
		if notifyErr := d.notifier.RunFailed(ctx, err); notifyErr != nil {
			d.logger.Warn("failed to send notification", logging.Error(notifyErr))
		}
		return
	}

	if notifyErr := d.notifier.RunCompleted(ctx, summary.Processed, summary.DryRun, summary.Duration); notifyErr != nil {
		d.logger.Warn("failed to send notification", logging.Error(notifyErr))
	}
}
