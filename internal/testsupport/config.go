package testsupport

import (
	"path/filepath"
	"testing"

	"sweeparr/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Parallel processing is off by default so batch outcomes are deterministic;
// tests exercising the worker pool opt in with WithParallel.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Cleanup.DaysThreshold = 30
	cfgVal.Cleanup.MediaRoot = filepath.Join(base, "media")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Performance.ParallelProcessing = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSonarr enables the library manager backend on the test config.
func WithSonarr(host, apiKey string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sonarr = &config.Sonarr{Host: host, APIKey: apiKey, TimeoutSeconds: 5}
	}
}

// WithPlex enables the media server backend on the test config.
func WithPlex(url, token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Plex = &config.Plex{URL: url, Token: token, TimeoutSeconds: 5}
	}
}

// WithDryRun switches the test config to dry-run mode.
func WithDryRun() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cleanup.DryRun = true
	}
}

// WithParallel enables the per-series worker pool with the given width.
func WithParallel(workers int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Performance.ParallelProcessing = true
		b.cfg.Performance.MaxWorkers = workers
	}
}

// WithDaysThreshold overrides the retention threshold on the test config.
func WithDaysThreshold(days int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cleanup.DaysThreshold = days
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Cleanup.MediaRoot)
}
