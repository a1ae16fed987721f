package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sweeparr/internal/cleanup"
	"sweeparr/internal/config"
	"sweeparr/internal/daemon"
	"sweeparr/internal/logging"
	"sweeparr/internal/notifications"
	"sweeparr/internal/services/plex"
	"sweeparr/internal/services/sonarr"
)

func runCleanup(cmd *cobra.Command, configPath string, forceDryRun bool) error {
	cfg, logger, err := setupRuntime(configPath)
	if err != nil {
		return err
	}
	if forceDryRun {
		cfg.Cleanup.DryRun = true
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lock := daemon.NewRunLock(cfg.Logging.Dir)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release run lock", logging.Error(err))
		}
	}()

	library, media := buildBackends(cfg)
	notifier := notifications.NewService(cfg)
	runner := cleanup.NewRunner(cfg, library, media, nil, logger)

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := notifier.RunCompleted(ctx, summary.Processed, summary.DryRun, summary.Duration); err != nil {
		logger.Warn("completion notification", logging.Error(err))
	}

	renderSummary(cmd.OutOrStdout(), summary)
	return nil
}

// setupRuntime loads the configuration, prepares the directories it names,
// and builds the logger before any backend work starts.
func setupRuntime(configPath string) (*config.Config, *slog.Logger, error) {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, logging.RetentionTarget{
		Dir:     cfg.Logging.Dir,
		Pattern: "*.log",
		Exclude: []string{logging.LogFilePath(cfg)},
	})
	return cfg, logger, nil
}

func buildBackends(cfg *config.Config) (sonarr.Client, plex.Service) {
	var library sonarr.Client
	if cfg.SonarrEnabled() {
		library = sonarr.NewClient(cfg.Sonarr)
	}
	var media plex.Service
	if cfg.PlexEnabled() {
		media = plex.NewService(cfg.Plex)
	}
	return library, media
}
