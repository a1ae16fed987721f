package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sweeparr/internal/cleanup"
	"sweeparr/internal/daemon"
	"sweeparr/internal/metrics"
	"sweeparr/internal/notifications"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <config>",
		Short: "Run cleanup on a cron schedule until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runWatch(cmd, args[0])
		},
	}
}

func runWatch(cmd *cobra.Command, configPath string) error {
	cfg, logger, err := setupRuntime(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var collector *metrics.Collector
	if cfg.Metrics.Listen != "" {
		collector = metrics.NewCollector()
	}

	library, media := buildBackends(cfg)
	notifier := notifications.NewService(cfg)
	runner := cleanup.NewRunner(cfg, library, media, collector, logger)

	d, err := daemon.New(cfg, runner, notifier, collector, logger)
	if err != nil {
		return err
	}
	if err := d.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("sweeparr shutting down")
	d.Stop()
	return nil
}
