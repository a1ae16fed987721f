package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCleanup(); err != nil {
		return err
	}
	c.normalizeSonarr()
	c.normalizePlex()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeNotifications()
	c.normalizeSchedule()
	c.Metrics.Listen = strings.TrimSpace(c.Metrics.Listen)
	return nil
}

func (c *Config) normalizeCleanup() error {
	c.Cleanup.MediaRoot = strings.TrimSpace(c.Cleanup.MediaRoot)
	if c.Cleanup.MediaRoot == "" {
		return nil
	}
	expanded, err := expandPath(c.Cleanup.MediaRoot)
	if err != nil {
		return fmt.Errorf("cleanup.media_root: %w", err)
	}
	c.Cleanup.MediaRoot = expanded
	return nil
}

func (c *Config) normalizeSonarr() {
	if c.Sonarr == nil {
		return
	}
	c.Sonarr.Host = strings.TrimRight(strings.TrimSpace(c.Sonarr.Host), "/")
	c.Sonarr.APIKey = strings.TrimSpace(c.Sonarr.APIKey)
	if c.Sonarr.APIKey == "" {
		if value, ok := os.LookupEnv("SONARR_API_KEY"); ok {
			c.Sonarr.APIKey = strings.TrimSpace(value)
		}
	}
	if c.Sonarr.TimeoutSeconds <= 0 {
		c.Sonarr.TimeoutSeconds = defaultSonarrTimeout
	}
}

func (c *Config) normalizePlex() {
	if c.Plex == nil {
		return
	}
	c.Plex.URL = strings.TrimRight(strings.TrimSpace(c.Plex.URL), "/")
	c.Plex.Token = strings.TrimSpace(c.Plex.Token)
	if c.Plex.Token == "" {
		if value, ok := os.LookupEnv("PLEX_TOKEN"); ok {
			c.Plex.Token = strings.TrimSpace(value)
		}
	}
	if c.Plex.TimeoutSeconds <= 0 {
		c.Plex.TimeoutSeconds = defaultPlexTimeout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = defaultLogDir
	}
	expanded, err := expandPath(c.Logging.Dir)
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = expanded
	return nil
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyTimeout
	}
}

func (c *Config) normalizeSchedule() {
	c.Schedule.Cron = strings.TrimSpace(c.Schedule.Cron)
	if c.Schedule.Cron == "" {
		c.Schedule.Cron = defaultScheduleCron
	}
}
