package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCleanup(); err != nil {
		return err
	}
	if err := c.validatePerformance(); err != nil {
		return err
	}
	if err := c.validateBackends(); err != nil {
		return err
	}
	return c.validateNotifications()
}

func (c *Config) validateCleanup() error {
	if c.Cleanup.DaysThreshold <= 0 {
		return errors.New("cleanup.days_threshold must be a positive number of days")
	}
	if c.Cleanup.MediaRoot == "" {
		return errors.New("cleanup.media_root must be set")
	}
	return nil
}

func (c *Config) validatePerformance() error {
	if c.Performance.MaxWorkers <= 0 {
		return errors.New("performance.max_workers must be positive")
	}
	return nil
}

func (c *Config) validateBackends() error {
	if c.Sonarr == nil && c.Plex == nil {
		return errors.New("no backend configured: add a [sonarr] or [plex] section")
	}
	if c.Sonarr != nil {
		if strings.TrimSpace(c.Sonarr.Host) == "" {
			return errors.New("sonarr.host must be set when the sonarr section is present")
		}
		if strings.TrimSpace(c.Sonarr.APIKey) == "" {
			return errors.New("sonarr.api_key must be set when the sonarr section is present (or export SONARR_API_KEY)")
		}
	}
	if c.Plex != nil {
		if strings.TrimSpace(c.Plex.URL) == "" {
			return errors.New("plex.url must be set when the plex section is present")
		}
		if strings.TrimSpace(c.Plex.Token) == "" {
			return errors.New("plex.token must be set when the plex section is present (or export PLEX_TOKEN)")
		}
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive")
	}
	return nil
}
