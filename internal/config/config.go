package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed sample_config.yaml
var sampleConfig string

// Cleanup contains the retention policy applied to daily series.
type Cleanup struct {
	DaysThreshold   int    `yaml:"days_threshold" toml:"days_threshold"`
	MediaRoot       string `yaml:"media_root" toml:"media_root"`
	DeleteEmptyDirs bool   `yaml:"delete_empty_dirs" toml:"delete_empty_dirs"`
	DryRun          bool   `yaml:"dry_run" toml:"dry_run"`
}

// Performance controls episode batch fan-out within a series.
type Performance struct {
	ParallelProcessing bool `yaml:"parallel_processing" toml:"parallel_processing"`
	MaxWorkers         int  `yaml:"max_workers" toml:"max_workers"`
}

// Sonarr contains connection settings for the library manager backend.
// The block being present in the configuration file enables the backend.
type Sonarr struct {
	Host           string `yaml:"host" toml:"host"`
	APIKey         string `yaml:"api_key" toml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// Plex contains connection settings for the media server backend.
// The block being present in the configuration file enables the backend.
type Plex struct {
	URL            string `yaml:"url" toml:"url"`
	Token          string `yaml:"token" toml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Dir           string `yaml:"dir" toml:"dir"`
	Format        string `yaml:"format" toml:"format"`
	Level         string `yaml:"level" toml:"level"`
	RetentionDays int    `yaml:"retention_days" toml:"retention_days"`
}

// Notifications contains configuration for ntfy push notifications.
type Notifications struct {
	NtfyTopic      string `yaml:"ntfy_topic" toml:"ntfy_topic"`
	RequestTimeout int    `yaml:"request_timeout" toml:"request_timeout"`
}

// Schedule contains the watch-mode cron schedule.
type Schedule struct {
	Cron string `yaml:"cron" toml:"cron"`
}

// Metrics contains the watch-mode Prometheus endpoint settings. An empty
// listen address disables the endpoint.
type Metrics struct {
	Listen string `yaml:"listen" toml:"listen"`
}

// Config encapsulates all configuration values for Sweeparr.
//
// Configuration sections by subsystem:
//   - Cleanup: retention threshold, media root, and dry-run switch
//   - Performance: per-series episode fan-out settings
//   - Sonarr: library manager connection (presence enables the backend)
//   - Plex: media server connection (presence enables the backend)
//   - Logging: log format, level, directory, and retention
//   - Notifications: ntfy push notification settings
//   - Schedule: watch-mode cron expression
//   - Metrics: watch-mode Prometheus listen address
type Config struct {
	Cleanup       Cleanup       `yaml:"cleanup" toml:"cleanup"`
	Performance   Performance   `yaml:"performance" toml:"performance"`
	Sonarr        *Sonarr       `yaml:"sonarr" toml:"sonarr"`
	Plex          *Plex         `yaml:"plex" toml:"plex"`
	Logging       Logging       `yaml:"logging" toml:"logging"`
	Notifications Notifications `yaml:"notifications" toml:"notifications"`
	Schedule      Schedule      `yaml:"schedule" toml:"schedule"`
	Metrics       Metrics       `yaml:"metrics" toml:"metrics"`
}

// SonarrEnabled reports whether a library manager backend is configured.
func (c *Config) SonarrEnabled() bool { return c.Sonarr != nil }

// PlexEnabled reports whether a media server backend is configured.
func (c *Config) PlexEnabled() bool { return c.Plex != nil }

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sweeparr/config.yaml")
}

// Load parses and validates the configuration file at path. YAML is the
// primary format; files with a .toml extension decode as TOML. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, error) {
	resolved, err := expandPath(strings.TrimSpace(path))
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("config file %s does not exist (create one with 'sweeparr config init')", resolved)
		}
		return nil, "", fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, "", fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

// EnsureDirectories creates the directories Sweeparr writes to.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Logging.Dir) != "" {
		if err := os.MkdirAll(c.Logging.Dir, 0o755); err != nil {
			return fmt.Errorf("create log directory %q: %w", c.Logging.Dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
