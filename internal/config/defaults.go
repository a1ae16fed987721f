package config

const (
	defaultLogDir             = "~/.local/share/sweeparr/logs"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogRetentionDays   = 30
	defaultMaxWorkers         = 4
	defaultNotifyTimeout      = 10
	defaultSonarrTimeout      = 30
	defaultPlexTimeout        = 10
	defaultScheduleCron       = "0 3 * * *"
	defaultDeleteEmptyDirs    = true
	defaultParallelProcessing = true
)

// Default returns a Config populated with repository defaults. The cleanup
// threshold and media root have no defaults; Validate rejects a config that
// leaves them unset.
func Default() Config {
	return Config{
		Cleanup: Cleanup{
			DeleteEmptyDirs: defaultDeleteEmptyDirs,
		},
		Performance: Performance{
			ParallelProcessing: defaultParallelProcessing,
			MaxWorkers:         defaultMaxWorkers,
		},
		Logging: Logging{
			Dir:           defaultLogDir,
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
		},
		Schedule: Schedule{
			Cron: defaultScheduleCron,
		},
	}
}
