package config

const (
	defaultDataDir        = "~/.local/share/annoq"
	defaultLogDir         = "~/.local/share/annoq/logs"
	defaultLogFormat      = "text"
	defaultLogLevel       = "info"
	defaultLeaseMinutes   = 5
	defaultMaxEnrollBatch = 500
	defaultClaimAttempts  = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Queue: QueueSettings{
			LeaseMinutes:   defaultLeaseMinutes,
			MaxEnrollBatch: defaultMaxEnrollBatch,
			ClaimAttempts:  defaultClaimAttempts,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
