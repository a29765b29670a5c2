package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Queue.LeaseMinutes <= 0 {
		return errors.New("queue.lease_minutes must be positive")
	}
	if c.Queue.MaxEnrollBatch <= 0 {
		return errors.New("queue.max_enroll_batch must be positive")
	}
	if c.Queue.ClaimAttempts <= 0 {
		return errors.New("queue.claim_attempts must be positive")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
