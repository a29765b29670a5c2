package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/get-theo-ai/langfuse/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithLeaseMinutes overrides the lease length on the test config.
func WithLeaseMinutes(minutes int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Queue.LeaseMinutes = minutes
	}
}

// WithMaxEnrollBatch overrides the enrollment batch cap on the test config.
func WithMaxEnrollBatch(limit int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Queue.MaxEnrollBatch = limit
	}
}

// WithClaimAttempts overrides the claim retry bound on the test config.
func WithClaimAttempts(attempts int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Queue.ClaimAttempts = attempts
	}
}
