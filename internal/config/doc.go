// Package config loads and validates TOML configuration for the review
// queue service. Defaults cover every field, so a missing config file is
// valid; paths are tilde-expanded and normalized at load time.
package config
