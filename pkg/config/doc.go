// Package config handles configuration management for gutter.
// It supports loading configuration from multiple sources including
// TOML or YAML files, environment variables, and command-line flags.
package config
