// Package config loads the optional winzorder YAML configuration file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the effective configuration after defaults and the file are
// merged. Command-line flags are applied on top by the caller.
type Config struct {
	Format   string
	Pretty   bool
	LogLevel string
	Query    QueryConfig
	Serve    ServeConfig
}

type QueryConfig struct {
	IncludeTitle    bool
	IncludeOwnerPID bool
}

type ServeConfig struct {
	Transport string
	Port      int
}

func DefaultConfig() *Config {
	return &Config{
		Format:   "yaml",
		LogLevel: "warn",
		Query: QueryConfig{
			IncludeTitle:    true,
			IncludeOwnerPID: true,
		},
		Serve: ServeConfig{
			Transport: "stdio",
			Port:      8080,
		},
	}
}

type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (c *Config) Validate() error {
	switch c.Format {
	case "yaml", "json":
	default:
		return &ValidationError{Path: "format", Err: fmt.Errorf("format must be one of: yaml, json")}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	switch c.Serve.Transport {
	case "stdio", "streamable-http":
	default:
		return &ValidationError{Path: "serve.transport", Err: fmt.Errorf("transport must be one of: stdio, streamable-http")}
	}
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return &ValidationError{Path: "serve.port", Err: fmt.Errorf("port must be between 1 and 65535")}
	}
	return nil
}

// ParseLogLevel maps a log_level value to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
