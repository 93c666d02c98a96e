package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if !cfg.Query.IncludeTitle || !cfg.Query.IncludeOwnerPID {
		t.Fatal("title and owner pid should be included by default")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "yaml" {
		t.Fatalf("expected format yaml, got %q", cfg.Format)
	}
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"format: json",
		"pretty: true",
		"log_level: debug",
		"query:",
		"  include_title: false",
		"serve:",
		"  transport: streamable-http",
		"  port: 9090",
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "json" || !cfg.Pretty || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected top-level values: %+v", cfg)
	}
	if cfg.Query.IncludeTitle {
		t.Fatal("expected include_title false")
	}
	if !cfg.Query.IncludeOwnerPID {
		t.Fatal("unset include_owner_pid should keep its default")
	}
	if cfg.Serve.Transport != "streamable-http" || cfg.Serve.Port != 9090 {
		t.Fatalf("unexpected serve config: %+v", cfg.Serve)
	}
}

func TestLoadFromPath_UnknownKeyRejected(t *testing.T) {
	if _, err := LoadFromPath(writeConfig(t, "colour: red\n")); err == nil {
		t.Fatal("expected unknown key to fail")
	}
}

func TestLoadFromPath_ValidationErrors(t *testing.T) {
	tests := []struct {
		body string
		path string
	}{
		{"format: agent\n", "format"},
		{"log_level: loud\n", "log_level"},
		{"serve:\n  transport: grpc\n", "serve.transport"},
		{"serve:\n  port: 0\n", "serve.port"},
	}
	for _, tt := range tests {
		_, err := LoadFromPath(writeConfig(t, tt.body))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%q: expected ValidationError, got %v", tt.body, err)
		}
		if verr.Path != tt.path {
			t.Errorf("%q: path = %q, want %q", tt.body, verr.Path, tt.path)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLogLevel(""); err == nil {
		t.Error("empty level should fail")
	}
}
