package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.OutputPath != "events.json" {
		t.Errorf("expected default output path 'events.json', got %q", cfg.OutputPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONCERTS_OUTPUT", "/tmp/feed.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.OutputPath != "/tmp/feed.json" {
		t.Errorf("expected output path from environment, got %q", cfg.OutputPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from environment, got %q", cfg.LogLevel)
	}
}
