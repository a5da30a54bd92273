package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PILLBOX_DB_PATH", "")
	t.Setenv("PILLBOX_LOG_LEVEL", "")

	cfg := Load()
	if cfg.DBPath != "pillbox.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "pillbox.db")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PILLBOX_DB_PATH", "/tmp/calendar.db")
	t.Setenv("PILLBOX_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.DBPath != "/tmp/calendar.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/calendar.db")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}
