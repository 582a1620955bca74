package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Port != "10000" {
		t.Errorf("Port = %q, want 10000", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.MetricsUsername != "prometheus" {
		t.Errorf("MetricsUsername = %q, want prometheus", cfg.MetricsUsername)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want default 30s", cfg.ShutdownTimeout)
	}
}

func TestValidateSentryHostRequired(t *testing.T) {
	cfg := &Config{
		Port:            "10000",
		ShutdownTimeout: time.Second,
		SentryToken:     "token",
		SentryHost:      "",
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when SENTRY_TOKEN is set without SENTRY_HOST")
	}
}

func TestMetricsAuthEnabled(t *testing.T) {
	cfg := &Config{MetricsPassword: ""}
	if cfg.MetricsAuthEnabled() {
		t.Error("auth should be disabled with empty password")
	}

	cfg.MetricsPassword = "secret"
	if !cfg.MetricsAuthEnabled() {
		t.Error("auth should be enabled with password set")
	}
}
