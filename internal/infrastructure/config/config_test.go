package config_test

import (
	"testing"
	"time"

	"github.com/iho/pixdash/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("CREDENTIAL_STORE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8000/api" {
		t.Fatalf("expected default API base URL, got %s", cfg.APIBaseURL)
	}

	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("expected default API timeout 30s, got %s", cfg.APITimeout)
	}

	if cfg.CredentialStore != config.StoreFile {
		t.Fatalf("expected file credential store by default, got %s", cfg.CredentialStore)
	}

	if cfg.NotificationTTL != 5*time.Second {
		t.Fatalf("expected notification TTL 5s, got %s", cfg.NotificationTTL)
	}

	if cfg.RecentTransactionsLimit != 10 {
		t.Fatalf("expected recent limit 10, got %d", cfg.RecentTransactionsLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://bank.example.com/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("CREDENTIAL_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TIMEZONE", "America/Sao_Paulo")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.APIBaseURL != "https://bank.example.com/api" {
		t.Fatalf("expected custom API base URL, got %s", cfg.APIBaseURL)
	}

	if cfg.APITimeout != 5*time.Second {
		t.Fatalf("expected API timeout override, got %s", cfg.APITimeout)
	}

	if cfg.CredentialStore != config.StoreRedis || cfg.RedisURL != "redis://example" {
		t.Fatalf("expected redis store settings, got store=%s url=%s", cfg.CredentialStore, cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.MetricsEnabled {
		t.Fatalf("expected metrics to be disabled")
	}

	loc, err := cfg.Location()
	if err != nil || loc.String() != "America/Sao_Paulo" {
		t.Fatalf("expected Sao Paulo location, got %v (%v)", loc, err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "duration", key: "HTTP_READ_TIMEOUT", value: "not-a-duration"},
		{name: "store", key: "CREDENTIAL_STORE", value: "keychain"},
		{name: "timeout", key: "API_TIMEOUT", value: "0s"},
		{name: "timezone", key: "TIMEZONE", value: "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := config.Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
