package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.TokenTTL != 72*time.Hour {
		t.Fatalf("unexpected default token ttl: %s", cfg.TokenTTL)
	}
	if !cfg.Dev() {
		t.Fatalf("expected development mode by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("MIGRATIONS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.TokenTTL != time.Hour || !cfg.Migrations {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Dev() {
		t.Fatalf("expected production mode")
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}
