package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DB.Driver != "sqlite" {
		t.Fatalf("expected sqlite default driver, got %q", cfg.DB.Driver)
	}
	if cfg.Session.Secret != "change-me-in-production" {
		t.Fatalf("expected insecure fallback secret, got %q", cfg.Session.Secret)
	}
	if cfg.Session.ExpirationHours != 168 {
		t.Fatalf("expected 168h default expiry, got %d", cfg.Session.ExpirationHours)
	}
	if cfg.Avatars.Backend != "local" {
		t.Fatalf("expected local avatar backend, got %q", cfg.Avatars.Backend)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SESSION_EXPIRATION_HOURS", "12")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("SERVER_PORT", "9999")

	cfg := Load()

	if cfg.DB.Driver != "postgres" {
		t.Fatalf("expected postgres driver, got %q", cfg.DB.Driver)
	}
	if cfg.Session.Secret != "env-secret" {
		t.Fatalf("expected env secret, got %q", cfg.Session.Secret)
	}
	if cfg.Session.ExpirationHours != 12 {
		t.Fatalf("expected 12h expiry, got %d", cfg.Session.ExpirationHours)
	}
	if !cfg.MinIO.UseSSL {
		t.Fatalf("expected minio ssl enabled")
	}
	if cfg.Server.Port != "9999" {
		t.Fatalf("expected port 9999, got %q", cfg.Server.Port)
	}
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("SESSION_EXPIRATION_HOURS", "not-a-number")
	t.Setenv("MINIO_USE_SSL", "not-a-bool")

	cfg := Load()

	if cfg.Session.ExpirationHours != 168 {
		t.Fatalf("expected fallback expiry, got %d", cfg.Session.ExpirationHours)
	}
	if cfg.MinIO.UseSSL {
		t.Fatalf("expected fallback ssl=false")
	}
}
