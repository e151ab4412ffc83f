package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Port != "8000" {
		t.Errorf("App.Port = %q, want 8000", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 1440 {
		t.Errorf("AccessTokenTTLMinutes = %d, want 1440", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if !cfg.Postgres.RunMigrations {
		t.Error("RunMigrations should default to true")
	}
	if cfg.Redis.CatalogTTL() != 60*time.Second {
		t.Errorf("CatalogTTL = %v, want 60s", cfg.Redis.CatalogTTL())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "30")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("REDIS_CATALOG_TTL_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Port != "9000" {
		t.Errorf("App.Port = %q, want 9000", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 30 {
		t.Errorf("AccessTokenTTLMinutes = %d, want 30", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Postgres.RunMigrations {
		t.Error("RunMigrations should be overridden to false")
	}
	if cfg.Redis.CatalogTTL() != 5*time.Second {
		t.Errorf("CatalogTTL = %v, want 5s", cfg.Redis.CatalogTTL())
	}
}

func TestAddr(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "8080"}
	if got := app.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr = %q", got)
	}
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want fallback 12", cfg.Auth.BcryptCost)
	}
}
