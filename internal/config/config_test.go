package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.ServerPort != "8000" {
		t.Errorf("ServerPort = %q, want %q", cfg.ServerPort, "8000")
	}
	if cfg.JWT.Algorithm != "HS256" {
		t.Errorf("JWT.Algorithm = %q, want %q", cfg.JWT.Algorithm, "HS256")
	}
	if cfg.JWT.TTL() != time.Hour {
		t.Errorf("JWT.TTL() = %v, want %v", cfg.JWT.TTL(), time.Hour)
	}
	if cfg.Upstream.Timeout() != 60*time.Second {
		t.Errorf("Upstream.Timeout() = %v, want %v", cfg.Upstream.Timeout(), 60*time.Second)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v, want default localhost:3000", cfg.CORSOrigins)
	}
}

func TestLoadMissingUpstreamToken(t *testing.T) {
	// Required startup credential: its absence must fail config loading.
	t.Setenv("HF_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error when HF_TOKEN is unset")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_test")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("HF_TIMEOUT_SECONDS", "5")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.JWT.TTL() != 15*time.Minute {
		t.Errorf("JWT.TTL() = %v, want %v", cfg.JWT.TTL(), 15*time.Minute)
	}
	if cfg.Upstream.Timeout() != 5*time.Second {
		t.Errorf("Upstream.Timeout() = %v, want %v", cfg.Upstream.Timeout(), 5*time.Second)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want two origins", cfg.CORSOrigins)
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_test")
	t.Setenv("ENV", "production")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for default secret in production")
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := Database{User: "u", Password: "p", Host: "db", Port: "5433", Name: "talait"}

	want := "postgres://u:p@db:5433/talait?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
