package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Provider != "nhle" {
		t.Fatalf("expected default provider nhle, got %q", cfg.Provider)
	}
	if cfg.Store != "firestore" {
		t.Fatalf("expected default store firestore, got %q", cfg.Store)
	}
	if cfg.Ingest.FullFetchInterval != time.Hour {
		t.Fatalf("expected 1h full fetch interval, got %v", cfg.Ingest.FullFetchInterval)
	}
	if cfg.Ingest.FullRadius != 7 || cfg.Ingest.PartialRadius != 0 {
		t.Fatalf("unexpected radii: full=%d partial=%d", cfg.Ingest.FullRadius, cfg.Ingest.PartialRadius)
	}
	if cfg.Ingest.ResetHistoryEveryCycle {
		t.Fatal("expected full-fetch-only history reset by default")
	}
	if cfg.Ingest.HistorySize != 5 {
		t.Fatalf("expected history size 5, got %d", cfg.Ingest.HistorySize)
	}
	if cfg.NHLE.BaseURL != "https://api-web.nhle.com/v1" {
		t.Fatalf("unexpected NHL base URL: %q", cfg.NHLE.BaseURL)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(envProvider, "fixture")
	t.Setenv(envStore, "memory")
	t.Setenv(envFullFetchInterval, "30m")
	t.Setenv(envFullRadius, "3")
	t.Setenv(envResetEveryCycle, "true")
	t.Setenv(envNHLBaseURL, "http://localhost:8080/v1")

	cfg := Load()

	if cfg.Provider != "fixture" || cfg.Store != "memory" {
		t.Fatalf("env overrides ignored: provider=%q store=%q", cfg.Provider, cfg.Store)
	}
	if cfg.Ingest.FullFetchInterval != 30*time.Minute {
		t.Fatalf("expected 30m interval, got %v", cfg.Ingest.FullFetchInterval)
	}
	if cfg.Ingest.FullRadius != 3 {
		t.Fatalf("expected radius 3, got %d", cfg.Ingest.FullRadius)
	}
	if !cfg.Ingest.ResetHistoryEveryCycle {
		t.Fatal("expected reset-every-cycle true")
	}
	if cfg.NHLE.BaseURL != "http://localhost:8080/v1" {
		t.Fatalf("unexpected base URL: %q", cfg.NHLE.BaseURL)
	}
}

func TestInvalidEnvFallsBackToDefaults(t *testing.T) {
	t.Setenv(envFullFetchInterval, "not-a-duration")
	t.Setenv(envFullRadius, "-2")
	t.Setenv(envResetEveryCycle, "maybe")

	cfg := Load()

	if cfg.Ingest.FullFetchInterval != time.Hour {
		t.Fatalf("expected fallback interval, got %v", cfg.Ingest.FullFetchInterval)
	}
	if cfg.Ingest.FullRadius != 7 {
		t.Fatalf("expected fallback radius, got %d", cfg.Ingest.FullRadius)
	}
	if cfg.Ingest.ResetHistoryEveryCycle {
		t.Fatal("expected fallback reset policy")
	}
}
