package config

import (
	"testing"
	"time"

	"github.com/k0marov/nutritioner-backend/services"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Provider != services.ProviderOllama {
		t.Errorf("Provider = %q, want %q", cfg.Provider, services.ProviderOllama)
	}
	if cfg.WeekWindowCompare != services.CompareDates {
		t.Errorf("WeekWindowCompare = %q, want %q", cfg.WeekWindowCompare, services.CompareDates)
	}
	if cfg.ProviderTimeout != 30*time.Second {
		t.Errorf("ProviderTimeout = %v, want 30s", cfg.ProviderTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PROVIDER", "fake")
	t.Setenv("WEEK_WINDOW_COMPARE", "timestamp")
	t.Setenv("PROVIDER_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.Provider != services.ProviderFake {
		t.Errorf("Provider = %q, want fake", cfg.Provider)
	}
	if cfg.WeekWindowCompare != services.CompareTimestamps {
		t.Errorf("WeekWindowCompare = %q, want timestamp", cfg.WeekWindowCompare)
	}
	if cfg.ProviderTimeout != 5*time.Second {
		t.Errorf("ProviderTimeout = %v, want 5s", cfg.ProviderTimeout)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "soon")

	if cfg := Load(); cfg.ProviderTimeout != 30*time.Second {
		t.Errorf("ProviderTimeout = %v, want default on parse failure", cfg.ProviderTimeout)
	}
}
