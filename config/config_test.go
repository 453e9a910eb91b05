package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if len(cfg.Forecast.Horizons) != 3 || cfg.Forecast.Horizons[2] != 90 {
		t.Errorf("expected default horizons [30 60 90], got %v", cfg.Forecast.Horizons)
	}
	if cfg.Forecast.CancellationStatuses != nil {
		t.Errorf("expected no cancellation override, got %v", cfg.Forecast.CancellationStatuses)
	}
	if cfg.Snapshot.CacheTTL != 5*time.Minute {
		t.Errorf("expected cache ttl 5m, got %v", cfg.Snapshot.CacheTTL)
	}
	if cfg.Database.SlowQueryThreshold != 200*time.Millisecond {
		t.Errorf("expected slow query threshold 200ms, got %v", cfg.Database.SlowQueryThreshold)
	}
}

func TestLoad_ForecastOverrides(t *testing.T) {
	t.Setenv("FORECAST_HORIZONS", "7, 14,28")
	t.Setenv("FORECAST_CANCELLATION_STATUSES", "cancelled, refunded,,")
	t.Setenv("SNAPSHOT_CACHE_TTL", "90s")
	t.Setenv("SNAPSHOT_WARM_ENABLED", "false")

	cfg := Load()

	want := []int{7, 14, 28}
	for i, h := range want {
		if cfg.Forecast.Horizons[i] != h {
			t.Errorf("expected horizons %v, got %v", want, cfg.Forecast.Horizons)
			break
		}
	}
	if len(cfg.Forecast.CancellationStatuses) != 2 || cfg.Forecast.CancellationStatuses[1] != "refunded" {
		t.Errorf("expected [cancelled refunded], got %v", cfg.Forecast.CancellationStatuses)
	}
	if cfg.Snapshot.CacheTTL != 90*time.Second {
		t.Errorf("expected 90s, got %v", cfg.Snapshot.CacheTTL)
	}
	if cfg.Snapshot.WarmEnabled {
		t.Error("expected warm job disabled")
	}
}

func TestLoad_InvalidHorizonsFallBack(t *testing.T) {
	t.Setenv("FORECAST_HORIZONS", "30,zero,90")

	cfg := Load()
	if len(cfg.Forecast.Horizons) != 3 || cfg.Forecast.Horizons[1] != 60 {
		t.Errorf("expected defaults, got %v", cfg.Forecast.Horizons)
	}

	t.Setenv("FORECAST_HORIZONS", "30,-5")
	cfg = Load()
	if cfg.Forecast.Horizons[1] != 60 {
		t.Errorf("expected defaults for negative horizon, got %v", cfg.Forecast.Horizons)
	}
}
