package config

import (
	"testing"
	"time"
)

func setCreds(t *testing.T) {
	t.Helper()
	t.Setenv("FARMBOT_EMAIL", "bot@example.com")
	t.Setenv("FARMBOT_PASSWORD", "secret")
}

func TestLoad_MissingCredentialsIsFatal(t *testing.T) {
	t.Setenv("FARMBOT_EMAIL", "")
	t.Setenv("FARMBOT_PASSWORD", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error without credentials")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setCreds(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("poll interval default: %v", cfg.PollInterval)
	}
	if cfg.HarvestCooldown != 6*time.Hour {
		t.Fatalf("harvest cooldown default: %v", cfg.HarvestCooldown)
	}
	if cfg.SiloThresholdPercent != 90 {
		t.Fatalf("silo threshold default: %v", cfg.SiloThresholdPercent)
	}
	if cfg.SellDelay != 2*time.Second {
		t.Fatalf("sell delay default: %v", cfg.SellDelay)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setCreds(t)
	t.Setenv("FARMBOT_POLL_INTERVAL", "90s")
	t.Setenv("FARMBOT_SILO_THRESHOLD_PERCENT", "85.5")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollInterval != 90*time.Second {
		t.Fatalf("poll interval override: %v", cfg.PollInterval)
	}
	if cfg.SiloThresholdPercent != 85.5 {
		t.Fatalf("silo threshold override: %v", cfg.SiloThresholdPercent)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	setCreds(t)
	t.Setenv("FARMBOT_POLL_INTERVAL", "soon")
	t.Setenv("FARMBOT_SELL_DELAY", "-2s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollInterval != 5*time.Minute || cfg.SellDelay != 2*time.Second {
		t.Fatalf("expected fallbacks, got %v / %v", cfg.PollInterval, cfg.SellDelay)
	}
}
