// Package config loads the bot's settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL              string
	Email                string
	Password             string
	PollInterval         time.Duration
	RequestTimeout       time.Duration
	HarvestCooldown      time.Duration
	SiloThresholdPercent float64
	SellDelay            time.Duration
	OpsAddr              string
}

// Load reads FARMBOT_* variables. Missing credentials are the only fatal
// condition; everything else falls back to a sane default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file loaded: %v", err)
	}

	cfg := Config{
		BaseURL:              strEnv("FARMBOT_BASE_URL", "http://localhost:8080"),
		Email:                strEnv("FARMBOT_EMAIL", ""),
		Password:             strEnv("FARMBOT_PASSWORD", ""),
		PollInterval:         durationEnv("FARMBOT_POLL_INTERVAL", 5*time.Minute),
		RequestTimeout:       durationEnv("FARMBOT_REQUEST_TIMEOUT", 15*time.Second),
		HarvestCooldown:      durationEnv("FARMBOT_HARVEST_COOLDOWN", 6*time.Hour),
		SiloThresholdPercent: floatEnv("FARMBOT_SILO_THRESHOLD_PERCENT", 90),
		SellDelay:            durationEnv("FARMBOT_SELL_DELAY", 2*time.Second),
		OpsAddr:              strEnv("FARMBOT_OPS_ADDR", ":9090"),
	}

	if cfg.Email == "" || cfg.Password == "" {
		return Config{}, errors.New("FARMBOT_EMAIL and FARMBOT_PASSWORD are required")
	}
	return cfg, nil
}

func strEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[cfg] ignoring %s=%q: not a positive duration", key, v)
		return fallback
	}
	return d
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[cfg] ignoring %s=%q: not a number", key, v)
		return fallback
	}
	return f
}
