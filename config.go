package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is read from the environment (optionally seeded from a .env file).
type Config struct {
	Port          string
	LogLevel      string
	CatalogFile   string
	PuzzleSeed    uint64
	ClientOrigin  string
	SessionTTL    time.Duration
	DynamicThemes bool
	ThemeTimeout  time.Duration
	ThemeEndpoint string
	Gemini        GeminiConfig
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		ClientOrigin:  os.Getenv("CLIENT_ORIGIN"),
		ThemeEndpoint: os.Getenv("THEME_ENDPOINT"),
		Gemini: GeminiConfig{
			APIKey:    os.Getenv("GEMINI_API_KEY"),
			ProjectID: os.Getenv("GCP_PROJECT_ID"),
			Region:    getEnv("GCP_REGION", defaultRegion),
			Model:     getEnv("GEMINI_MODEL", defaultModel),
		},
	}

	var err error
	if cfg.Gemini.Mode, err = ParseThemeMode(os.Getenv("THEME_MODE")); err != nil {
		return cfg, fmt.Errorf("THEME_MODE: %w", err)
	}
	if cfg.ThemeTimeout, err = time.ParseDuration(getEnv("THEME_TIMEOUT", "8s")); err != nil {
		return cfg, fmt.Errorf("THEME_TIMEOUT: %w", err)
	}
	if cfg.ThemeTimeout <= 0 || cfg.ThemeTimeout >= requestTimeout {
		return cfg, fmt.Errorf("THEME_TIMEOUT: %s must be positive and below the %s request timeout", cfg.ThemeTimeout, requestTimeout)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "2h")); err != nil {
		return cfg, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.DynamicThemes, err = strconv.ParseBool(getEnv("DYNAMIC_THEMES", "true")); err != nil {
		return cfg, fmt.Errorf("DYNAMIC_THEMES: %w", err)
	}
	if cfg.PuzzleSeed, err = strconv.ParseUint(getEnv("PUZZLE_SEED", "0"), 10, 64); err != nil {
		return cfg, fmt.Errorf("PUZZLE_SEED: %w", err)
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
