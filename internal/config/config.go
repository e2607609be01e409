// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Seed drives attribute randomization. Zero seeds from the clock.
	Seed int64 `env:"ULAN_SEED" envDefault:"0"`
	// LogFile receives TUI debug logs. Empty discards them.
	LogFile   string `env:"ULAN_LOG_FILE"`
	AltScreen bool   `env:"ULAN_ALT_SCREEN" envDefault:"true"`
}

// Load reads the given dotenv files (".env" when none are given) into the
// process environment and parses Config from it. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return ParseEnv()
}

// ParseEnv parses Config from the current environment only.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
