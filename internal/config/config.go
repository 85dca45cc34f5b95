// Package config loads portfolio-server settings from the environment. A
// .env file in the working directory is read first when present; variables
// already set in the process environment win.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Port         string   // PORT
	DatabasePath string   // DATABASE_PATH
	GinMode      string   // GIN_MODE
	RelayOrigins []string // RELAY_ORIGINS, comma separated; empty allows any
	SeedFAQ      bool     // SEED_FAQ
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:         "8080",
		DatabasePath: "portfolio.db",
		GinMode:      "release",
		SeedFAQ:      true,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", strings.Join(present, ", "), err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults for
// empty values.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("config: PORT %q: %w", v, err)
		}
		cfg.Port = v
	}
	if v := getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := getenv("GIN_MODE"); v != "" {
		switch v {
		case "debug", "release", "test":
			cfg.GinMode = v
		default:
			return Config{}, fmt.Errorf("config: GIN_MODE %q: want debug, release or test", v)
		}
	}
	if v := getenv("RELAY_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.RelayOrigins = append(cfg.RelayOrigins, o)
			}
		}
	}
	if v := getenv("SEED_FAQ"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: SEED_FAQ %q: %w", v, err)
		}
		cfg.SeedFAQ = b
	}
	return cfg, nil
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}
