// Package config reads the calculator's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSaveFile is where the text parameter report is written.
const DefaultSaveFile = "UserInputs.txt"

// Config holds all settings, populated from environment variables.
type Config struct {
	DataDir   string
	SaveFile  string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset. Variables from a .env file in the working directory are
// loaded first if the file exists; variables already set take precedence.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path.
func LoadFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	cfg := &Config{
		DataDir:   os.Getenv("GOWIND_DATA_DIR"),
		SaveFile:  envOrDefault("GOWIND_SAVE_FILE", DefaultSaveFile),
		LogLevel:  strings.ToLower(envOrDefault("LOG_LEVEL", "warn")),
		LogFormat: strings.ToLower(envOrDefault("LOG_FORMAT", "text")),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
