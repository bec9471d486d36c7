// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatasetPath    string
	LogPath        string
	ExportDir      string
	ResizeDebounce time.Duration
	WatchDataset   bool
	NotifyOnReload bool
}

// Default values
const (
	defaultResizeDebounce = 150 * time.Millisecond
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DatasetPath:    getEnvString("DATASET_PATH", "tracks.csv"),
		LogPath:        getEnvString("LOG_PATH", getDefaultLogPath()),
		ExportDir:      getEnvString("EXPORT_DIR", "."),
		ResizeDebounce: getEnvDuration("RESIZE_DEBOUNCE", defaultResizeDebounce),
		WatchDataset:   getEnvBool("WATCH_DATASET", true),
		NotifyOnReload: getEnvBool("NOTIFY_ON_RELOAD", false),
	}

	if cfg.DatasetPath == "" {
		return nil, fmt.Errorf("DATASET_PATH must not be empty")
	}

	// Ensure log directory exists
	if cfg.LogPath != "" {
		if err := ensureDir(filepath.Dir(cfg.LogPath)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "spotscope", ".env"),
			filepath.Join(home, ".spotscope", ".env"),
		)
	}

	return paths
}

// getDefaultLogPath returns the default path for the log file.
func getDefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "spotscope.log"
	}
	return filepath.Join(home, ".config", "spotscope", "spotscope.log")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration retrieves a duration environment variable or returns the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// ensureDir creates the directory if it does not exist.
func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
