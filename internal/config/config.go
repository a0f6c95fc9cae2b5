// Package config loads the application configuration: built-in defaults,
// overridden by the TOML config file, overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const appDir = "tarot-oracle"

// Config represents the application configuration
type Config struct {
	Provider         string `toml:"provider" env:"ORACLE_PROVIDER"`
	Model            string `toml:"model" env:"ORACLE_MODEL"`
	GoogleAIAPIKey   string `toml:"google_ai_api_key" env:"GOOGLE_AI_API_KEY"`
	OpenRouterAPIKey string `toml:"openrouter_api_key" env:"OPENROUTER_API_KEY"`
	OllamaHost       string `toml:"ollama_host" env:"OLLAMA_HOST"`

	AutosaveSessions bool   `toml:"autosave_sessions" env:"TAROT_ORACLE_AUTOSAVE"`
	AutosaveLocation string `toml:"autosave_location" env:"TAROT_ORACLE_AUTOSAVE_LOCATION"`
	DefaultSpread    string `toml:"default_spread" env:"TAROT_ORACLE_DEFAULT_SPREAD"`

	// MaxFileSize bounds deck, spread, and invocation files in bytes.
	MaxFileSize int64 `toml:"max_file_size" env:"TAROT_ORACLE_MAX_FILE_SIZE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Provider:      "gemini",
		OllamaHost:    "http://localhost:11434",
		DefaultSpread: "3-card",
		MaxFileSize:   1 << 20,
	}
}

// Load builds the effective configuration. A missing config file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file: %v", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error reading environment: %v", err)
	}
	return cfg, nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appDir, "config.toml")
}

// GetDecksDir returns the user deck directory
func GetDecksDir() string {
	return filepath.Join(GetXDGDataHome(), appDir, "decks")
}

// GetSpreadsDir returns the user spread directory
func GetSpreadsDir() string {
	return filepath.Join(GetXDGDataHome(), appDir, "spreads")
}

// GetInvocationsDir returns the user invocation directory
func GetInvocationsDir() string {
	return filepath.Join(GetXDGDataHome(), appDir, "invocations")
}

// GetCacheDir returns the application cache directory
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appDir)
}
