// Package config loads client configuration and sets up logging.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is the backend address used when nothing else is configured.
const DefaultAPIBaseURL = "http://localhost:8000"

// Config holds all configuration values.
type Config struct {
	// Backend API
	APIBaseURL string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// FileConfig holds overrides persisted to ~/.config/realty/config.yaml.
type FileConfig struct {
	APIBaseURL string `yaml:"api_base_url,omitempty"`
	LogFile    string `yaml:"log_file,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
}

// Load resolves configuration once at startup, in increasing precedence:
// built-in defaults, the config file, a .env file in the working
// directory, then the process environment. The result is threaded into
// constructors; nothing reads the environment after this.
func Load() Config {
	// A .env next to the binary mirrors how the backend configures itself.
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL: DefaultAPIBaseURL,
		LogFile:    filepath.Join(os.TempDir(), "realty.log"),
		LogLevel:   slog.LevelInfo,
	}

	if fc, err := ReadFileConfig(); err == nil {
		if fc.APIBaseURL != "" {
			cfg.APIBaseURL = fc.APIBaseURL
		}
		if fc.LogFile != "" {
			cfg.LogFile = fc.LogFile
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = parseLogLevel(fc.LogLevel)
		}
	}

	if v := os.Getenv("REALTY_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("REALTY_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("REALTY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = parseLogLevel(v)
	}

	return cfg
}

// configPath returns the path to the persisted config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "realty", "config.yaml"), nil
}

// ReadFileConfig reads the config file from disk.
// Returns a zero-value config if the file doesn't exist.
func ReadFileConfig() (FileConfig, error) {
	path, err := configPath()
	if err != nil {
		return FileConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return FileConfig{}, nil
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return fc, nil
}

// SaveFileConfig writes overrides to the config file, creating the
// directory if needed.
func SaveFileConfig(fc FileConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
