package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atelierhq/atelier/internal/model"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to
	// .atelier/). It is user-managed and never written by atelier.
	userConfigFile = ".atelierconfig.yaml"

	// Default configuration values
	DefaultLogLevel   = "info"
	DefaultListenAddr = ":8480"
)

// Config represents user configuration from .atelierconfig.yaml.
type Config struct {
	// LogLevel sets the zerolog level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// ListenAddr is the bind address for `atelier serve`.
	ListenAddr string `yaml:"listen_addr"`

	// Requests is the predefined challenge-request list installed into the
	// store once at startup, before any other operation.
	Requests []model.Request `yaml:"requests"`
}

// DefaultConfig returns a Config with default values and no predefined
// requests.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   DefaultLogLevel,
		ListenAddr: DefaultListenAddr,
	}
}

// LoadConfig loads .atelierconfig.yaml if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	configPath := filepath.Join(s.root, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
