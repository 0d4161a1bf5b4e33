package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notepad/pkg/adapters/fs"
)

// Config configures the notes application.
type Config struct {
	// File is the note document used by import and export.
	File string `yaml:"file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFile, when set, also receives JSON log records.
	LogFile string `yaml:"log_file"`
	// Watch reports foreign edits to File.
	Watch bool `yaml:"watch"`
	// BackgroundIO runs import and export off the event loop.
	BackgroundIO bool `yaml:"background_io"`
	// HistoryFile keeps shell history between sessions.
	HistoryFile string `yaml:"history_file"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		File:     fs.DefaultFile,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return errors.New("config: file must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
