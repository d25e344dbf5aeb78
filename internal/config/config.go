package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the editdir configuration
type Config struct {
	// Editor is the program used to edit the listing. Empty means
	// $EDITOR, then vi.
	Editor string `yaml:"editor"`
	// Verbose prints a line for every rename and delete.
	Verbose bool `yaml:"verbose"`
	// TempDir is where the scratch file is created (default: system temp dir).
	TempDir string `yaml:"temp_dir"`
}

// DefaultPath returns the config file location used when none is given:
// $XDG_CONFIG_HOME/editdir/config.yaml, or ~/.config/editdir/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "editdir", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "editdir", "config.yaml"), nil
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.expandEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOptional behaves like Load but returns an empty configuration when
// the file does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// expandEnv expands environment variables in all string fields
func (c *Config) expandEnv() {
	c.Editor = os.ExpandEnv(c.Editor)
	c.TempDir = os.ExpandEnv(c.TempDir)
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Editor != "" && strings.TrimSpace(c.Editor) == "" {
		return fmt.Errorf("editor must not be blank")
	}
	if strings.ContainsAny(c.Editor, "\n\r") {
		return fmt.Errorf("editor must be a single line: %q", c.Editor)
	}

	if c.TempDir != "" && !filepath.IsAbs(c.TempDir) {
		return fmt.Errorf("temp_dir must be an absolute path: %s", c.TempDir)
	}

	return nil
}
