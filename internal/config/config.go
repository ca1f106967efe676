// Package config loads poshell's on-disk settings file: the genuinely
// ambient knobs spec.md is silent on (history capacity, completion
// bell audibility, decorative theme) as opposed to the PATH/HOME/
// HISTFILE environment contract spec.md §6 defines explicitly.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is poshell's on-disk settings (SPEC_FULL.md §6.1).
type Config struct {
	Theme          string `yaml:"theme"`
	HistorySize    int    `yaml:"history_size"`
	CompletionBell bool   `yaml:"completion_bell"`
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{
		Theme:          "auto",
		HistorySize:    1000,
		CompletionBell: true,
	}
}

// Dir returns the directory poshell's config file lives in.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "poshell"), nil
}

// Path returns the full path to poshell's config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the on-disk config, falling back to Default() for any
// field absent from the file, and for the file being absent entirely.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to $HOME/.config/poshell/config.yaml, creating the
// directory if needed.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
