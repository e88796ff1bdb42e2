// Package config loads and saves the isotool configuration file: per-user
// defaults substituted when a build descriptor leaves a field unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool-level defaults.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Finger    Finger `yaml:"finger"`
	Face      Face   `yaml:"face"`
}

// Finger contains defaults for finger container assembly.
type Finger struct {
	ScaleUnits        string   `yaml:"scale_units"`
	ScanSamplingRate  []uint16 `yaml:"scan_sampling_rate"`
	ImageSamplingRate []uint16 `yaml:"image_sampling_rate"`
	BitDepth          uint8    `yaml:"bit_depth"`
}

// Face contains defaults for face container assembly.
type Face struct {
	Version string `yaml:"version"`
}

// DefaultConfig returns the defaults used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Finger: Finger{
			ScaleUnits:        "PPI",
			ScanSamplingRate:  []uint16{500, 500},
			ImageSamplingRate: []uint16{500, 500},
			BitDepth:          8,
		},
		Face: Face{
			Version: "030",
		},
	}
}

// LoadConfig loads the configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current
// platform.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./isotool.yaml"
	}
	return filepath.Join(homeDir, ".config", "isotool", "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
