// Package config loads and saves the application configuration from
// ~/.config/taskdeck/config.toml, with environment overrides for the
// Firebase credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	Firebase FirebaseConfig `toml:"firebase"`
	Store    StoreConfig    `toml:"store"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Log      LogConfig      `toml:"log"`
}

// FirebaseConfig holds Firebase project settings
type FirebaseConfig struct {
	// CredentialsFile is a service account key file. The
	// FIREBASE_CREDENTIALS_PATH environment variable overrides it.
	CredentialsFile string `toml:"credentials_file"`
	ProjectID       string `toml:"project_id"`
}

// StoreConfig holds task store settings
type StoreConfig struct {
	// Collection is the Firestore collection holding task documents
	Collection string `toml:"collection"`
}

// MetricsConfig holds metrics server settings
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// File receives structured logs; the TUI owns stdout
	File string `toml:"file"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Store: StoreConfig{
			Collection: "tasks",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
		Log: LogConfig{
			File: filepath.Join(homeDir, ".config", "taskdeck", "taskdeck.log"),
		},
	}
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "taskdeck", "config.toml")
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// No config file, apply env overrides to defaults
		cfg.applyEnv()
		return cfg, nil
	}

	// Read and parse config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Expand home directory in paths
	if cfg.Firebase.CredentialsFile != "" {
		cfg.Firebase.CredentialsFile = expandPath(cfg.Firebase.CredentialsFile)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables on top of file settings.
func (c *Config) applyEnv() {
	if creds := os.Getenv("FIREBASE_CREDENTIALS_PATH"); creds != "" {
		c.Firebase.CredentialsFile = expandPath(creds)
	}
	if project := os.Getenv("FIREBASE_PROJECT_ID"); project != "" {
		c.Firebase.ProjectID = project
	}
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home dir: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "taskdeck")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.toml")
	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
