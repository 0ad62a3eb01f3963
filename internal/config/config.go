package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	PlayerName   string `toml:"player_name"`
	OpponentName string `toml:"opponent_name"`
	Computer     bool   `toml:"computer"`
	ResultsFile  string `toml:"results_file"`
	LogLevel     string `toml:"log_level"`
	Color        bool   `toml:"color"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Computer:    true,
		ResultsFile: GetResultsFilePath(),
		LogLevel:    "warn",
		Color:       true,
	}
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

// GetResultsFilePath returns the default location of the game history
func GetResultsFilePath() string {
	return filepath.Join(GetXDGDataHome(), "war", "results.toml")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "war", "config.toml")
}

// LoadConfig loads the config file, creating a default one if it is missing
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at configPath
func LoadConfigFrom(configPath string) (*Config, error) {
	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := Save(configPath, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if config.ResultsFile == "" {
		config.ResultsFile = GetResultsFilePath()
	}

	return config, nil
}

// Save writes config to configPath
func Save(configPath string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetPlayerName sets the default name for player one in the config
func SetPlayerName(configPath, name string) error {
	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	config.PlayerName = name

	return Save(configPath, config)
}
