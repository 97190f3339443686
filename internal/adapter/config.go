package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds remote catalog configuration
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Language     string `mapstructure:"language"` // BCP 47 tag, e.g. "en-US"
}

// UIConfig holds presentation preferences
type UIConfig struct {
	Theme       string `mapstructure:"theme"` // "dark" or "light"
	GridColumns int    `mapstructure:"grid_columns"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p/w500",
			Language:     "en-US",
		},
		UI: UIConfig{
			Theme:       "dark",
			GridColumns: 4,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "cineglass.log"),
			Level: "INFO",
		},
	}
}

// defaultConfigPath returns the config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cineglass")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cineglass")
	}
}

// defaultDataPath returns the data directory (log file, favorites database)
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "cineglass")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cineglass")
	}
}

// DataPath returns the directory holding the favorites database
func DataPath() string {
	return defaultDataPath()
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("CINEGLASS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("tmdb.api_key", cfg.TMDB.APIKey)
	viper.Set("tmdb.base_url", cfg.TMDB.BaseURL)
	viper.Set("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	viper.Set("tmdb.language", cfg.TMDB.Language)

	viper.Set("ui.theme", cfg.UI.Theme)
	viper.Set("ui.grid_columns", cfg.UI.GridColumns)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the API key is set
func (c *Config) IsConfigured() bool {
	return c.TMDB.APIKey != ""
}
