package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFileName = "escala_config.yaml"

// Defaults applied when the config file omits optional fields
const (
	DefaultLocale                = "pt-BR"
	DefaultHistoryLookbackMonths = 6
	DefaultAdjacencyLookbackDays = 7
)

// Config represents the application configuration
type Config struct {
	DatabaseURL   string `yaml:"databaseURL" validate:"required"`
	DefaultLocale string `yaml:"defaultLocale,omitempty"`

	// HistoryLookbackMonths bounds the published-assignment history used to
	// seed fairness counts
	HistoryLookbackMonths int `yaml:"historyLookbackMonths,omitempty" validate:"omitempty,min=1"`

	// AdjacencyLookbackDays bounds the pre-month window used to seed
	// last-worked dates for the no-back-to-back rule
	AdjacencyLookbackDays int `yaml:"adjacencyLookbackDays,omitempty" validate:"omitempty,min=1"`

	// RandomSeed fixes the allocation tie-break ordering when set,
	// making runs reproducible
	RandomSeed *int64 `yaml:"randomSeed,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from escala_config.yaml.
// It looks in the current directory first, then in the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}
	if cfg.HistoryLookbackMonths == 0 {
		cfg.HistoryLookbackMonths = DefaultHistoryLookbackMonths
	}
	if cfg.AdjacencyLookbackDays == 0 {
		cfg.AdjacencyLookbackDays = DefaultAdjacencyLookbackDays
	}
}

// findConfigFile searches for the config file in the current directory and
// the home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
