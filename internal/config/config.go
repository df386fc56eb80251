package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Analyze AnalyzeConfig `yaml:"analyze" envconfig:"ANALYZE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DatasetDir string `yaml:"dataset_dir" envconfig:"DATASET_DIR"`
	CleanedDir string `yaml:"cleaned_dir" envconfig:"CLEANED_DIR"`
	ChartsDir  string `yaml:"charts_dir" envconfig:"CHARTS_DIR"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// AnalyzeConfig contains tunables for the cleaning and charting steps
type AnalyzeConfig struct {
	IQRMultiplier float64 `yaml:"iqr_multiplier" envconfig:"IQR_MULTIPLIER"`
	HistogramBins int     `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS"`
	PreviewRows   int     `yaml:"preview_rows" envconfig:"PREVIEW_ROWS"`
}

// Load loads configuration from environment variables and config file.
// Precedence: environment, then config file, then built-in defaults.
// Defaults are applied after the merge so file values are not clobbered by
// them when the corresponding env var is unset.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("DA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Paths.BaseDir == "" {
		envConfig.Paths.BaseDir = fileConfig.Paths.BaseDir
	}
	if envConfig.Paths.DatasetDir == "" {
		envConfig.Paths.DatasetDir = fileConfig.Paths.DatasetDir
	}
	if envConfig.Paths.CleanedDir == "" {
		envConfig.Paths.CleanedDir = fileConfig.Paths.CleanedDir
	}
	if envConfig.Paths.ChartsDir == "" {
		envConfig.Paths.ChartsDir = fileConfig.Paths.ChartsDir
	}
	if envConfig.Paths.LogsDir == "" {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if envConfig.Analyze.IQRMultiplier == 0 {
		envConfig.Analyze.IQRMultiplier = fileConfig.Analyze.IQRMultiplier
	}
	if envConfig.Analyze.HistogramBins == 0 {
		envConfig.Analyze.HistogramBins = fileConfig.Analyze.HistogramBins
	}
	if envConfig.Analyze.PreviewRows == 0 {
		envConfig.Analyze.PreviewRows = fileConfig.Analyze.PreviewRows
	}

	return envConfig
}

// applyDefaults fills fields left empty by both env and file
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "file"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/analyzer.log"
	}
	if c.Analyze.IQRMultiplier == 0 {
		c.Analyze.IQRMultiplier = 1.5
	}
	if c.Analyze.HistogramBins == 0 {
		c.Analyze.HistogramBins = 16
	}
	if c.Analyze.PreviewRows == 0 {
		c.Analyze.PreviewRows = 5
	}
}

// validate checks configuration values for consistency
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Analyze.IQRMultiplier <= 0 {
		return fmt.Errorf("iqr multiplier must be positive, got %v", c.Analyze.IQRMultiplier)
	}
	if c.Analyze.HistogramBins <= 0 {
		return fmt.Errorf("histogram bins must be positive, got %d", c.Analyze.HistogramBins)
	}

	return nil
}

// getConfigFilePath returns the path to the optional config.yaml next to the executable,
// overridable with DA_CONFIG_FILE
func getConfigFilePath() string {
	if path := os.Getenv("DA_CONFIG_FILE"); path != "" {
		return path
	}

	exe, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "config.yaml")
}
