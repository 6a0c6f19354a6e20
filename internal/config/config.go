package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"carprice/internal/clean"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// CARPRICE_MODEL_TOPN.
const envPrefix = "CARPRICE"

// Config is the complete pipeline configuration. Values are resolved in
// order: built-in defaults, then the YAML config file, then CARPRICE_*
// environment variables.
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Model   ModelConfig   `yaml:"model" envconfig:"MODEL"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the dataset file and its header contract.
type InputConfig struct {
	Path    string        `yaml:"path" envconfig:"PATH"`
	Columns ColumnsConfig `yaml:"columns" envconfig:"COLUMNS"`
}

// ColumnsConfig names the dataset columns the pipeline depends on. The
// names must match the input file's header exactly, casing included.
type ColumnsConfig struct {
	Price           string `yaml:"price" envconfig:"PRICE"`
	Power           string `yaml:"power" envconfig:"POWER"`
	Mileage         string `yaml:"mileage" envconfig:"MILEAGE"`
	Year            string `yaml:"year" envconfig:"YEAR"`
	FuelConsumption string `yaml:"fuel_consumption" envconfig:"FUEL_CONSUMPTION"`
	Brand           string `yaml:"brand" envconfig:"BRAND"`
	Model           string `yaml:"model" envconfig:"MODEL"`
	Transmission    string `yaml:"transmission" envconfig:"TRANSMISSION"`
	FuelType        string `yaml:"fuel_type" envconfig:"FUEL_TYPE"`
}

// Features returns the numeric predictor column names in fitting order.
func (c ColumnsConfig) Features() []string {
	return []string{c.Power, c.Mileage, c.Year, c.FuelConsumption}
}

// Categoricals returns the categorical column names in encoding order.
func (c ColumnsConfig) Categoricals() []string {
	return []string{c.Brand, c.Model, c.Transmission, c.FuelType}
}

// ModelConfig holds the modeling knobs.
type ModelConfig struct {
	// TopN bounds each categorical vocabulary before one-hot encoding.
	TopN int `yaml:"top_n" envconfig:"TOPN"`
	// Folds is the cross-validation fold count.
	Folds int `yaml:"folds" envconfig:"FOLDS"`
	// Seed drives the cross-validation shuffle for reproducible reports.
	Seed int64 `yaml:"seed" envconfig:"SEED"`
	// Sentinels lists the targeted bad-data fixes applied during feature
	// cleaning, each naming its column and exact trigger value.
	Sentinels []clean.SentinelRule `yaml:"sentinels"`
}

// OutputConfig controls where reports are written.
type OutputConfig struct {
	Dir        string `yaml:"dir" envconfig:"DIR"`
	WritePlots bool   `yaml:"write_plots" envconfig:"WRITE_PLOTS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ValidationError reports a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("config field %s: %s", ve.Field, ve.Message)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			Path: "data/car_prices.csv",
			Columns: ColumnsConfig{
				Price:           "price",
				Power:           "power",
				Mileage:         "mileage",
				Year:            "year",
				FuelConsumption: "fuel_consumption",
				Brand:           "brand",
				Model:           "model",
				Transmission:    "transmission_type",
				FuelType:        "fuel_type",
			},
		},
		Model: ModelConfig{
			TopN:  20,
			Folds: 5,
			Seed:  42,
			// A model year entered in the consumption column; observed in
			// the source data and mapped to missing before row deletion.
			Sentinels: []clean.SentinelRule{
				{Column: "fuel_consumption", Value: 2011},
			},
		},
		Output: OutputConfig{
			Dir:        "reports",
			WritePlots: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/carprice.log",
		},
	}
}

// Load resolves the configuration: defaults, overlaid by the YAML file at
// path (if it exists; an empty path checks carprice.yml in the working
// directory), overlaid by CARPRICE_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = "carprice.yml"
	}
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ValidationError{Field: "input.path", Message: "dataset path is required"}
	}
	if c.Input.Columns.Price == "" {
		return ValidationError{Field: "input.columns.price", Message: "price column name is required"}
	}
	for _, name := range c.Input.Columns.Features() {
		if name == "" {
			return ValidationError{Field: "input.columns", Message: "every feature column needs a name"}
		}
	}
	for _, name := range c.Input.Columns.Categoricals() {
		if name == "" {
			return ValidationError{Field: "input.columns", Message: "every categorical column needs a name"}
		}
	}
	if c.Model.TopN < 1 {
		return ValidationError{Field: "model.top_n", Message: "must be at least 1"}
	}
	if c.Model.Folds < 2 {
		return ValidationError{Field: "model.folds", Message: "must be at least 2"}
	}
	for _, s := range c.Model.Sentinels {
		if s.Column == "" {
			return ValidationError{Field: "model.sentinels", Message: "sentinel rule needs a column name"}
		}
	}
	if c.Output.Dir == "" {
		return ValidationError{Field: "output.dir", Message: "output directory is required"}
	}
	return nil
}

// ReportPath returns the path of a report file inside the output directory.
func (c *Config) ReportPath(name string) string {
	return filepath.Join(c.Output.Dir, name)
}
