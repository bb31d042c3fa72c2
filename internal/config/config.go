package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction" envconfig:"EXTRACTION"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
}

// ExtractionConfig contains the spreadsheet-layout constants and runtime
// settings of the extraction pipeline. The defaults match the cohort's
// current file layout; they are configuration rather than literals because
// they are tied to one schema version of the radiomics export.
type ExtractionConfig struct {
	// LabelColumn is the header of the column used to pick the canonical
	// measurement row.
	LabelColumn string `yaml:"label_column" envconfig:"LABEL_COLUMN" default:"Segmentation" validate:"required"`
	// SelectionTag is matched case-sensitively as a substring of the label.
	SelectionTag string `yaml:"selection_tag" envconfig:"SELECTION_TAG" default:"suv2.5" validate:"required"`
	// FeatureStartColumn is the zero-based column where the feature block
	// begins; everything from here to the last column is a candidate feature.
	FeatureStartColumn int `yaml:"feature_start_column" envconfig:"FEATURE_START_COLUMN" default:"23" validate:"min=0"`
	// FileExtension is the single spreadsheet extension the locator accepts.
	FileExtension string `yaml:"file_extension" envconfig:"FILE_EXTENSION" default:".xlsx" validate:"required"`
	// MarkerA and MarkerB classify a file as Time A or Time B when the
	// marker occurs in the upper-cased file name. A is checked first and
	// the branches are mutually exclusive.
	MarkerA string `yaml:"marker_a" envconfig:"MARKER_A" default:"_A" validate:"required"`
	MarkerB string `yaml:"marker_b" envconfig:"MARKER_B" default:"_B" validate:"required"`
	// Workers bounds the per-patient worker pool. 1 means strictly
	// sequential processing; higher values keep output identical.
	Workers int `yaml:"workers" envconfig:"WORKERS" default:"1" validate:"min=1"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/radcli.log"`
}

// Load builds the configuration from environment variables (prefix RADCLI)
// with struct-tag defaults, overlays the optional YAML file at configPath,
// and validates the result. An empty configPath skips the file step; a
// configPath that does not exist is an error.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("RADCLI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration with all struct-tag defaults applied
// and no environment or file input considered.
func Default() Config {
	var cfg Config
	// envconfig only applies defaults for variables that are unset, so an
	// unknown prefix yields a pure-default struct.
	_ = envconfig.Process("RADCLI_DEFAULTS_ONLY", &cfg)
	return cfg
}
