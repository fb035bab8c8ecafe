// Package config holds the run configuration. Precedence is flags over
// environment over defaults; a .env file in the working directory is loaded
// into the environment first when present.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"surveyprep/domain/core"
)

// Default input file names inside the workspace directory.
const (
	DefaultSchemaFile  = "survey_results_schema.csv"
	DefaultDataFile    = "survey_results_public.csv"
	DefaultColumnTable = "columns.yaml"

	// OutputDirName is the artifact directory, fixed relative to the
	// workspace.
	OutputDirName = "clean_input"
)

// Config represents the complete run configuration
type Config struct {
	// Workspace is the root directory holding the inputs and receiving the
	// clean_input output directory.
	Workspace string

	// ColumnTable is the path to the column-to-bucket YAML table.
	ColumnTable string

	// SchemaFile is the schema CSV (canonical ordered column list).
	SchemaFile string

	// DataFile is the survey responses file, .csv or .xlsx.
	DataFile string

	// TrainRatio is the probability of assigning a row to the train
	// partition.
	TrainRatio float64

	// Seed seeds the partition draw; 0 means derive from the clock and
	// record the derived value in the run manifest.
	Seed int64
}

// Load reads configuration from the environment and fills defaults.
func Load() (*Config, error) {
	// A missing .env is not an error; explicit environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Workspace:   getEnvOrDefault("SURVEYPREP_WORKSPACE", "."),
		ColumnTable: os.Getenv("SURVEYPREP_COLUMNS"),
		SchemaFile:  os.Getenv("SURVEYPREP_SCHEMA"),
		DataFile:    os.Getenv("SURVEYPREP_DATA"),
		TrainRatio:  getEnvFloatOrDefault("SURVEYPREP_TRAIN_RATIO", 0.8),
		Seed:        getEnvInt64OrDefault("SURVEYPREP_SEED", 0),
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults resolves unset paths relative to the workspace. Callers that
// override fields from flags re-run this afterwards.
func (c *Config) ApplyDefaults() {
	if c.ColumnTable == "" {
		c.ColumnTable = filepath.Join(c.Workspace, DefaultColumnTable)
	}
	if c.SchemaFile == "" {
		c.SchemaFile = filepath.Join(c.Workspace, DefaultSchemaFile)
	}
	if c.DataFile == "" {
		c.DataFile = filepath.Join(c.Workspace, DefaultDataFile)
	}
}

// OutputDir returns the artifact directory for this workspace.
func (c *Config) OutputDir() string {
	return filepath.Join(c.Workspace, OutputDirName)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Workspace == "" {
		return core.NewInvalidConfigError("workspace", "cannot be empty")
	}
	if c.TrainRatio <= 0 || c.TrainRatio >= 1 {
		return core.NewInvalidConfigError("train ratio", "must be strictly between 0 and 1")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt64OrDefault(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
