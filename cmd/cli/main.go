package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"surveyprep/internal/config"
	"surveyprep/internal/pipeline"
)

var (
	// Global flags
	workspace   string
	columnTable string
	verbose     bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "surveyprep",
		Short: "One-shot survey data preparation: classify, clean, split, emit",
		Long: `surveyprep prepares a public survey export for ML training.

It classifies every column into a semantic bucket from an externalized
column table, cleans string cells, splits rows into train/eval partitions,
and writes schema.json and transforms.json for the downstream preparation
tool. All paths resolve relative to the workspace directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zapCfg := zap.NewProductionConfig()
			if verbose {
				zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zapCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "workspace directory (default from SURVEYPREP_WORKSPACE or .)")
	rootCmd.PersistentFlags().StringVar(&columnTable, "columns", "", "column table YAML (default <workspace>/columns.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newPrepareCmd(),
		newCheckCmd(),
		newProfileCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges env configuration with command-line overrides.
func loadConfig(schemaFile, dataFile string, trainRatio float64, seed int64) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if workspace != "" {
		cfg.Workspace = workspace
		// Re-resolve paths the environment left unset.
		cfg.ColumnTable = ""
		cfg.SchemaFile = ""
		cfg.DataFile = ""
		cfg.ApplyDefaults()
	}
	if columnTable != "" {
		cfg.ColumnTable = columnTable
	}
	if schemaFile != "" {
		cfg.SchemaFile = schemaFile
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if trainRatio != 0 {
		cfg.TrainRatio = trainRatio
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newPrepareCmd() *cobra.Command {
	var (
		schemaFile string
		dataFile   string
		trainRatio float64
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Run the full pipeline and write all artifacts",
		Long: `Run the full preparation pipeline.

Example: surveyprep prepare --workspace ./survey --split 0.8 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(schemaFile, dataFile, trainRatio, seed)
			if err != nil {
				return err
			}
			manifest, err := pipeline.New(cfg, logger).Run()
			if err != nil {
				return err
			}
			fmt.Printf("run %s: %d rows (%d train / %d eval), artifacts in %s\n",
				manifest.RunID, manifest.RowCount,
				manifest.Split.TrainRows, manifest.Split.EvalRows, cfg.OutputDir())
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "", "schema CSV (default <workspace>/"+config.DefaultSchemaFile+")")
	cmd.Flags().StringVar(&dataFile, "data", "", "responses file, .csv or .xlsx (default <workspace>/"+config.DefaultDataFile+")")
	cmd.Flags().Float64Var(&trainRatio, "split", 0, "train partition probability (default 0.8)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "partition seed (0 = derive from clock)")

	return cmd
}

func newCheckCmd() *cobra.Command {
	var schemaFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the column table against the schema CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(schemaFile, "", 0, 0)
			if err != nil {
				return err
			}
			cls, err := pipeline.New(cfg, logger).Check()
			if err != nil {
				return err
			}
			fmt.Printf("ok: %d columns, target %s\n", len(cls.Headers()), cls.Target())
			for bucket, n := range cls.CountByBucket() {
				fmt.Printf("  %-14s %d\n", bucket, n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "", "schema CSV (default <workspace>/"+config.DefaultSchemaFile+")")
	return cmd
}

func newProfileCmd() *cobra.Command {
	var (
		schemaFile string
		dataFile   string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Clean the dataset and write per-column statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(schemaFile, dataFile, 0, 0)
			if err != nil {
				return err
			}
			if err := pipeline.New(cfg, logger).Profile(); err != nil {
				return err
			}
			fmt.Printf("profile written to %s\n", cfg.OutputDir())
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "", "schema CSV (default <workspace>/"+config.DefaultSchemaFile+")")
	cmd.Flags().StringVar(&dataFile, "data", "", "responses file (default <workspace>/"+config.DefaultDataFile+")")
	return cmd
}
