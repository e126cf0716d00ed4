package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imishinist/slurm-launch/internal/config"
	"github.com/imishinist/slurm-launch/internal/models"
	"github.com/imishinist/slurm-launch/internal/parser"
	"github.com/imishinist/slurm-launch/internal/slurm"
	"github.com/imishinist/slurm-launch/internal/trainer"
)

var rootCmd = &cobra.Command{
	Use:   "slurm-launch",
	Short: "Batch job launcher for fine-tuning experiments",
	Long: `A command line tool for submitting sequence-to-sequence fine-tuning
jobs to a SLURM cluster. Renders the scheduler directives, environment
setup, and trainer argument list from one experiment file and hands the
resulting batch script to sbatch.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("file", "", "Experiment file in JSON or YAML (default: built-in configuration)")
	rootCmd.PersistentFlags().String("sbatch-bin", "", "sbatch binary to invoke (overrides SLURM_LAUNCH_SBATCH_BIN)")
	viper.BindPFlag("experiment_file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("sbatch_bin", rootCmd.PersistentFlags().Lookup("sbatch-bin"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("SLURM_LAUNCH")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("sbatch_bin", "sbatch")
}

// loadExperiment reads the experiment file named in the configuration,
// falling back to the built-in configuration when none is given.
func loadExperiment(cfg *config.Config) (*models.Experiment, error) {
	if cfg.ExperimentFile == "" {
		return models.Default(), nil
	}

	file, err := os.Open(cfg.ExperimentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", cfg.ExperimentFile, err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(cfg.ExperimentFile))
	switch ext {
	case ".json":
		return parser.ParseJSONExperiment(file)
	case ".yaml", ".yml":
		return parser.ParseYAMLExperiment(file)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .json, .yaml, .yml)", ext)
	}
}

// validateExperiment checks the directive and argument shapes the
// launcher can verify locally.
func validateExperiment(exp *models.Experiment) error {
	if err := slurm.ValidateResources(exp.Resources); err != nil {
		return err
	}
	return trainer.Validate(exp.Trainer)
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
