package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imishinist/slurm-launch/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an experiment file",
	Long: `Check the structural validity of an experiment file: directive value
shapes, data file extensions, and required fields. Semantic validity of
trainer arguments stays with the trainer's own argument parser.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	exp, err := loadExperiment(cfg)
	if err != nil {
		return err
	}

	if err := validateExperiment(exp); err != nil {
		return err
	}

	fmt.Printf("Experiment configuration is valid\n")
	fmt.Printf("  Job name: %s\n", exp.Resources.JobName)
	fmt.Printf("  Model: %s\n", exp.Trainer.ModelNameOrPath)
	fmt.Printf("  Benchmark: %s\n", exp.Trainer.Benchmark)
	fmt.Printf("  Output directory: %s\n", exp.Trainer.OutputDir)

	return nil
}
