package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imishinist/slurm-launch/internal/config"
	"github.com/imishinist/slurm-launch/internal/slurm"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the experiment as a batch job",
	Long: `Render the batch script for the experiment and hand it to sbatch.
On success only the scheduler-assigned job ID is printed, so the output
can be captured by shell scripts.`,
	Example: `  # Submit the built-in reference configuration
  slurm-launch submit

  # Submit an experiment file, capturing the job ID
  JOB_ID=$(slurm-launch submit --file cogs-t5.yaml)

  # Inspect the sbatch invocation without submitting
  slurm-launch submit --file cogs-t5.yaml --dry-run`,
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	// Submit command flags
	submitCmd.Flags().Bool("dry-run", false, "Print the batch script instead of submitting it")
}

func runSubmit(cmd *cobra.Command, args []string) error {
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

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		script, err := slurm.RenderScript(exp)
		if err != nil {
			return err
		}
		fmt.Print(script)
		return nil
	}

	ctx := context.Background()
	jobID, err := slurm.Submit(ctx, cfg.SbatchBin, exp)
	if err != nil {
		return fmt.Errorf("failed to submit job: %w", err)
	}

	// Output only job ID for shell scripting
	fmt.Printf("%s\n", jobID)

	return nil
}
