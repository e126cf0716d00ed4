package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imishinist/slurm-launch/internal/config"
	"github.com/imishinist/slurm-launch/internal/slurm"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the rendered batch script",
	Long: `Render the batch script that submit would hand to sbatch and print
it to stdout, without submitting anything.`,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	exp, err := loadExperiment(cfg)
	if err != nil {
		return err
	}

	script, err := slurm.RenderScript(exp)
	if err != nil {
		return err
	}

	fmt.Print(script)

	return nil
}
