package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imishinist/slurm-launch/internal/config"
	"github.com/imishinist/slurm-launch/internal/trainer"
)

var argsCmd = &cobra.Command{
	Use:   "args",
	Short: "Print the assembled trainer argument list",
	Long: `Print the argument list passed to the trainer, one flag per line
with its literal value. Useful for diffing two experiment files.`,
	RunE: runArgs,
}

func init() {
	rootCmd.AddCommand(argsCmd)
}

func runArgs(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	exp, err := loadExperiment(cfg)
	if err != nil {
		return err
	}

	var line []string
	flush := func() {
		if len(line) > 0 {
			fmt.Println(strings.Join(line, " "))
			line = nil
		}
	}
	for _, arg := range trainer.BuildArgs(exp.Trainer) {
		if strings.HasPrefix(arg, "--") {
			flush()
		}
		line = append(line, arg)
	}
	flush()

	return nil
}
