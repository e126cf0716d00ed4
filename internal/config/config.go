package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	SbatchBin      string
	ExperimentFile string
}

func New() *Config {
	return &Config{
		SbatchBin:      viper.GetString("sbatch_bin"),
		ExperimentFile: viper.GetString("experiment_file"),
	}
}

func (c *Config) Validate() error {
	if c.SbatchBin == "" {
		return fmt.Errorf("sbatch binary is required")
	}

	if c.ExperimentFile != "" {
		ext := strings.ToLower(filepath.Ext(c.ExperimentFile))
		if !validExperimentExtensions[ext] {
			return fmt.Errorf("unsupported experiment file format: %s (supported: .json, .yaml, .yml)", ext)
		}
	}

	return nil
}

// Valid experiment file extensions
var validExperimentExtensions = map[string]bool{
	".json": true, ".yaml": true, ".yml": true,
}
