package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/imishinist/slurm-launch/internal/models"
)

func ParseYAMLExperiment(reader io.Reader) (*models.Experiment, error) {
	data := models.Default()
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML experiment: %w", err)
	}

	return data, nil
}
