package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/imishinist/slurm-launch/internal/models"
)

func ParseJSONExperiment(reader io.Reader) (*models.Experiment, error) {
	// Start from the reference configuration so partial files only
	// override what they mention.
	data := models.Default()
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON experiment: %w", err)
	}

	return data, nil
}
