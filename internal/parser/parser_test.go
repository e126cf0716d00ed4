package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLExperimentPartialOverride(t *testing.T) {
	in := `
resources:
  job_name: cogs-sweep
  array: 0-4
trainer:
  model_name_or_path: t5-large
  num_train_epochs: 5
`

	exp, err := ParseYAMLExperiment(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "cogs-sweep", exp.Resources.JobName)
	assert.Equal(t, "0-4", exp.Resources.Array)
	assert.Equal(t, "t5-large", exp.Trainer.ModelNameOrPath)
	assert.Equal(t, float64(5), exp.Trainer.NumTrainEpochs)

	// Unmentioned fields keep the reference configuration.
	assert.Equal(t, "gpu:rtx8000:1", exp.Resources.Gres)
	assert.Equal(t, 1024, exp.Trainer.MaxSourceLength)
	assert.Equal(t, "COGS", exp.Trainer.Benchmark)
}

func TestParseYAMLExperimentInvalid(t *testing.T) {
	_, err := ParseYAMLExperiment(strings.NewReader("trainer: [not, a, mapping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML experiment")
}

func TestParseJSONExperimentPartialOverride(t *testing.T) {
	in := `{"trainer": {"benchmark": "SCAN", "source_prefix": ""}}`

	exp, err := ParseJSONExperiment(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "SCAN", exp.Trainer.Benchmark)
	assert.Equal(t, "", exp.Trainer.SourcePrefix)
	assert.Equal(t, "t5-base", exp.Trainer.ModelNameOrPath)
}

func TestParseJSONExperimentInvalid(t *testing.T) {
	_, err := ParseJSONExperiment(strings.NewReader("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON experiment")
}
