package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	exp := Default()

	// One GPU of a named type, bounded CPU/memory/walltime envelope.
	assert.True(t, strings.HasPrefix(exp.Resources.Gres, "gpu:"))
	assert.True(t, strings.HasSuffix(exp.Resources.Gres, ":1"))
	assert.Equal(t, 4, exp.Resources.CPUsPerTask)
	assert.Equal(t, "32G", exp.Resources.Memory)
	assert.Equal(t, "48:00:00", exp.Resources.Walltime)

	// English-to-English identity-style task with equal length caps.
	assert.Equal(t, "en", exp.Trainer.SourceLang)
	assert.Equal(t, exp.Trainer.SourceLang, exp.Trainer.TargetLang)
	assert.Equal(t, 1024, exp.Trainer.MaxSourceLength)
	assert.Equal(t, exp.Trainer.MaxSourceLength, exp.Trainer.MaxTargetLength)

	// Output directory is overwritten, both phases run, evaluation
	// generates, and mid-run checkpointing is effectively disabled.
	assert.True(t, exp.Trainer.OverwriteOutputDir)
	assert.True(t, exp.Trainer.DoTrain)
	assert.True(t, exp.Trainer.DoPredict)
	assert.True(t, exp.Trainer.PredictWithGenerate)
	assert.True(t, exp.Trainer.UsePretrainedWeights)
	assert.EqualValues(t, 500000, exp.Trainer.SaveSteps)
}
