package slurm

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imishinist/slurm-launch/internal/models"
)

func TestParseJobID(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{"Plain", "Submitted batch job 123456\n", "123456", false},
		{"WithWarning", "sbatch: warning: partition default\nSubmitted batch job 42\n", "42", false},
		{"NoJobID", "sbatch: error: invalid partition\n", "", true},
		{"Empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJobID(tt.out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteScript(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteScript(dir, models.Default())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`launch-[0-9a-f-]+\.sbatch$`), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "#!/bin/bash\n#SBATCH --job-name=t5-cogs")
}

func TestWriteScriptUniqueNames(t *testing.T) {
	dir := t.TempDir()

	first, err := WriteScript(dir, models.Default())
	require.NoError(t, err)
	second, err := WriteScript(dir, models.Default())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSubmit(t *testing.T) {
	stub := writeStubSbatch(t, "#!/bin/sh\necho Submitted batch job 4242\n")

	jobID, err := Submit(context.Background(), stub, models.Default())
	require.NoError(t, err)
	assert.Equal(t, "4242", jobID)
}

func TestSubmitPropagatesFailure(t *testing.T) {
	stub := writeStubSbatch(t, "#!/bin/sh\necho sbatch: error: Invalid gres specification >&2\nexit 1\n")

	_, err := Submit(context.Background(), stub, models.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sbatch failed")
	assert.Contains(t, err.Error(), "Invalid gres specification")
}

func writeStubSbatch(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sbatch")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}
