package slurm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/imishinist/slurm-launch/internal/models"
)

var jobIDRe = regexp.MustCompile(`Submitted batch job (\d+)`)

// ParseJobID extracts the job ID from sbatch's output.
func ParseJobID(out string) (string, error) {
	m := jobIDRe.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("no job ID in sbatch output: %q", strings.TrimSpace(out))
	}
	return m[1], nil
}

// WriteScript renders the batch script and writes it under dir with a
// unique name, returning the path.
func WriteScript(dir string, exp *models.Experiment) (string, error) {
	script, err := RenderScript(exp)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("launch-%s.sbatch", uuid.New().String()))
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		return "", fmt.Errorf("failed to write batch script: %w", err)
	}

	return path, nil
}

// Submit writes the batch script, hands it to sbatch, and returns the
// job ID the scheduler assigned. The script file is removed once sbatch
// has consumed it; sbatch keeps its own copy. Failures are reported
// as-is with sbatch's output, with no retry and no classification.
func Submit(ctx context.Context, sbatchBin string, exp *models.Experiment) (string, error) {
	path, err := WriteScript(os.TempDir(), exp)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	cmd := exec.CommandContext(ctx, sbatchBin, path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("sbatch failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return ParseJobID(string(out))
}
