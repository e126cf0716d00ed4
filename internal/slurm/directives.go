package slurm

import (
	"fmt"
	"regexp"

	"github.com/imishinist/slurm-launch/internal/models"
)

// DirectivePrefix is the marker sbatch scans for in a batch script.
const DirectivePrefix = "#SBATCH"

// Directives renders the resource request as batch script directives.
// Unset optional resources produce no line at all rather than an empty
// directive.
func Directives(r models.Resources) []string {
	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, DirectivePrefix+" "+fmt.Sprintf(format, args...))
	}

	add("--job-name=%s", r.JobName)
	if r.Partition != "" {
		add("--partition=%s", r.Partition)
	}
	if r.Nodes > 0 {
		add("--nodes=%d", r.Nodes)
	}
	if r.Gres != "" {
		add("--gres=%s", r.Gres)
	}
	if r.CPUsPerTask > 0 {
		add("--cpus-per-task=%d", r.CPUsPerTask)
	}
	if r.Memory != "" {
		add("--mem=%s", r.Memory)
	}
	if r.Walltime != "" {
		add("--time=%s", r.Walltime)
	}
	if r.Array != "" {
		add("--array=%s", r.Array)
	}
	if r.Output != "" {
		add("--output=%s", r.Output)
	}

	return lines
}

var (
	walltimeRe = regexp.MustCompile(`^(\d+-)?\d{1,2}:\d{2}(:\d{2})?$`)
	memoryRe   = regexp.MustCompile(`^\d+[KMGT]?$`)
	arrayRe    = regexp.MustCompile(`^\d+(-\d+)?(:\d+)?(%\d+)?(,\d+(-\d+)?(:\d+)?)*$`)
)

// ValidateResources checks the directive values whose shape sbatch is
// strict about. Whether the cluster can actually satisfy the request is
// the scheduler's business.
func ValidateResources(r models.Resources) error {
	if r.JobName == "" {
		return fmt.Errorf("job name is required")
	}
	if r.Walltime != "" && !walltimeRe.MatchString(r.Walltime) {
		return fmt.Errorf("invalid walltime: %s (expected [D-]HH:MM[:SS])", r.Walltime)
	}
	if r.Memory != "" && !memoryRe.MatchString(r.Memory) {
		return fmt.Errorf("invalid memory request: %s (expected e.g. 32G)", r.Memory)
	}
	if r.Array != "" && !arrayRe.MatchString(r.Array) {
		return fmt.Errorf("invalid array spec: %s (expected e.g. 0-4 or 0-15%%4)", r.Array)
	}
	return nil
}
