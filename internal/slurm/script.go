package slurm

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/imishinist/slurm-launch/internal/models"
	"github.com/imishinist/slurm-launch/internal/trainer"
)

var scriptTemplate = template.Must(template.New("batch").Parse(`#!/bin/bash
{{.Directives}}

{{if .Setup}}{{.Setup}}

{{end}}{{.Command}}
`))

type scriptData struct {
	Directives string
	Setup      string
	Command    string
}

// RenderScript produces the full batch script: directives, environment
// setup (module loads and exports), and the trainer invocation.
func RenderScript(exp *models.Experiment) (string, error) {
	data := scriptData{
		Directives: strings.Join(Directives(exp.Resources), "\n"),
		Setup:      strings.Join(setupLines(exp.Environment), "\n"),
		Command:    CommandLine(exp.Trainer),
	}

	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render batch script: %w", err)
	}

	return buf.String(), nil
}

// setupLines renders module loads first, then exports in sorted key
// order so the script is stable across submissions.
func setupLines(env models.Environment) []string {
	var lines []string
	for _, m := range env.Modules {
		lines = append(lines, "module load "+m)
	}

	keys := make([]string, 0, len(env.Exports))
	for k := range env.Exports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("export %s=%s", k, shellQuote(env.Exports[k])))
	}

	return lines
}

// CommandLine renders the trainer invocation with one flag per
// continuation line.
func CommandLine(t models.Trainer) string {
	lines := []string{t.Program + " " + t.Script}
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
		}
	}

	for _, arg := range trainer.BuildArgs(t) {
		if strings.HasPrefix(arg, "--") {
			flush()
		}
		cur = append(cur, shellQuote(arg))
	}
	flush()

	return strings.Join(lines, " \\\n    ")
}

var safeArgRe = regexp.MustCompile(`^[a-zA-Z0-9_%./:=,-]+$`)

func shellQuote(s string) string {
	if safeArgRe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
