package models

// Resources describes the allocation requested from the scheduler.
// All values are passed through to sbatch as directives; the scheduler
// owns enforcement, queueing, and preemption.
type Resources struct {
	JobName     string `json:"job_name" yaml:"job_name"`
	Partition   string `json:"partition,omitempty" yaml:"partition,omitempty"`
	Nodes       int    `json:"nodes" yaml:"nodes"`
	Gres        string `json:"gres" yaml:"gres"`
	CPUsPerTask int    `json:"cpus_per_task" yaml:"cpus_per_task"`
	Memory      string `json:"memory" yaml:"memory"`
	Walltime    string `json:"walltime" yaml:"walltime"`
	Array       string `json:"array,omitempty" yaml:"array,omitempty"`
	Output      string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Environment is the setup performed inside the job before the trainer
// starts: environment modules to load and variables to export.
type Environment struct {
	Modules []string          `json:"modules,omitempty" yaml:"modules,omitempty"`
	Exports map[string]string `json:"exports,omitempty" yaml:"exports,omitempty"`
}
