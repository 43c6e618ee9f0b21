package config

// Config represents a full taskgate pipeline document.
type Config struct {
	Version     string     `yaml:"version" validate:"required,semver"`
	Name        string     `yaml:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty"`
	Settings    Settings   `yaml:"settings,omitempty"`
	Tasks       []TaskSpec `yaml:"tasks" validate:"required,min=1,dive"`
}

// Settings holds global execution parameters.
type Settings struct {
	// Timeout is the default per-task deadline in seconds; 0 disables it.
	Timeout int `yaml:"timeout,omitempty" validate:"omitempty,min=1,max=86400"`
	// ContinueOnError keeps the run's exit status zero even when tasks fail.
	ContinueOnError bool `yaml:"continue_on_error,omitempty"`
	Verbose         bool `yaml:"verbose,omitempty"`
}

// TaskSpec describes a single gated unit of work.
type TaskSpec struct {
	ID        string   `yaml:"id" validate:"required,task_id"`
	Name      string   `yaml:"name,omitempty"`
	Command   string   `yaml:"command" validate:"required,min=1"`
	DependsOn []string `yaml:"depends_on,omitempty"`
	// Timeout overrides the global deadline for this task, in seconds.
	Timeout    int             `yaml:"timeout,omitempty" validate:"omitempty,min=1,max=86400"`
	Conditions []ConditionSpec `yaml:"conditions,omitempty" validate:"omitempty,dive"`
}

// ConditionSpec selects a registered condition type and its parameters.
type ConditionSpec struct {
	Type string `yaml:"type" validate:"required,condition_type"`
	// Negate inverts the condition's verdict.
	Negate bool           `yaml:"negate,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
}

// DisplayName returns the task's name, falling back to its ID.
func (t TaskSpec) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}
