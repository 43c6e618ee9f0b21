package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire
// pipeline document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return taskerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	taskIndex := make(map[string]int, len(cfg.Tasks))

	for i, task := range cfg.Tasks {
		if _, exists := taskIndex[task.ID]; exists {
			return taskerrors.NewValidationError(fieldForTask(i, "id"), fmt.Sprintf("duplicate task id %q", task.ID), nil)
		}
		taskIndex[task.ID] = i
	}

	for i, task := range cfg.Tasks {
		for _, dep := range task.DependsOn {
			if dep == task.ID {
				return taskerrors.NewValidationError(fieldForTask(i, "depends_on"), "task depends on itself", nil)
			}
			if _, ok := taskIndex[dep]; !ok {
				return taskerrors.NewValidationError(fieldForTask(i, "depends_on"), fmt.Sprintf("references unknown task %q", dep), nil)
			}
		}
	}

	if cycle := detectCycle(cfg.Tasks); len(cycle) > 0 {
		return taskerrors.NewValidationError("tasks", fmt.Sprintf("dependency cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into taskgate validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return taskerrors.NewValidationError(field, msg, err)
	}

	return taskerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForTask(index int, field string) string {
	return fmt.Sprintf("tasks[%d].%s", index, field)
}
