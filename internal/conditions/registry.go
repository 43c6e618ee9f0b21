// Package conditions maps pipeline condition specs onto gate.Condition
// implementations through a factory registry keyed by type name.
package conditions

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/taskgate/internal/config"
	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
)

// Factory builds a condition from its raw config parameters.
type Factory func(params map[string]any) (gate.Condition, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a condition factory for the provided type.
func Register(conditionType string, f Factory) error {
	if f == nil {
		return taskerrors.NewValidationError(conditionType, "condition factory is nil", nil)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[conditionType]; exists {
		return taskerrors.NewValidationError(conditionType, "condition type already registered", nil)
	}

	registry[conditionType] = f
	return nil
}

// Build instantiates the condition a spec describes, applying negation last.
func Build(spec config.ConditionSpec) (gate.Condition, error) {
	registryMu.RLock()
	f, ok := registry[spec.Type]
	registryMu.RUnlock()

	if !ok {
		return nil, taskerrors.NewValidationError(spec.Type, "no condition registered for type", nil)
	}

	condition, err := f(spec.Params)
	if err != nil {
		return nil, err
	}

	if spec.Negate {
		condition = gate.Negated(condition)
	}
	return condition, nil
}

// RegisterDefaults wires every built-in condition type.
func RegisterDefaults() error {
	defaults := map[string]Factory{
		"env_set":            newEnvSet,
		"file_present":       newFilePresent,
		"path_writable":      newPathWritable,
		"mutually_exclusive": newMutuallyExclusive,
	}

	for conditionType, factory := range defaults {
		if err := Register(conditionType, factory); err != nil {
			return err
		}
	}
	return nil
}

// ResetRegistry clears condition registrations (for tests).
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Factory)
}

// stringParam extracts a required string parameter from a condition spec.
func stringParam(params map[string]any, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", taskerrors.NewValidationError(key, fmt.Sprintf("missing required parameter %q", key), nil)
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", taskerrors.NewValidationError(key, fmt.Sprintf("parameter %q must be a non-empty string", key), nil)
	}
	return value, nil
}
