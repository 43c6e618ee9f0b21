package conditions

import (
	"context"
	"os"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
)

// EnvSet passes when an environment variable is set to a non-empty value.
type EnvSet struct {
	Variable string
}

func newEnvSet(params map[string]any) (gate.Condition, error) {
	variable, err := stringParam(params, "variable")
	if err != nil {
		return nil, err
	}
	return EnvSet{Variable: variable}, nil
}

func (c EnvSet) Name() string { return "EnvSet" }

func (c EnvSet) IsMutuallyExclusive() bool { return false }

func (c EnvSet) DependencyForTask(gate.Task) gate.Task { return nil }

func (c EnvSet) Evaluate(_ context.Context, _ gate.Task) gate.Result {
	if os.Getenv(c.Variable) != "" {
		return gate.Satisfied()
	}
	err := taskerrors.NewConditionFailed(c.Name()).
		WithMetadata(taskerrors.KeyEnvVar, c.Variable)
	return gate.Failed(err)
}
