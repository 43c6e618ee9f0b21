package gate

import (
	"context"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

type negatedCondition struct {
	wrapped Condition
}

// Negated wraps a condition and inverts its verdict: the result is satisfied
// exactly when the wrapped condition fails. Exclusivity and prerequisite
// dependencies pass through unchanged; only the final polarity flips. The
// wrapped condition is evaluated exactly once per evaluation.
func Negated(c Condition) Condition {
	return negatedCondition{wrapped: c}
}

func (n negatedCondition) Name() string {
	return "Not<" + n.wrapped.Name() + ">"
}

func (n negatedCondition) IsMutuallyExclusive() bool {
	return n.wrapped.IsMutuallyExclusive()
}

func (n negatedCondition) DependencyForTask(t Task) Task {
	return n.wrapped.DependencyForTask(t)
}

func (n negatedCondition) Evaluate(ctx context.Context, t Task) Result {
	if n.wrapped.Evaluate(ctx, t).IsSatisfied() {
		err := taskerrors.NewConditionFailed(n.Name()).
			WithMetadata(taskerrors.KeyNegatedCondition, n.wrapped.Name())
		return Failed(err)
	}
	return Satisfied()
}
