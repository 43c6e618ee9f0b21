package gate

import (
	"context"
)

type exclusiveCondition struct {
	class string
}

// MutuallyExclusive constructs a marker condition that always evaluates
// satisfied; its sole effect is declaring that tasks carrying the same class
// must not be ready to run concurrently. The owning scheduler enforces this
// with a named lock keyed by the condition's Name.
func MutuallyExclusive(class string) Condition {
	return exclusiveCondition{class: class}
}

func (c exclusiveCondition) Name() string {
	return "MutuallyExclusive<" + c.class + ">"
}

func (c exclusiveCondition) IsMutuallyExclusive() bool {
	return true
}

func (c exclusiveCondition) DependencyForTask(Task) Task {
	return nil
}

func (c exclusiveCondition) Evaluate(context.Context, Task) Result {
	return Satisfied()
}
