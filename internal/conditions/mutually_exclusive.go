package conditions

import (
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
)

func newMutuallyExclusive(params map[string]any) (gate.Condition, error) {
	class, err := stringParam(params, "class")
	if err != nil {
		return nil, err
	}
	return gate.MutuallyExclusive(class), nil
}
