package conditions

import (
	"context"
	"os"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
)

// FilePresent passes when a path exists on disk.
type FilePresent struct {
	Path string
}

func newFilePresent(params map[string]any) (gate.Condition, error) {
	path, err := stringParam(params, "path")
	if err != nil {
		return nil, err
	}
	return FilePresent{Path: path}, nil
}

func (c FilePresent) Name() string { return "FilePresent" }

func (c FilePresent) IsMutuallyExclusive() bool { return false }

func (c FilePresent) DependencyForTask(gate.Task) gate.Task { return nil }

func (c FilePresent) Evaluate(_ context.Context, _ gate.Task) gate.Result {
	if _, err := os.Stat(c.Path); err != nil {
		failure := taskerrors.NewConditionFailed(c.Name()).
			WithMetadata(taskerrors.KeyPath, c.Path)
		return gate.Failed(failure)
	}
	return gate.Satisfied()
}
