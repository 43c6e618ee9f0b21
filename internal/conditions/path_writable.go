package conditions

import (
	"context"
	"os"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
	"github.com/alexisbeaulieu97/taskgate/pkg/queue"
)

// PathWritable passes when files can be created under a directory. It
// contributes a prerequisite task that creates the directory first, so a
// missing path is provisioned rather than rejected.
type PathWritable struct {
	Path string
}

func newPathWritable(params map[string]any) (gate.Condition, error) {
	path, err := stringParam(params, "path")
	if err != nil {
		return nil, err
	}
	return PathWritable{Path: path}, nil
}

func (c PathWritable) Name() string { return "PathWritable" }

func (c PathWritable) IsMutuallyExclusive() bool { return false }

func (c PathWritable) DependencyForTask(gate.Task) gate.Task {
	path := c.Path
	return queue.NewTask("provision "+path, func(context.Context) error {
		return os.MkdirAll(path, 0o755)
	})
}

func (c PathWritable) Evaluate(_ context.Context, _ gate.Task) gate.Result {
	probe, err := os.CreateTemp(c.Path, ".taskgate-probe-*")
	if err != nil {
		failure := taskerrors.NewConditionFailed(c.Name()).
			WithMetadata(taskerrors.KeyPath, c.Path)
		return gate.Failed(failure)
	}
	probe.Close()
	os.Remove(probe.Name())
	return gate.Satisfied()
}
