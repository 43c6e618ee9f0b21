package gate

import (
	"context"
	"sync"
	"time"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

// fakeTask is a minimal Task implementation recording cancellation requests.
type fakeTask struct {
	mu         sync.Mutex
	id         string
	name       string
	cancelled  bool
	finished   bool
	cancelErrs []*taskerrors.ErrorValue
}

func newFakeTask(name string) *fakeTask {
	return &fakeTask{id: "task-" + name, name: name}
}

func (t *fakeTask) ID() string   { return t.id }
func (t *fakeTask) Name() string { return t.name }

func (t *fakeTask) IsCancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

func (t *fakeTask) IsFinished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}

func (t *fakeTask) CancelWithError(err *taskerrors.ErrorValue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
	t.cancelErrs = append(t.cancelErrs, err)
}

func (t *fakeTask) markCancelled() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
}

func (t *fakeTask) markFinished() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finished = true
}

func (t *fakeTask) cancellations() []*taskerrors.ErrorValue {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*taskerrors.ErrorValue(nil), t.cancelErrs...)
}

// stubCondition is a scriptable condition with an optional completion delay
// and an evaluation counter.
type stubCondition struct {
	name       string
	exclusive  bool
	dependency Task
	result     Result
	delay      time.Duration

	mu          sync.Mutex
	evaluations int
}

func (c *stubCondition) Name() string              { return c.name }
func (c *stubCondition) IsMutuallyExclusive() bool { return c.exclusive }

func (c *stubCondition) DependencyForTask(Task) Task { return c.dependency }

func (c *stubCondition) Evaluate(_ context.Context, _ Task) Result {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	c.mu.Lock()
	c.evaluations++
	c.mu.Unlock()
	return c.result
}

func (c *stubCondition) evaluationCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evaluations
}

func failing(name string, delay time.Duration) *stubCondition {
	return &stubCondition{
		name:   name,
		delay:  delay,
		result: Failed(taskerrors.NewConditionFailed(name)),
	}
}

func passing(name string, delay time.Duration) *stubCondition {
	return &stubCondition{name: name, delay: delay, result: Satisfied()}
}
