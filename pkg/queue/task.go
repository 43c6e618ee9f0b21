package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
)

// RunFunc is the primary work a task performs once admitted. The context is
// cancelled when the task is cancelled, including by a timeout observer.
type RunFunc func(ctx context.Context) error

// Task is a schedulable unit of work satisfying the gate.Task contract.
// Conditions, observers, and dependencies must be attached before the task is
// added to a queue.
type Task struct {
	id   string
	name string
	run  RunFunc

	mu         sync.Mutex
	scheduled  bool
	finished   bool
	cancelled  bool
	cancelExec context.CancelFunc
	errs       []*taskerrors.ErrorValue
	conditions []gate.Condition
	observers  []gate.Observer
	deps       []*Task
	done       chan struct{}
}

// NewTask constructs a task running fn as its primary work. A nil fn yields a
// task that finishes immediately once admitted, useful for pure gating.
func NewTask(name string, fn RunFunc) *Task {
	return &Task{
		id:   uuid.NewString(),
		name: name,
		run:  fn,
		done: make(chan struct{}),
	}
}

// ID returns the task's unique identifier.
func (t *Task) ID() string { return t.id }

// Name returns the task's human-readable name.
func (t *Task) Name() string { return t.name }

// IsCancelled reports whether cancellation has been requested.
func (t *Task) IsCancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// IsFinished reports whether the task reached terminal state.
func (t *Task) IsFinished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finished
}

// CancelWithError requests cancellation, recording err as the cause. The
// request is a no-op on a finished task. An in-flight run function is told to
// stop through its context but is not forcibly interrupted.
func (t *Task) CancelWithError(err *taskerrors.ErrorValue) {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	t.cancelled = true
	if err != nil {
		t.errs = append(t.errs, err)
	}
	cancel := t.cancelExec
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// AddCondition attaches a condition gating the task's admission.
func (t *Task) AddCondition(c gate.Condition) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scheduled {
		return fmt.Errorf("task %q already scheduled", t.name)
	}
	t.conditions = append(t.conditions, c)
	return nil
}

// AddObserver attaches a lifecycle observer.
func (t *Task) AddObserver(o gate.Observer) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scheduled {
		return fmt.Errorf("task %q already scheduled", t.name)
	}
	t.observers = append(t.observers, o)
	return nil
}

// AddDependency orders dep ahead of the task.
func (t *Task) AddDependency(dep *Task) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scheduled {
		return fmt.Errorf("task %q already scheduled", t.name)
	}
	t.deps = append(t.deps, dep)
	return nil
}

// Conditions returns a snapshot of the attached conditions.
func (t *Task) Conditions() []gate.Condition {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]gate.Condition(nil), t.conditions...)
}

// Dependencies returns a snapshot of the tasks ordered ahead of this one.
func (t *Task) Dependencies() []*Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Task(nil), t.deps...)
}

// Errors returns a snapshot of every error recorded so far.
func (t *Task) Errors() []*taskerrors.ErrorValue {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*taskerrors.ErrorValue(nil), t.errs...)
}

// Done returns a channel closed when the task reaches terminal state.
func (t *Task) Done() <-chan struct{} { return t.done }

// markScheduled claims the task for a queue; false means another Add won.
func (t *Task) markScheduled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scheduled {
		return false
	}
	t.scheduled = true
	return true
}

// injectDependency is the queue-side insertion path for condition-produced
// prerequisites, which happens after the task is claimed.
func (t *Task) injectDependency(dep *Task) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deps = append(t.deps, dep)
}

// beginExecution derives the run context and publishes its cancel hook so
// CancelWithError can stop in-flight work.
func (t *Task) beginExecution(ctx context.Context) context.Context {
	execCtx, cancel := context.WithCancel(ctx)
	t.mu.Lock()
	t.cancelExec = cancel
	t.mu.Unlock()
	return execCtx
}

// finish records any trailing errors, transitions to terminal state, and
// notifies observers exactly once.
func (t *Task) finish(extra []*taskerrors.ErrorValue) {
	t.mu.Lock()
	if t.finished {
		t.mu.Unlock()
		return
	}
	t.errs = append(t.errs, extra...)
	t.finished = true
	errs := append([]*taskerrors.ErrorValue(nil), t.errs...)
	observers := append([]gate.Observer(nil), t.observers...)
	t.mu.Unlock()

	close(t.done)
	for _, o := range observers {
		o.TaskDidFinish(t, errs)
	}
}

func (t *Task) notifyStart() {
	t.mu.Lock()
	observers := append([]gate.Observer(nil), t.observers...)
	t.mu.Unlock()

	for _, o := range observers {
		o.TaskDidStart(t)
	}
}

func (t *Task) notifyProduce(produced *Task) {
	t.mu.Lock()
	observers := append([]gate.Observer(nil), t.observers...)
	t.mu.Unlock()

	for _, o := range observers {
		o.TaskDidProduce(t, produced)
	}
}
