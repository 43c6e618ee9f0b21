package gate

import (
	"sync"
	"time"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

// TimeoutObserver cancels its task when it runs longer than a fixed duration.
//
// The observer is armed at construction and starts watching when the task
// starts. When the deadline elapses it cancels the task with an
// execution-failed error carrying the configured duration — unless the task
// already finished or was cancelled, in which case the firing is a no-op.
// Use one observer instance per task.
type TimeoutObserver struct {
	timeout time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewTimeoutObserver constructs an observer enforcing the given deadline,
// measured from task start.
func NewTimeoutObserver(timeout time.Duration) *TimeoutObserver {
	return &TimeoutObserver{timeout: timeout}
}

// TaskDidStart schedules the deadline check.
func (o *TimeoutObserver) TaskDidStart(t Task) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.timer = time.AfterFunc(o.timeout, func() {
		// Correctness does not depend on the timer being stopped; a late
		// firing observes terminal state here and backs off.
		if t.IsFinished() || t.IsCancelled() {
			return
		}
		err := taskerrors.NewExecutionFailed().
			WithMetadata(taskerrors.KeyTimeout, o.timeout).
			WithMetadata(taskerrors.KeyTask, t.Name())
		t.CancelWithError(err)
	})
}

// TaskDidProduce is a no-op for this observer.
func (o *TimeoutObserver) TaskDidProduce(Task, Task) {}

// TaskDidFinish stops the pending timer. Purely resource hygiene.
func (o *TimeoutObserver) TaskDidFinish(Task, []*taskerrors.ErrorValue) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}
