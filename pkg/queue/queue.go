// Package queue schedules condition-gated tasks: it waits out declared
// dependencies, enforces mutual-exclusion classes, evaluates conditions at
// admission, and fans lifecycle events out to observers.
package queue

import (
	"context"
	"errors"
	"sort"
	"sync"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
)

// Queue runs tasks once their dependencies finish and their conditions pass.
// Each task executes on its own goroutine; Wait blocks until every added task
// reaches terminal state.
type Queue struct {
	exclusivity *exclusivityController
	wg          sync.WaitGroup
}

// New constructs an empty queue.
func New() *Queue {
	return &Queue{exclusivity: newExclusivityController()}
}

// Add schedules t. Conditions are given the chance to contribute prerequisite
// tasks first; each produced task is announced to t's observers and enqueued
// ahead of t. Adding the same task twice is a no-op.
func (q *Queue) Add(ctx context.Context, t *Task) {
	if t == nil || !t.markScheduled() {
		return
	}

	conditions := t.Conditions()
	for _, condition := range conditions {
		dep := condition.DependencyForTask(t)
		if dep == nil {
			continue
		}
		produced, ok := dep.(*Task)
		if !ok {
			// Foreign gate.Task implementations cannot be scheduled here.
			continue
		}
		t.injectDependency(produced)
		t.notifyProduce(produced)
		q.Add(ctx, produced)
	}

	classes := exclusivityClasses(conditions)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.runTask(ctx, t, classes)
	}()
}

// Wait blocks until every task added so far has finished.
func (q *Queue) Wait() {
	q.wg.Wait()
}

func (q *Queue) runTask(ctx context.Context, t *Task, classes []string) {
	for _, dep := range t.Dependencies() {
		<-dep.Done()
	}

	q.exclusivity.acquire(classes)
	defer q.exclusivity.release(classes)

	if t.IsCancelled() {
		t.finish(nil)
		return
	}

	if errs := gate.EvaluateAll(ctx, t, t.Conditions()); len(errs) > 0 {
		// Rejected: the task finishes without executing its primary work.
		t.finish(errs)
		return
	}

	execCtx := t.beginExecution(ctx)
	t.notifyStart()

	var errs []*taskerrors.ErrorValue
	if t.run != nil {
		if err := t.run(execCtx); err != nil && !errors.Is(err, context.Canceled) {
			var ev *taskerrors.ErrorValue
			if !errors.As(err, &ev) {
				ev = taskerrors.NewExecutionFailed().
					WithMetadata(taskerrors.KeyTask, t.Name()).
					WithMetadata(taskerrors.KeyCause, err.Error())
			}
			errs = append(errs, ev)
		}
	}

	t.finish(errs)
}

// exclusivityClasses collects the class names declared by mutually exclusive
// conditions, deduplicated and sorted so locks are always taken in the same
// order.
func exclusivityClasses(conditions []gate.Condition) []string {
	seen := make(map[string]struct{}, len(conditions))
	var classes []string
	for _, condition := range conditions {
		if !condition.IsMutuallyExclusive() {
			continue
		}
		name := condition.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		classes = append(classes, name)
	}
	sort.Strings(classes)
	return classes
}
