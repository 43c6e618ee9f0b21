// Package gate implements condition-gated admission for schedulable tasks.
//
// A Task declares zero or more Conditions that must hold before it is allowed
// to run, and zero or more Observers notified of its lifecycle. EvaluateAll
// runs every condition concurrently and reduces their results into an ordered
// error list the owning scheduler uses to admit or reject the task.
package gate

import (
	"context"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

// Task is the contract the gate core requires from a schedulable unit of work.
// The core only reads terminal state and requests cancellation; creation,
// dependency execution, and finish semantics belong to the owning scheduler.
type Task interface {
	// ID returns the task's unique identifier.
	ID() string

	// Name returns the task's human-readable name.
	Name() string

	// IsCancelled reports whether cancellation has been requested.
	IsCancelled() bool

	// IsFinished reports whether the task reached its terminal state.
	IsFinished() bool

	// CancelWithError requests cancellation, recording err as the cause.
	CancelWithError(err *taskerrors.ErrorValue)
}

// Condition is a declarative precondition gating a task's execution.
//
// Evaluate may block arbitrarily long; the evaluator runs conditions on
// their own goroutines and places no per-condition timeout on them.
type Condition interface {
	// Name identifies the condition in diagnostics and error metadata.
	Name() string

	// IsMutuallyExclusive reports whether the owning scheduler must admit at
	// most one ready task carrying this condition's exclusivity class at a
	// time. The class is keyed by Name. Enforcement lives in the scheduler;
	// the flag is purely declarative metadata.
	IsMutuallyExclusive() bool

	// DependencyForTask returns a prerequisite task the scheduler must run
	// ahead of t, or nil when the condition needs none.
	DependencyForTask(t Task) Task

	// Evaluate returns the condition's verdict for t. It must complete
	// exactly once per call; returning is the completion signal.
	Evaluate(ctx context.Context, t Task) Result
}

// Observer is notified of a task's lifecycle events. The owning scheduler
// must invoke every registered observer at each event regardless of outcome.
type Observer interface {
	// TaskDidStart fires when t begins executing.
	TaskDidStart(t Task)

	// TaskDidProduce fires when t (or one of its conditions) contributes a
	// new task to the scheduler.
	TaskDidProduce(t Task, produced Task)

	// TaskDidFinish fires when t reaches terminal state, carrying every
	// error accumulated along the way.
	TaskDidFinish(t Task, errs []*taskerrors.ErrorValue)
}
