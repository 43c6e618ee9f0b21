package model

import (
	"time"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

const (
	// StatusSucceeded marks a task that executed and completed without error.
	StatusSucceeded = "succeeded"
	// StatusFailed marks a failure during task execution.
	StatusFailed = "failed"
	// StatusRejected indicates the task's conditions denied admission; its
	// primary work never ran.
	StatusRejected = "rejected"
	// StatusCancelled indicates the task was cancelled, by a timeout observer
	// or out of band.
	StatusCancelled = "cancelled"
)

// TaskResult captures the outcome of a single gated task.
type TaskResult struct {
	TaskID    string
	Name      string
	Status    string
	Message   string
	Errors    []*taskerrors.ErrorValue
	Duration  time.Duration
	Timestamp time.Time
}

// RunSummary aggregates the outcome of a whole pipeline run.
type RunSummary struct {
	Results   []TaskResult
	Succeeded int
	Failed    int
	Rejected  int
	Cancelled int
	Duration  time.Duration
}

// Failures reports how many tasks did not succeed.
func (s *RunSummary) Failures() int {
	return s.Failed + s.Rejected + s.Cancelled
}
