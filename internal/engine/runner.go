// Package engine maps a pipeline document onto gated queue tasks and runs it.
package engine

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/taskgate/internal/conditions"
	"github.com/alexisbeaulieu97/taskgate/internal/config"
	"github.com/alexisbeaulieu97/taskgate/internal/logger"
	"github.com/alexisbeaulieu97/taskgate/internal/model"
	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
	"github.com/alexisbeaulieu97/taskgate/pkg/queue"
)

// Runner executes pipeline documents.
type Runner struct {
	log *logger.Logger
}

// NewRunner creates a runner logging through log.
func NewRunner(log *logger.Logger) *Runner {
	return &Runner{log: log}
}

type entry struct {
	spec config.TaskSpec
	task *queue.Task
	rec  *recorder
}

// Run builds every task the config describes, schedules them, waits for the
// run to drain, and reports results in config order.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*model.RunSummary, error) {
	start := time.Now()

	entries, err := r.buildEntries(cfg)
	if err != nil {
		return nil, err
	}

	q := queue.New()
	for _, e := range entries {
		q.Add(ctx, e.task)
	}
	q.Wait()

	summary := &model.RunSummary{Results: make([]model.TaskResult, 0, len(entries))}
	for _, e := range entries {
		result := resultFor(e)
		summary.Results = append(summary.Results, result)

		switch result.Status {
		case model.StatusSucceeded:
			summary.Succeeded++
		case model.StatusFailed:
			summary.Failed++
		case model.StatusRejected:
			summary.Rejected++
		case model.StatusCancelled:
			summary.Cancelled++
		}
	}
	summary.Duration = time.Since(start)

	return summary, nil
}

func (r *Runner) buildEntries(cfg *config.Config) ([]*entry, error) {
	entries := make([]*entry, 0, len(cfg.Tasks))
	byID := make(map[string]*queue.Task, len(cfg.Tasks))

	for _, spec := range cfg.Tasks {
		t := queue.NewTask(spec.DisplayName(), commandRun(spec.Command))
		rec := &recorder{}

		if err := t.AddObserver(rec); err != nil {
			return nil, err
		}
		if err := t.AddObserver(&logObserver{log: r.log}); err != nil {
			return nil, err
		}

		for _, cs := range spec.Conditions {
			condition, err := conditions.Build(cs)
			if err != nil {
				return nil, fmt.Errorf("task %q: %w", spec.ID, err)
			}
			if err := t.AddCondition(condition); err != nil {
				return nil, err
			}
		}

		timeout := spec.Timeout
		if timeout == 0 {
			timeout = cfg.Settings.Timeout
		}
		if timeout > 0 {
			observer := gate.NewTimeoutObserver(time.Duration(timeout) * time.Second)
			if err := t.AddObserver(observer); err != nil {
				return nil, err
			}
		}

		byID[spec.ID] = t
		entries = append(entries, &entry{spec: spec, task: t, rec: rec})
	}

	for _, e := range entries {
		for _, dep := range e.spec.DependsOn {
			if err := e.task.AddDependency(byID[dep]); err != nil {
				return nil, err
			}
		}
	}

	return entries, nil
}

// commandRun wraps a shell command as a task's primary work.
func commandRun(command string) queue.RunFunc {
	return func(ctx context.Context) error {
		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		output, err := cmd.CombinedOutput()
		if err != nil {
			if msg := strings.TrimSpace(string(output)); msg != "" {
				return fmt.Errorf("%s: %w", msg, err)
			}
			return err
		}
		return nil
	}
}

func resultFor(e *entry) model.TaskResult {
	errs := e.task.Errors()

	status := model.StatusSucceeded
	message := "completed"
	switch {
	case len(errs) == 0:
	case e.task.IsCancelled():
		status = model.StatusCancelled
		message = "cancelled"
		if hasTimeoutError(errs) {
			message = "timeout exceeded"
		}
	case !e.rec.wasStarted():
		status = model.StatusRejected
		message = "conditions not met"
	default:
		status = model.StatusFailed
		message = errs[0].Error()
	}

	return model.TaskResult{
		TaskID:    e.spec.ID,
		Name:      e.spec.DisplayName(),
		Status:    status,
		Message:   message,
		Errors:    errs,
		Duration:  e.rec.elapsed(),
		Timestamp: time.Now(),
	}
}

func hasTimeoutError(errs []*taskerrors.ErrorValue) bool {
	for _, err := range errs {
		if err.Code != taskerrors.CodeExecutionFailed {
			continue
		}
		if _, ok := err.Metadata[taskerrors.KeyTimeout]; ok {
			return true
		}
	}
	return false
}
