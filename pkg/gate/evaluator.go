package gate

import (
	"context"
	"sync"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

// EvaluateAll runs every condition for t concurrently and reduces the results
// into an ordered error list: one entry per failed condition, in input order,
// independent of completion order. If t is observed cancelled once all
// conditions have completed, a generic condition-failed error is appended —
// always, even when the list already carries specific failures, so an
// out-of-band cancellation during evaluation is never silent.
//
// An empty list means every condition passed and the task may proceed. The
// caller decides what a non-empty list means; EvaluateAll never cancels or
// finishes the task itself and holds no state across calls.
//
// Every condition must complete exactly once. A condition that never returns
// blocks the join forever; that is a contract violation by the condition, not
// something EvaluateAll defends against. Cancellation does not interrupt
// in-flight conditions: the context handed to them is the caller's, untouched.
func EvaluateAll(ctx context.Context, t Task, conditions []Condition) []*taskerrors.ErrorValue {
	// One slot per condition, written exactly once by its own goroutine.
	// The WaitGroup join orders every write before the read phase below.
	results := make([]Result, len(conditions))

	var wg sync.WaitGroup
	for i, condition := range conditions {
		wg.Add(1)
		go func(i int, condition Condition) {
			defer wg.Done()
			results[i] = condition.Evaluate(ctx, t)
		}(i, condition)
	}
	wg.Wait()

	var errs []*taskerrors.ErrorValue
	for _, result := range results {
		if err := result.Err(); err != nil {
			errs = append(errs, err)
		}
	}

	if t.IsCancelled() {
		errs = append(errs, taskerrors.NewConditionFailed(""))
	}

	return errs
}
