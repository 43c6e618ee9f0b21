package gate

import (
	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

// Result is the two-variant outcome of evaluating a single condition.
// The zero value is a failed result with no error; construct through
// Satisfied or Failed.
type Result struct {
	satisfied bool
	err       *taskerrors.ErrorValue
}

// Satisfied constructs a passing result.
func Satisfied() Result {
	return Result{satisfied: true}
}

// Failed constructs a failing result carrying err as the cause.
func Failed(err *taskerrors.ErrorValue) Result {
	return Result{err: err}
}

// IsSatisfied reports whether the condition passed.
func (r Result) IsSatisfied() bool {
	return r.satisfied
}

// Err returns the failure cause, or nil for a satisfied result.
func (r Result) Err() *taskerrors.ErrorValue {
	if r.satisfied {
		return nil
	}
	return r.err
}

// Equal compares two results. Satisfied equals only Satisfied; two failures
// are equal when their errors share domain and code, regardless of metadata.
func (r Result) Equal(other Result) bool {
	if r.satisfied != other.satisfied {
		return false
	}
	if r.satisfied {
		return true
	}
	return r.err.Equal(other.err)
}
