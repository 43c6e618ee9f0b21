package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultDomain is the namespace attached to error values constructed by this module.
const DefaultDomain = "taskgate"

// Code classifies a structured error value.
type Code int

const (
	// CodeConditionFailed marks a task rejected by one of its conditions, or a
	// task found cancelled once condition evaluation completed.
	CodeConditionFailed Code = iota + 1
	// CodeExecutionFailed marks a runtime failure, including timeout-driven
	// cancellation.
	CodeExecutionFailed
)

func (c Code) String() string {
	switch c {
	case CodeConditionFailed:
		return "condition failed"
	case CodeExecutionFailed:
		return "execution failed"
	default:
		return fmt.Sprintf("unknown code %d", int(c))
	}
}

// Metadata keys used across the module to annotate error values.
const (
	KeyCondition        = "condition"
	KeyNegatedCondition = "negatedCondition"
	KeyTimeout          = "timeout"
	KeyTask             = "task"
	KeyPath             = "path"
	KeyEnvVar           = "envVar"
	KeyCause            = "cause"
)

// ErrorValue is a structured error carrying a namespace, a classification code,
// and optional diagnostic metadata. Two error values are considered equal when
// their domain and code match; metadata never participates in equality.
type ErrorValue struct {
	Domain   string
	Code     Code
	Metadata map[string]any
}

// NewConditionFailed constructs a condition-failure error. An empty condition
// name produces the generic variant used when a task is found cancelled after
// its conditions completed.
func NewConditionFailed(condition string) *ErrorValue {
	e := &ErrorValue{Domain: DefaultDomain, Code: CodeConditionFailed}
	if condition != "" {
		e.WithMetadata(KeyCondition, condition)
	}
	return e
}

// NewExecutionFailed constructs a runtime-failure error.
func NewExecutionFailed() *ErrorValue {
	return &ErrorValue{Domain: DefaultDomain, Code: CodeExecutionFailed}
}

// WithMetadata records a diagnostic key/value pair and returns the receiver so
// constructors can be chained.
func (e *ErrorValue) WithMetadata(key string, value any) *ErrorValue {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any, 1)
	}
	e.Metadata[key] = value
	return e
}

func (e *ErrorValue) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Metadata) == 0 {
		return fmt.Sprintf("%s: %s", e.Domain, e.Code)
	}

	pairs := make([]string, 0, len(e.Metadata))
	for key, value := range e.Metadata {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}
	sort.Strings(pairs)

	return fmt.Sprintf("%s: %s (%s)", e.Domain, e.Code, strings.Join(pairs, ", "))
}

// Equal reports whether two error values share the same domain and code.
func (e *ErrorValue) Equal(other *ErrorValue) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Domain == other.Domain && e.Code == other.Code
}

// Is lets errors.Is treat error values with matching domain and code as the
// same error.
func (e *ErrorValue) Is(target error) bool {
	other, ok := target.(*ErrorValue)
	if !ok {
		return false
	}
	return e.Equal(other)
}
