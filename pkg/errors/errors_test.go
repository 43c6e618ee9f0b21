package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorValueEqualityIgnoresMetadata(t *testing.T) {
	t.Parallel()

	a := NewConditionFailed("EnvSet")
	b := NewConditionFailed("FilePresent").WithMetadata(KeyPath, "/tmp")

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
}

func TestErrorValueEqualityDistinguishesCodes(t *testing.T) {
	t.Parallel()

	a := NewConditionFailed("EnvSet")
	b := NewExecutionFailed()

	require.False(t, a.Equal(b))
}

func TestErrorValueEqualityDistinguishesDomains(t *testing.T) {
	t.Parallel()

	a := NewConditionFailed("")
	b := NewConditionFailed("")
	b.Domain = "other"

	require.False(t, a.Equal(b))
}

func TestErrorValueIsSupportsErrorsIs(t *testing.T) {
	t.Parallel()

	var err error = NewExecutionFailed().WithMetadata(KeyTask, "build")

	require.True(t, stderrors.Is(err, NewExecutionFailed()))
	require.False(t, stderrors.Is(err, NewConditionFailed("")))
	require.False(t, stderrors.Is(err, stderrors.New("plain")))
}

func TestErrorValueMessageIncludesSortedMetadata(t *testing.T) {
	t.Parallel()

	err := NewConditionFailed("EnvSet").WithMetadata(KeyEnvVar, "HOME")

	require.Equal(t, "taskgate: condition failed (condition=EnvSet, envVar=HOME)", err.Error())
}

func TestErrorValueMessageWithoutMetadata(t *testing.T) {
	t.Parallel()

	require.Equal(t, "taskgate: condition failed", NewConditionFailed("").Error())
	require.Equal(t, "taskgate: execution failed", NewExecutionFailed().Error())
}

func TestGenericConditionFailedCarriesNoConditionKey(t *testing.T) {
	t.Parallel()

	err := NewConditionFailed("")
	_, ok := err.Metadata[KeyCondition]
	require.False(t, ok)
}

func TestValidationErrorFormatting(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tasks[0].id", "duplicate task id", nil)
	require.Equal(t, "validation error: tasks[0].id: duplicate task id", err.Error())
}

func TestParseErrorIncludesLine(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("yaml: line 3: mapping values are not allowed")
	err := NewParseError("pipeline.yaml", 3, cause)

	require.Contains(t, err.Error(), "pipeline.yaml:3")
	require.ErrorIs(t, err, cause)
}
