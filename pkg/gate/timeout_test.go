package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

func TestTimeoutObserverCancelsOverdueTask(t *testing.T) {
	t.Parallel()

	timeout := 20 * time.Millisecond
	task := newFakeTask("slow")

	observer := NewTimeoutObserver(timeout)
	observer.TaskDidStart(task)

	require.Eventually(t, func() bool {
		return len(task.cancellations()) == 1
	}, time.Second, 5*time.Millisecond)

	cancellations := task.cancellations()
	require.Len(t, cancellations, 1)
	require.Equal(t, taskerrors.CodeExecutionFailed, cancellations[0].Code)
	require.Equal(t, timeout, cancellations[0].Metadata[taskerrors.KeyTimeout])
}

func TestTimeoutObserverIgnoresFinishedTask(t *testing.T) {
	t.Parallel()

	task := newFakeTask("quick")

	observer := NewTimeoutObserver(20 * time.Millisecond)
	observer.TaskDidStart(task)
	task.markFinished()

	time.Sleep(60 * time.Millisecond)
	require.Empty(t, task.cancellations())
}

func TestTimeoutObserverIgnoresAlreadyCancelledTask(t *testing.T) {
	t.Parallel()

	task := newFakeTask("gone")

	observer := NewTimeoutObserver(20 * time.Millisecond)
	observer.TaskDidStart(task)
	task.markCancelled()

	time.Sleep(60 * time.Millisecond)
	require.Empty(t, task.cancellations())
}

func TestTimeoutObserverStopsTimerOnFinish(t *testing.T) {
	t.Parallel()

	task := newFakeTask("done")

	observer := NewTimeoutObserver(30 * time.Millisecond)
	observer.TaskDidStart(task)
	task.markFinished()
	observer.TaskDidFinish(task, nil)

	time.Sleep(80 * time.Millisecond)
	require.Empty(t, task.cancellations())
}

func TestTimeoutObserverOtherEventsAreNoOps(t *testing.T) {
	t.Parallel()

	task := newFakeTask("t")

	observer := NewTimeoutObserver(10 * time.Millisecond)
	observer.TaskDidProduce(task, newFakeTask("produced"))
	observer.TaskDidFinish(task, nil)

	time.Sleep(40 * time.Millisecond)
	require.Empty(t, task.cancellations())
}
