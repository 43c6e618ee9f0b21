package engine

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/taskgate/internal/logger"
	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
	"github.com/alexisbeaulieu97/taskgate/pkg/gate"
)

// recorder tracks whether a task started executing and for how long, so the
// runner can tell rejection apart from runtime failure.
type recorder struct {
	mu        sync.Mutex
	started   bool
	startedAt time.Time
	duration  time.Duration
}

func (r *recorder) TaskDidStart(gate.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
	r.startedAt = time.Now()
}

func (r *recorder) TaskDidProduce(gate.Task, gate.Task) {}

func (r *recorder) TaskDidFinish(gate.Task, []*taskerrors.ErrorValue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		r.duration = time.Since(r.startedAt)
	}
}

func (r *recorder) wasStarted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

func (r *recorder) elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.duration
}

// logObserver writes every lifecycle event through the run's logger.
type logObserver struct {
	log *logger.Logger
}

func (o *logObserver) TaskDidStart(t gate.Task) {
	o.log.WithTask(t.ID(), t.Name()).Info("task started")
}

func (o *logObserver) TaskDidProduce(t gate.Task, produced gate.Task) {
	o.log.WithTask(t.ID(), t.Name()).
		WithFields(map[string]any{"produced": produced.Name()}).
		Info("task produced prerequisite")
}

func (o *logObserver) TaskDidFinish(t gate.Task, errs []*taskerrors.ErrorValue) {
	log := o.log.WithTask(t.ID(), t.Name())
	if len(errs) == 0 {
		log.Info("task finished")
		return
	}
	log.WithFields(map[string]any{"errors": len(errs)}).Error(errs[0], "task finished with errors")
}
