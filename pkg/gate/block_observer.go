package gate

import (
	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

// BlockObserver adapts plain functions into an Observer. Nil handlers are
// skipped, so callers only wire the events they care about.
type BlockObserver struct {
	StartHandler   func(t Task)
	ProduceHandler func(t Task, produced Task)
	FinishHandler  func(t Task, errs []*taskerrors.ErrorValue)
}

func (o BlockObserver) TaskDidStart(t Task) {
	if o.StartHandler != nil {
		o.StartHandler(t)
	}
}

func (o BlockObserver) TaskDidProduce(t Task, produced Task) {
	if o.ProduceHandler != nil {
		o.ProduceHandler(t, produced)
	}
}

func (o BlockObserver) TaskDidFinish(t Task, errs []*taskerrors.ErrorValue) {
	if o.FinishHandler != nil {
		o.FinishHandler(t, errs)
	}
}
