package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/operator/actions"
)

var ErrStopped = errors.New("operator stopped")

// OperatorDelegator owns the queue and the single Operator that drains it. Every caller,
// the shell and the HTTP view alike, goes through Process, so actions never interleave.
type OperatorDelegator struct {
	operator *Operator
	queue    chan ActionItem
	stopped  chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(env *actions.Env, logger *logrus.Logger, metrics *Metrics) *OperatorDelegator {
	queue := make(chan ActionItem, 64)
	stopped := make(chan struct{})
	return &OperatorDelegator{
		operator: NewOperator(env, logger, metrics, queue, stopped),
		queue:    queue,
		stopped:  stopped,
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.operator.Run()
	}()
}

// Stop ends the worker. Items still queued are answered with ErrStopped.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopped)
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-d.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-d.stopped:
		// The worker may have answered just before stopping.
		select {
		case resp := <-respCh:
			return resp.err
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}
