package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/operator/actions"
)

// Operator is the worker that owns the ledger, session and recorder and applies actions to
// them one at a time.
type Operator struct {
	env     *actions.Env
	logger  *logrus.Logger
	metrics *Metrics
	queue   chan ActionItem
	stopped chan struct{}
}

func NewOperator(env *actions.Env, logger *logrus.Logger, metrics *Metrics, queue chan ActionItem, stopped chan struct{}) *Operator {
	return &Operator{
		env:     env,
		logger:  logger,
		metrics: metrics,
		queue:   queue,
		stopped: stopped,
	}
}

// Run listens to the queue and processes items. Exits when stopped is closed.
func (o *Operator) Run() {
	for {
		select {
		case item := <-o.queue:
			o.processItem(item)
		case <-o.stopped:
			return
		}
	}
}

func (o *Operator) processItem(item ActionItem) {
	item.response <- ActionItemResponse{err: o.Execute(item.ctx, item.action)}
}

// Execute performs action against the operator's state and records the transaction it
// yields. It must only be called from the goroutine that owns the operator.
func (o *Operator) Execute(ctx context.Context, action actions.IAction) error {
	logData := logging.NewLogData(o.logger)
	logData.AddData("action", action.Name())
	o.addSessionData(logData)

	stopTiming := logData.AddTiming("durationMs")
	tx, err := action.Perform(ctx, o.env)
	stopTiming()

	o.metrics.ObserveOperation(action.Name(), err)
	if err != nil {
		logData.AddData("outcome", bankerr.Outcome(err))
		logData.Log().WithError(err).Warnf("Operator.%s.Error", action.Name())
		return err
	}

	if tx != nil {
		o.env.Recorder.Record(*tx)
		logData.AddData("code", tx.Code.String())
		logData.AddData("account", tx.AccountNumber.String())
	}
	o.metrics.SetPending(o.env.Recorder.Len())
	o.addSessionData(logData)
	logData.Log().Infof("Operator.%s.Complete", action.Name())
	return nil
}

func (o *Operator) addSessionData(logData *logging.LogData) {
	if !o.env.Session.IsLoggedIn() {
		return
	}
	logData.AddData("sessionID", o.env.Session.ID().String())
	logData.AddData("role", o.env.Session.Role().String())
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
