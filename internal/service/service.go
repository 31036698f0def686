package service

import (
	"context"

	"github.com/carson-networks/atm-server/internal/operator/actions"
)

// IProcessor runs an action on the operator's worker. The read services only submit view
// actions, so they never change state.
//
//go:generate mockery --name IProcessor --inpackage --with-expecter
type IProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds the read-side services behind the HTTP view.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
}

// NewService creates a new Service on top of the given processor.
func NewService(processor IProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(processor),
		Account:     NewAccountService(processor),
	}
}
