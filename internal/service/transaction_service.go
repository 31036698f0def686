package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/atm-server/internal/operator/actions"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

// TransactionService reads the records buffered for the next flush.
type TransactionService struct {
	processor IProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(processor IProcessor) *TransactionService {
	return &TransactionService{processor: processor}
}

// ListPending returns the current session's records in the order they will be written.
func (s *TransactionService) ListPending(ctx context.Context) ([]Transaction, error) {
	view := &actions.ListPending{}
	if err := s.processor.Process(ctx, view); err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(view.Records))
	for i, tx := range view.Records {
		raw, err := transaction.Encode(tx)
		if err != nil {
			return nil, fmt.Errorf("encode pending record %d: %w", i+1, err)
		}
		converted[i] = Transaction{
			Line:          i + 1,
			Code:          tx.Code,
			HolderName:    tx.HolderName,
			AccountNumber: tx.AccountNumber,
			Amount:        tx.Amount,
			Extra:         tx.Extra,
			Raw:           raw,
		}
	}
	return converted, nil
}
