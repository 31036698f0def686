package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/operator/actions"
	"github.com/carson-networks/atm-server/internal/storage/account"
)

const defaultAccountLimit = 20

// AccountService reads ledger snapshots through the operator.
type AccountService struct {
	processor IProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(processor IProcessor) *AccountService {
	return &AccountService{processor: processor}
}

func (s *AccountService) snapshot(ctx context.Context) (*actions.ListAccounts, error) {
	view := &actions.ListAccounts{}
	if err := s.processor.Process(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

// GetAccount retrieves an account by number.
func (s *AccountService) GetAccount(ctx context.Context, number account.Number) (*Account, error) {
	view, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range view.Accounts {
		if a.Number == number {
			converted := accountFromLedger(a)
			return &converted, nil
		}
	}
	return nil, fmt.Errorf("account %v: %w", number, bankerr.ErrNotFound)
}

// ListAccounts returns a page of accounts in ledger order using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	view, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	accounts := view.Accounts
	if offset >= len(accounts) {
		return nil, nil, nil
	}
	accounts = accounts[offset:]

	var nextCursor *AccountCursor
	if len(accounts) > limit {
		accounts = accounts[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(accounts))
	for i, a := range accounts {
		convertedAccounts[i] = accountFromLedger(a)
	}

	return convertedAccounts, nextCursor, nil
}

// GetSession reports who is logged in and the session's running totals.
func (s *AccountService) GetSession(ctx context.Context) (*Session, error) {
	view, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{
		LoggedIn: view.Session.LoggedIn,
		Role:     view.Session.Role,
		User:     view.Session.User,
		Totals:   view.Session.Totals,
	}, nil
}
