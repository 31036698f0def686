package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

type Transfer struct {
	HolderName string
	From       account.Number
	To         account.Number
	Amount     decimal.Decimal
}

func (t *Transfer) Name() string { return "Transfer" }

func (t *Transfer) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireLogin(env); err != nil {
		return nil, err
	}
	holder, err := actingHolder(env, t.HolderName)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(t.Amount, "Amount must be positive!"); err != nil {
		return nil, err
	}
	if t.From == t.To {
		return nil, bankerr.Reject(bankerr.ErrInvalidInput, "Cannot transfer to the same account!")
	}
	if !env.Session.CanTransfer(t.Amount) {
		return nil, fmt.Errorf("transfer total %s: %w", env.Session.Totals().Transfer.StringFixed(2),
			bankerr.Reject(bankerr.ErrLimitExceeded, "Transfer limit exceeded!"))
	}

	from, err := ownedAccount(env, t.From, holder, "You can only transfer from your own account!")
	if err != nil {
		return nil, err
	}
	to, err := env.Ledger.Lookup(t.To)
	if err != nil {
		return nil, fmt.Errorf("destination %v: %w", t.To, bankerr.Reject(bankerr.ErrNotFound, "Destination account not found!"))
	}
	if err := requireActive(from); err != nil {
		return nil, err
	}
	if err := requireActive(to); err != nil {
		return nil, err
	}
	if err := requireFunds(from, t.Amount); err != nil {
		return nil, err
	}

	// Both accounts were looked up above, so neither adjustment can fail.
	if _, err := env.Ledger.AdjustBalance(t.From, t.Amount.Neg()); err != nil {
		return nil, err
	}
	if _, err := env.Ledger.AdjustBalance(t.To, t.Amount); err != nil {
		return nil, err
	}
	env.Session.RecordTransfer(t.Amount)

	return &transaction.Transaction{
		Code:          transaction.CodeTransfer,
		HolderName:    holder,
		AccountNumber: t.From,
		Amount:        t.Amount,
		Extra:         t.To.String(),
	}, nil
}
