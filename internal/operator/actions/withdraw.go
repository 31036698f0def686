package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

type Withdraw struct {
	// HolderName is only read for admin sessions.
	HolderName string
	Account    account.Number
	Amount     decimal.Decimal

	// Balance is the account balance after a successful debit.
	Balance decimal.Decimal
}

func (w *Withdraw) Name() string { return "Withdraw" }

func (w *Withdraw) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireLogin(env); err != nil {
		return nil, err
	}
	holder, err := actingHolder(env, w.HolderName)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(w.Amount, "Amount must be positive!"); err != nil {
		return nil, err
	}
	if !env.Session.CanWithdraw(w.Amount) {
		return nil, fmt.Errorf("withdraw total %s: %w", env.Session.Totals().Withdraw.StringFixed(2),
			bankerr.Reject(bankerr.ErrLimitExceeded, "Withdrawal limit exceeded!"))
	}

	acct, err := ownedAccount(env, w.Account, holder, "You can only withdraw from your own account!")
	if err != nil {
		return nil, err
	}
	if err := requireActive(acct); err != nil {
		return nil, err
	}
	if err := requireFunds(acct, w.Amount); err != nil {
		return nil, err
	}

	updated, err := env.Ledger.AdjustBalance(w.Account, w.Amount.Neg())
	if err != nil {
		return nil, err
	}
	w.Balance = updated.Balance
	env.Session.RecordWithdraw(w.Amount)

	return &transaction.Transaction{
		Code:          transaction.CodeWithdraw,
		HolderName:    holder,
		AccountNumber: w.Account,
		Amount:        w.Amount,
	}, nil
}
