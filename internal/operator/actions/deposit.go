package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

// Deposit records a deposit without crediting the balance. The funds become available in a
// later session, once the batch back end has applied the transaction file.
type Deposit struct {
	HolderName string
	Account    account.Number
	Amount     decimal.Decimal
}

func (d *Deposit) Name() string { return "Deposit" }

func (d *Deposit) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireLogin(env); err != nil {
		return nil, err
	}
	holder, err := actingHolder(env, d.HolderName)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(d.Amount, "Deposit amount must be positive!"); err != nil {
		return nil, err
	}

	acct, err := ownedAccount(env, d.Account, holder, "You can only deposit to your own account!")
	if err != nil {
		return nil, err
	}
	if err := requireActive(acct); err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Code:          transaction.CodeDeposit,
		HolderName:    holder,
		AccountNumber: d.Account,
		Amount:        d.Amount,
	}, nil
}
