package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

type DeleteAccount struct {
	Account account.Number
}

func (d *DeleteAccount) Name() string { return "DeleteAccount" }

func (d *DeleteAccount) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireAdmin(env, "Only admins can delete accounts!"); err != nil {
		return nil, err
	}
	acct, err := env.Ledger.Lookup(d.Account)
	if err != nil {
		return nil, err
	}
	if err := env.Ledger.Delete(d.Account); err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Code:          transaction.CodeDelete,
		HolderName:    acct.HolderName,
		AccountNumber: acct.Number,
		Amount:        decimal.Zero,
	}, nil
}

type DisableAccount struct {
	Account account.Number
}

func (d *DisableAccount) Name() string { return "DisableAccount" }

func (d *DisableAccount) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireAdmin(env, "Only admins can disable accounts!"); err != nil {
		return nil, err
	}
	acct, err := env.Ledger.Lookup(d.Account)
	if err != nil {
		return nil, err
	}
	if !acct.IsActive() {
		return nil, bankerr.Reject(bankerr.ErrInvalidState, "Account already disabled!")
	}
	if err := env.Ledger.Disable(d.Account); err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Code:          transaction.CodeDisable,
		HolderName:    acct.HolderName,
		AccountNumber: acct.Number,
		Amount:        decimal.Zero,
	}, nil
}

type ChangePlan struct {
	Account account.Number
	Plan    account.Plan
}

func (c *ChangePlan) Name() string { return "ChangePlan" }

func (c *ChangePlan) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireAdmin(env, "Only admins can change account plans!"); err != nil {
		return nil, err
	}
	if c.Plan != account.PlanStandard && c.Plan != account.PlanStudent {
		return nil, fmt.Errorf("plan %d: %w", c.Plan, bankerr.Reject(bankerr.ErrInvalidInput, "Invalid plan type!"))
	}
	acct, err := env.Ledger.Lookup(c.Account)
	if err != nil {
		return nil, err
	}
	if err := env.Ledger.ChangePlan(c.Account, c.Plan); err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Code:          transaction.CodeChangePlan,
		HolderName:    acct.HolderName,
		AccountNumber: acct.Number,
		Amount:        decimal.Zero,
		Extra:         c.Plan.Letter(),
	}, nil
}
