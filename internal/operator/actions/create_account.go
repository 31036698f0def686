package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

type CreateAccount struct {
	HolderName     string
	InitialBalance decimal.Decimal

	// Created is filled in on success.
	Created account.Account
}

func (c *CreateAccount) Name() string { return "CreateAccount" }

func (c *CreateAccount) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireAdmin(env, "Only admins can create accounts!"); err != nil {
		return nil, err
	}

	created, err := env.Ledger.Create(c.HolderName, c.InitialBalance)
	if err != nil {
		return nil, err
	}
	c.Created = created

	return &transaction.Transaction{
		Code:          transaction.CodeCreate,
		HolderName:    created.HolderName,
		AccountNumber: created.Number,
		Amount:        created.Balance,
	}, nil
}
