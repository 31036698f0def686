package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

// Payees maps the accepted payee codes to the company they stand for.
var Payees = map[string]string{
	"EC": "The Bright Light Electric Company",
	"CQ": "Credit Card Company Q",
	"FI": "Fast Internet, Inc.",
}

type PayBill struct {
	HolderName string
	Account    account.Number
	Payee      string
	Amount     decimal.Decimal

	// Balance is the account balance after a successful debit.
	Balance decimal.Decimal
}

func (p *PayBill) Name() string { return "PayBill" }

func (p *PayBill) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireLogin(env); err != nil {
		return nil, err
	}
	holder, err := actingHolder(env, p.HolderName)
	if err != nil {
		return nil, err
	}
	payee := strings.ToUpper(strings.TrimSpace(p.Payee))
	if _, ok := Payees[payee]; !ok {
		return nil, fmt.Errorf("payee %q: %w", p.Payee, bankerr.Reject(bankerr.ErrInvalidInput, "Invalid payee code!"))
	}
	if err := validateAmount(p.Amount, "Bill amount must be positive!"); err != nil {
		return nil, err
	}
	if !env.Session.CanPayBill(p.Amount) {
		return nil, fmt.Errorf("paybill total %s: %w", env.Session.Totals().PayBill.StringFixed(2),
			bankerr.Reject(bankerr.ErrLimitExceeded, "Session paybill limit exceeded ($2000)!"))
	}

	acct, err := ownedAccount(env, p.Account, holder, "You can only pay bills from your own account!")
	if err != nil {
		return nil, err
	}
	if err := requireActive(acct); err != nil {
		return nil, err
	}
	if err := requireFunds(acct, p.Amount); err != nil {
		return nil, err
	}

	updated, err := env.Ledger.AdjustBalance(p.Account, p.Amount.Neg())
	if err != nil {
		return nil, err
	}
	p.Balance = updated.Balance
	env.Session.RecordPayBill(p.Amount)

	return &transaction.Transaction{
		Code:          transaction.CodePayBill,
		HolderName:    holder,
		AccountNumber: p.Account,
		Amount:        p.Amount,
		Extra:         payee,
	}, nil
}
