package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

type ViewBalance struct {
	HolderName string
	Account    account.Number

	Balance decimal.Decimal
}

func (v *ViewBalance) Name() string { return "ViewBalance" }

func (v *ViewBalance) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	if err := requireLogin(env); err != nil {
		return nil, err
	}
	holder, err := actingHolder(env, v.HolderName)
	if err != nil {
		return nil, err
	}
	acct, err := ownedAccount(env, v.Account, holder, "You can only view your own account balance!")
	if err != nil {
		return nil, err
	}
	v.Balance = acct.Balance
	return nil, nil
}

// SessionState snapshots the session for read-only views.
type SessionState struct {
	LoggedIn bool
	Role     session.Role
	User     string
	Totals   session.Totals
}

// ListAccounts is a read-only view of the ledger and session. It needs no login.
type ListAccounts struct {
	Accounts []account.Account
	Session  SessionState
}

func (l *ListAccounts) Name() string { return "ListAccounts" }

func (l *ListAccounts) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	l.Accounts = env.Ledger.List()
	l.Session = SessionState{
		LoggedIn: env.Session.IsLoggedIn(),
		Role:     env.Session.Role(),
		User:     env.Session.CurrentUser(),
		Totals:   env.Session.Totals(),
	}
	return nil, nil
}

// ListPending is a read-only view of the records buffered for the next flush.
type ListPending struct {
	Records []transaction.Transaction
}

func (l *ListPending) Name() string { return "ListPending" }

func (l *ListPending) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	l.Records = env.Recorder.Pending()
	return nil, nil
}
