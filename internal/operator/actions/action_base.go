package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

// Env is the state every action runs against. Only the operator's worker touches it.
type Env struct {
	Ledger   *account.Ledger
	Session  *session.Session
	Recorder *transaction.Recorder
}

// IAction is one operator command with already parsed, typed arguments. Perform either
// fails without changing anything, or applies its change and returns the transaction to
// record (nil for commands that produce no record).
type IAction interface {
	Name() string
	Perform(ctx context.Context, env *Env) (*transaction.Transaction, error)
}

func requireLogin(env *Env) error {
	if !env.Session.IsLoggedIn() {
		return bankerr.ErrNotAuthenticated
	}
	return nil
}

// requireAdmin rejects standard sessions with denied, e.g. "Only admins can delete accounts!".
func requireAdmin(env *Env, denied string) error {
	if err := requireLogin(env); err != nil {
		return err
	}
	if !env.Session.IsAdmin() {
		return bankerr.Reject(bankerr.ErrAuthorizationDenied, denied)
	}
	return nil
}

// actingHolder is the holder name an operation runs as: the bound user of a standard
// session, or the name an admin supplied.
func actingHolder(env *Env, supplied string) (string, error) {
	if !env.Session.IsAdmin() {
		return env.Session.CurrentUser(), nil
	}
	supplied = strings.TrimSpace(supplied)
	if supplied == "" {
		return "", bankerr.Reject(bankerr.ErrInvalidInput, "Account holder name cannot be empty!")
	}
	return supplied, nil
}

// validateAmount accepts positive amounts in whole cents that fit the record amount field.
// notPositive is the message for zero and negative amounts.
func validateAmount(amount decimal.Decimal, notPositive string) error {
	if !amount.IsPositive() {
		return bankerr.Reject(bankerr.ErrInvalidInput, notPositive)
	}
	if amount.GreaterThan(transaction.MaxAmount) {
		return bankerr.Reject(bankerr.ErrInvalidInput, "Amount cannot exceed $"+transaction.MaxAmount.StringFixed(2)+"!")
	}
	if !account.WholeCents(amount) {
		return bankerr.Reject(bankerr.ErrInvalidInput, "Amount must be in whole cents!")
	}
	return nil
}

// ownedAccount looks the account up and, for standard sessions, checks that holder owns it.
// notOwner is the message for a standard user touching someone else's account.
func ownedAccount(env *Env, n account.Number, holder, notOwner string) (account.Account, error) {
	acct, err := env.Ledger.Lookup(n)
	if err != nil {
		return account.Account{}, err
	}
	if !env.Session.IsAdmin() && !acct.MatchesOwner(holder) {
		return account.Account{}, fmt.Errorf("account %v, holder %q: %w", n, holder, bankerr.Reject(bankerr.ErrAuthorizationDenied, notOwner))
	}
	return acct, nil
}

func requireActive(acct account.Account) error {
	if !acct.IsActive() {
		return bankerr.Reject(bankerr.ErrInvalidState, fmt.Sprintf("Account %v is disabled!", acct.Number))
	}
	return nil
}

func requireFunds(acct account.Account, amount decimal.Decimal) error {
	if acct.Balance.LessThan(amount) {
		return fmt.Errorf("account %v balance %s < %s: %w", acct.Number, acct.Balance.StringFixed(2), amount.StringFixed(2), bankerr.ErrInsufficientFunds)
	}
	return nil
}
