package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	Number     account.Number
	HolderName string
	Balance    decimal.Decimal
	Status     account.Status
	Plan       account.Plan
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// Session is a snapshot of the terminal's login state.
type Session struct {
	LoggedIn bool
	Role     session.Role
	User     string
	Totals   session.Totals
}

func accountFromLedger(a account.Account) Account {
	return Account{
		Number:     a.Number,
		HolderName: a.HolderName,
		Balance:    a.Balance,
		Status:     a.Status,
		Plan:       a.Plan,
	}
}
