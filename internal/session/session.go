// Package session tracks the operator's login state and per-session spending caps.
package session

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
)

type Role int8

const (
	RoleStandard Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "standard"
}

// ParseRole accepts "admin" or "standard", case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "standard":
		return RoleStandard, nil
	default:
		return 0, fmt.Errorf("mode %q: %w", s, bankerr.ErrInvalidInput)
	}
}

// Session caps for standard users. They apply per login, across all accounts.
var (
	WithdrawLimit = decimal.RequireFromString("500.00")
	TransferLimit = decimal.RequireFromString("1000.00")
	PayBillLimit  = decimal.RequireFromString("2000.00")
)

// Totals is a snapshot of the amounts moved so far in the current session.
type Totals struct {
	Withdraw decimal.Decimal
	Transfer decimal.Decimal
	PayBill  decimal.Decimal
}

// Session is the single operator session. The zero value is logged out.
type Session struct {
	loggedIn bool
	role     Role
	user     string
	id       uuid.UUID
	totals   Totals
}

func New() *Session {
	return &Session{}
}

// Login starts a session. Standard sessions are bound to user; admin sessions may pass an
// empty user.
func (s *Session) Login(role Role, user string) error {
	if s.loggedIn {
		return bankerr.ErrAlreadyLoggedIn
	}
	user = strings.TrimSpace(user)
	if role == RoleStandard && user == "" {
		return bankerr.Reject(bankerr.ErrInvalidInput, "Username cannot be empty!")
	}

	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("session id: %w", err)
	}

	s.loggedIn = true
	s.role = role
	s.user = user
	s.id = id
	s.totals = Totals{}
	return nil
}

func (s *Session) Logout() error {
	if !s.loggedIn {
		return bankerr.Reject(bankerr.ErrNotAuthenticated, "No user currently logged in!")
	}
	*s = Session{}
	return nil
}

func (s *Session) IsLoggedIn() bool {
	return s.loggedIn
}

func (s *Session) IsAdmin() bool {
	return s.loggedIn && s.role == RoleAdmin
}

func (s *Session) Role() Role {
	return s.role
}

// CurrentUser is the holder name bound to a standard session.
func (s *Session) CurrentUser() string {
	return s.user
}

// ID identifies the current login for log correlation. It is uuid.Nil when logged out.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Totals returns a copy of the running totals.
func (s *Session) Totals() Totals {
	return s.totals
}

func (s *Session) CanWithdraw(amount decimal.Decimal) bool {
	return s.within(s.totals.Withdraw, amount, WithdrawLimit)
}

func (s *Session) CanTransfer(amount decimal.Decimal) bool {
	return s.within(s.totals.Transfer, amount, TransferLimit)
}

func (s *Session) CanPayBill(amount decimal.Decimal) bool {
	return s.within(s.totals.PayBill, amount, PayBillLimit)
}

func (s *Session) within(total, amount, limit decimal.Decimal) bool {
	if s.IsAdmin() {
		return true
	}
	return total.Add(amount).LessThanOrEqual(limit)
}

// RecordWithdraw adds amount to the withdraw total. Call it only after the ledger debit
// has been applied.
func (s *Session) RecordWithdraw(amount decimal.Decimal) {
	s.totals.Withdraw = s.totals.Withdraw.Add(amount)
}

func (s *Session) RecordTransfer(amount decimal.Decimal) {
	s.totals.Transfer = s.totals.Transfer.Add(amount)
}

func (s *Session) RecordPayBill(amount decimal.Decimal) {
	s.totals.PayBill = s.totals.PayBill.Add(amount)
}
