package account

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
)

const (
	// MaxNumber is the largest account number that fits the 5-digit field.
	MaxNumber Number = 99999
	// MaxHolderNameLength is the width in bytes of the holder field in every fixed-format file.
	MaxHolderNameLength = 20
)

// MaxBalance is the largest balance an account can be created with.
var MaxBalance = decimal.RequireFromString("99999.99")

// Number identifies an account. It renders zero-padded to five digits.
type Number int

func (n Number) String() string {
	return fmt.Sprintf("%05d", int(n))
}

// ParseNumber parses a 1 to 5 digit account number such as "00042" or "42".
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 5 {
		return 0, fmt.Errorf("account number %q: %w", s, bankerr.ErrInvalidInput)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("account number %q: %w", s, bankerr.ErrInvalidInput)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("account number %q: %w", s, bankerr.ErrInvalidInput)
	}
	return Number(n), nil
}

type Status int8

const (
	StatusActive Status = iota
	StatusDisabled
)

func (s Status) String() string {
	if s == StatusDisabled {
		return "disabled"
	}
	return "active"
}

// Letter is the status column used by the accounts file.
func (s Status) Letter() string {
	if s == StatusDisabled {
		return "D"
	}
	return "A"
}

type Plan int8

const (
	PlanStandard Plan = iota
	PlanStudent
)

func (p Plan) String() string {
	if p == PlanStudent {
		return "student"
	}
	return "standard"
}

// Letter is the plan code written to the extra field of a change-plan record.
func (p Plan) Letter() string {
	if p == PlanStudent {
		return "S"
	}
	return "N"
}

// ParsePlan accepts "S" (student) or "N" (non-student), case-insensitively.
func ParsePlan(letter string) (Plan, error) {
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "S":
		return PlanStudent, nil
	case "N":
		return PlanStandard, nil
	default:
		return 0, fmt.Errorf("plan %q: %w", letter, bankerr.ErrInvalidInput)
	}
}

// Account represents an account record. Values handed out by the Ledger are copies.
type Account struct {
	Number     Number
	HolderName string
	Balance    decimal.Decimal
	Status     Status
	Plan       Plan
}

func (a Account) IsActive() bool {
	return a.Status == StatusActive
}

// MatchesOwner compares holder names case-insensitively.
func (a Account) MatchesOwner(name string) bool {
	return strings.EqualFold(a.HolderName, name)
}

// SeedRecord is one account as supplied by the accounts file loader.
type SeedRecord struct {
	Number     Number
	HolderName string
	Balance    decimal.Decimal
	Status     Status
}

// WholeCents reports whether d has no more than two decimal places.
func WholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// FitField left-justifies s in a field width bytes wide. Longer values are cut at the last
// rune boundary that fits, so the field is always exactly width bytes of valid UTF-8.
func FitField(s string, width int) string {
	if len(s) > width {
		cut := width
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s + strings.Repeat(" ", width-len(s))
}
