package account

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
)

// validateHolderName accepts names that fill at most the holder field, which is measured in
// bytes so every record keeps its fixed width.
func validateHolderName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > MaxHolderNameLength {
		return bankerr.Reject(bankerr.ErrInvalidInput, "Name cannot be empty or longer than 20 characters!")
	}
	if len(name) > MaxHolderNameLength {
		return bankerr.Reject(bankerr.ErrInvalidInput, fmt.Sprintf("Name cannot be longer than %d bytes!", MaxHolderNameLength))
	}
	return nil
}

// Create adds a new Active, Standard-plan account under the next unused number.
func (l *Ledger) Create(holderName string, initialBalance decimal.Decimal) (Account, error) {
	if err := validateHolderName(holderName); err != nil {
		return Account{}, err
	}
	switch {
	case initialBalance.IsNegative():
		return Account{}, bankerr.Reject(bankerr.ErrInvalidInput, "Balance cannot be negative!")
	case initialBalance.GreaterThan(MaxBalance):
		return Account{}, bankerr.Reject(bankerr.ErrInvalidInput, "Balance cannot exceed $"+MaxBalance.StringFixed(2)+"!")
	case !WholeCents(initialBalance):
		return Account{}, bankerr.Reject(bankerr.ErrInvalidInput, "Balance must be in whole cents!")
	}

	for {
		if l.next > MaxNumber {
			return Account{}, fmt.Errorf("next number %v: %w", l.next, bankerr.Reject(bankerr.ErrInvalidState, "No account numbers left!"))
		}
		if _, taken := l.accounts[l.next]; !taken {
			break
		}
		l.next++
	}

	a := &Account{
		Number:     l.next,
		HolderName: holderName,
		Balance:    initialBalance,
		Status:     StatusActive,
		Plan:       PlanStandard,
	}
	l.insert(a)
	l.next++
	return *a, nil
}

func (l *Ledger) Disable(n Number) error {
	a, err := l.find(n)
	if err != nil {
		return err
	}
	if a.Status == StatusDisabled {
		return fmt.Errorf("account %v already disabled: %w", n, bankerr.ErrInvalidState)
	}
	a.Status = StatusDisabled
	return nil
}

// Delete removes the account entirely. Its number is not reused.
func (l *Ledger) Delete(n Number) error {
	if _, err := l.find(n); err != nil {
		return err
	}
	l.remove(n)
	return nil
}

// AdjustBalance applies a signed delta. It does no bounds checking; callers validate
// sufficiency before debiting.
func (l *Ledger) AdjustBalance(n Number, delta decimal.Decimal) (Account, error) {
	a, err := l.find(n)
	if err != nil {
		return Account{}, err
	}
	a.Balance = a.Balance.Add(delta)
	return *a, nil
}

func (l *Ledger) ChangePlan(n Number, plan Plan) error {
	a, err := l.find(n)
	if err != nil {
		return err
	}
	a.Plan = plan
	return nil
}
