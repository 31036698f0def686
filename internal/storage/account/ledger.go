package account

import (
	"fmt"

	"github.com/carson-networks/atm-server/internal/bankerr"
)

// Ledger is the in-memory set of accounts. It is not safe for concurrent use; the operator
// owns it and touches it from a single goroutine.
type Ledger struct {
	accounts map[Number]*Account
	order    []Number
	next     Number
}

func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[Number]*Account),
		next:     1,
	}
}

// Seed loads accounts supplied by the accounts file and returns the highest number seen.
// Sequential numbering continues above it. A failed seed leaves the ledger unchanged.
func (l *Ledger) Seed(records []SeedRecord) (Number, error) {
	seen := make(map[Number]struct{}, len(records))
	var highest Number
	for _, r := range records {
		if r.Number < 1 || r.Number > MaxNumber {
			return 0, fmt.Errorf("seed account %v: %w", r.Number, bankerr.ErrInvalidInput)
		}
		if _, dup := seen[r.Number]; dup {
			return 0, fmt.Errorf("seed account %v: duplicate number: %w", r.Number, bankerr.ErrInvalidInput)
		}
		if _, exists := l.accounts[r.Number]; exists {
			return 0, fmt.Errorf("seed account %v: already in ledger: %w", r.Number, bankerr.ErrInvalidInput)
		}
		seen[r.Number] = struct{}{}
		if r.Number > highest {
			highest = r.Number
		}
	}

	for _, r := range records {
		l.insert(&Account{
			Number:     r.Number,
			HolderName: r.HolderName,
			Balance:    r.Balance,
			Status:     r.Status,
			Plan:       PlanStandard,
		})
	}
	if highest >= l.next {
		l.next = highest + 1
	}
	return highest, nil
}

// Len returns the number of accounts currently held.
func (l *Ledger) Len() int {
	return len(l.order)
}

func (l *Ledger) insert(a *Account) {
	l.accounts[a.Number] = a
	l.order = append(l.order, a.Number)
}

func (l *Ledger) remove(n Number) {
	delete(l.accounts, n)
	for i, o := range l.order {
		if o == n {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}

func (l *Ledger) find(n Number) (*Account, error) {
	a, ok := l.accounts[n]
	if !ok {
		return nil, fmt.Errorf("account %v: %w", n, bankerr.ErrNotFound)
	}
	return a, nil
}
