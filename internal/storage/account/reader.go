package account

import (
	"fmt"
	"strings"

	"github.com/carson-networks/atm-server/internal/bankerr"
)

// Lookup returns a copy of the account with the given number.
func (l *Ledger) Lookup(n Number) (Account, error) {
	a, err := l.find(n)
	if err != nil {
		return Account{}, err
	}
	return *a, nil
}

// LookupByHolder returns the first account, in insertion order, whose holder name matches
// name case-insensitively.
func (l *Ledger) LookupByHolder(name string) (Account, error) {
	for _, n := range l.order {
		a := l.accounts[n]
		if strings.EqualFold(a.HolderName, name) {
			return *a, nil
		}
	}
	return Account{}, fmt.Errorf("holder %q: %w", name, bankerr.ErrNotFound)
}

// List returns copies of every account in insertion order.
func (l *Ledger) List() []Account {
	out := make([]Account, 0, len(l.order))
	for _, n := range l.order {
		out = append(out, *l.accounts[n])
	}
	return out
}
