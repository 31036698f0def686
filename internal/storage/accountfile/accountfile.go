// Package accountfile reads and writes the current accounts file:
//
//	NNNNN HHHHHHHHHHHHHHHHHHHH S BBBBBBBB
//
// number, holder name, status letter (A or D) and balance, one account per line, terminated
// by an END_OF_FILE line.
package accountfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/storage/account"
)

const (
	endMarker     = "END_OF_FILE"
	minLineLength = 30
)

// LoadFile opens path and parses it with Load. A missing file is reported with an error
// wrapping fs.ErrNotExist.
func LoadFile(path string) ([]account.SeedRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load parses accounts until a blank line, an END_OF_FILE line or the end of input. Lines
// too short to hold every column are skipped.
func Load(r io.Reader) ([]account.SeedRecord, error) {
	var records []account.SeedRecord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, endMarker) {
			break
		}
		if len(line) < minLineLength {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("accounts file line %d: %w", lineNo, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseLine(line string) (account.SeedRecord, error) {
	number, err := account.ParseNumber(line[0:5])
	if err != nil {
		return account.SeedRecord{}, err
	}

	status := account.StatusActive
	switch line[27] {
	case 'A':
	case 'D':
		status = account.StatusDisabled
	default:
		return account.SeedRecord{}, fmt.Errorf("status %q: %w", line[27], bankerr.ErrInvalidInput)
	}

	balance, err := decimal.NewFromString(strings.TrimSpace(line[29:]))
	if err != nil {
		return account.SeedRecord{}, fmt.Errorf("balance %q: %w", line[29:], bankerr.ErrInvalidInput)
	}

	return account.SeedRecord{
		Number:     number,
		HolderName: strings.TrimSpace(line[6:26]),
		Balance:    balance,
		Status:     status,
	}, nil
}

// Write renders accounts in the same format Load reads, followed by the END_OF_FILE line.
func Write(w io.Writer, accounts []account.Account) error {
	bw := bufio.NewWriter(w)
	for _, a := range accounts {
		if _, err := fmt.Fprintf(bw, "%v %s %s %s\n", a.Number, account.FitField(a.HolderName, account.MaxHolderNameLength), a.Status.Letter(), formatBalance(a.Balance)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, endMarker); err != nil {
		return err
	}
	return bw.Flush()
}

func formatBalance(b decimal.Decimal) string {
	s := b.Abs().StringFixed(2)
	if len(s) < 8 {
		s = strings.Repeat("0", 8-len(s)) + s
	}
	if b.IsNegative() {
		return "-" + s
	}
	return s
}
