package transaction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/storage/account"
)

// Field widths of a record: CC HHHHHHHHHHHHHHHHHHHH NNNNN AAAAAAAA EE
const (
	codeWidth    = 2
	holderWidth  = account.MaxHolderNameLength
	numberWidth  = 5
	amountWidth  = 8
	extraWidth   = 2
	RecordLength = codeWidth + 1 + holderWidth + 1 + numberWidth + 1 + amountWidth + 1 + extraWidth
)

// MaxAmount is the largest absolute amount the amount field can carry.
var MaxAmount = decimal.RequireFromString("99999.99")

var (
	ErrFieldOverflow = errors.New("value does not fit record field")
	ErrMalformed     = errors.New("malformed transaction record")
)

// Encode renders tx as one fixed-width record of RecordLength bytes, without the trailing
// newline. Holder and extra are truncated to their byte widths; code, account number and
// amount must fit.
func Encode(tx Transaction) (string, error) {
	if tx.Code < 0 || tx.Code > 99 {
		return "", fmt.Errorf("code %d: %w", tx.Code, ErrFieldOverflow)
	}
	if tx.AccountNumber < 0 || tx.AccountNumber > account.MaxNumber {
		return "", fmt.Errorf("account number %d: %w", tx.AccountNumber, ErrFieldOverflow)
	}
	amount := tx.Amount.Abs().Round(2)
	if amount.GreaterThan(MaxAmount) {
		return "", fmt.Errorf("amount %s: %w", amount.StringFixed(2), ErrFieldOverflow)
	}

	var b strings.Builder
	b.Grow(RecordLength)
	fmt.Fprintf(&b, "%02d ", int(tx.Code))
	b.WriteString(account.FitField(tx.HolderName, holderWidth))
	fmt.Fprintf(&b, " %05d ", int(tx.AccountNumber))
	b.WriteString(padAmount(amount))
	b.WriteByte(' ')
	b.WriteString(account.FitField(tx.Extra, extraWidth))
	return b.String(), nil
}

// Decode parses one record produced by Encode. Trailing line terminators are ignored.
func Decode(line string) (Transaction, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) != RecordLength {
		return Transaction{}, fmt.Errorf("record length %d, want %d: %w", len(line), RecordLength, ErrMalformed)
	}
	if line[2] != ' ' || line[23] != ' ' || line[29] != ' ' || line[38] != ' ' {
		return Transaction{}, fmt.Errorf("field separators: %w", ErrMalformed)
	}

	code, err := strconv.Atoi(line[0:2])
	if err != nil {
		return Transaction{}, fmt.Errorf("code %q: %w", line[0:2], ErrMalformed)
	}
	number, err := strconv.Atoi(line[24:29])
	if err != nil || number < 0 {
		return Transaction{}, fmt.Errorf("account number %q: %w", line[24:29], ErrMalformed)
	}
	amount, err := decimal.NewFromString(line[30:38])
	if err != nil || amount.IsNegative() {
		return Transaction{}, fmt.Errorf("amount %q: %w", line[30:38], ErrMalformed)
	}

	return Transaction{
		Code:          Code(code),
		HolderName:    strings.TrimRight(line[3:23], " "),
		AccountNumber: account.Number(number),
		Amount:        amount,
		Extra:         strings.TrimRight(line[39:41], " "),
	}, nil
}

func padAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	if len(s) < amountWidth {
		s = strings.Repeat("0", amountWidth-len(s)) + s
	}
	return s
}
