package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/storage/account"
)

// Code is the two-digit operation code that leads every record.
type Code int

const (
	CodeEnd Code = iota
	CodeWithdraw
	CodeTransfer
	CodePayBill
	CodeDeposit
	CodeCreate
	CodeDelete
	CodeDisable
	CodeChangePlan
)

func (c Code) String() string {
	switch c {
	case CodeEnd:
		return "end"
	case CodeWithdraw:
		return "withdraw"
	case CodeTransfer:
		return "transfer"
	case CodePayBill:
		return "paybill"
	case CodeDeposit:
		return "deposit"
	case CodeCreate:
		return "create"
	case CodeDelete:
		return "delete"
	case CodeDisable:
		return "disable"
	case CodeChangePlan:
		return "changeplan"
	default:
		return "unknown"
	}
}

// Transaction represents one record of the daily transaction file. Records are never
// modified after creation.
type Transaction struct {
	Code          Code
	HolderName    string
	AccountNumber account.Number
	Amount        decimal.Decimal
	// Extra is the payee code, the destination account or the new plan letter.
	Extra string
}

// Sentinel is the end-of-data record written after every flushed batch.
func Sentinel() Transaction {
	return Transaction{Code: CodeEnd}
}
