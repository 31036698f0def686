package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

// Transaction represents a buffered transaction record in the service layer.
type Transaction struct {
	// Line is the 1-based position the record will take in the flushed file.
	Line          int
	Code          transaction.Code
	HolderName    string
	AccountNumber account.Number
	Amount        decimal.Decimal
	Extra         string
	// Raw is the fixed-width encoding that will be written.
	Raw string
}
