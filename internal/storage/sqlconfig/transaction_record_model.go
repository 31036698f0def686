package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionRecord is one line of a flushed transaction file, sentinel included.
type TransactionRecord struct {
	BatchID       uuid.UUID       `db:"batch_id"`
	LineNo        int             `db:"line_no"`
	Code          int             `db:"code"`
	HolderName    string          `db:"holder_name"`
	AccountNumber int             `db:"account_number"`
	Amount        decimal.Decimal `db:"amount"`
	Extra         string          `db:"extra"`
	Raw           string          `db:"raw"`
	FlushedAt     time.Time       `db:"flushed_at"`
}

// ITransactionRecordsTable defines the storage operations for flushed transaction files.
//
//go:generate mockery --name ITransactionRecordsTable --inpackage --with-expecter
type ITransactionRecordsTable interface {
	// Replace drops every stored record and stores records in their place.
	Replace(ctx context.Context, records []TransactionRecord) error
	// Append stores records next to the ones already there.
	Append(ctx context.Context, records []TransactionRecord) error
	// List returns every stored record, oldest batch first, in line order.
	List(ctx context.Context) ([]TransactionRecord, error)
}
