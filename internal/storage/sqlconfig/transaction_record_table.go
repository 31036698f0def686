package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionRecordsTable = "transaction_records"

var transactionRecordColumns = []string{
	"batch_id", "line_no", "code", "holder_name", "account_number", "amount", "extra", "raw", "flushed_at",
}

var _ ITransactionRecordsTable = (*TransactionRecordsTable)(nil)

type TransactionRecordsTable struct {
	db bob.DB
}

func NewTransactionRecordsTable(db *sql.DB) *TransactionRecordsTable {
	return &TransactionRecordsTable{db: bob.NewDB(db)}
}

func (t *TransactionRecordsTable) Replace(ctx context.Context, records []TransactionRecord) error {
	return t.inTx(ctx, func(tx bob.Tx) error {
		if _, err := bob.Exec(ctx, tx, psql.Delete(dm.From(transactionRecordsTable))); err != nil {
			return fmt.Errorf("delete previous records: %w", err)
		}
		return insertRecords(ctx, tx, records)
	})
}

func (t *TransactionRecordsTable) Append(ctx context.Context, records []TransactionRecord) error {
	return t.inTx(ctx, func(tx bob.Tx) error {
		return insertRecords(ctx, tx, records)
	})
}

func (t *TransactionRecordsTable) List(ctx context.Context) ([]TransactionRecord, error) {
	columns := make([]any, len(transactionRecordColumns))
	for i, c := range transactionRecordColumns {
		columns[i] = c
	}
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(transactionRecordsTable),
		sm.OrderBy("flushed_at").Asc(),
		sm.OrderBy("batch_id").Asc(),
		sm.OrderBy("line_no").Asc(),
	)
	return bob.All(ctx, t.db, query, scan.StructMapper[TransactionRecord]())
}

func (t *TransactionRecordsTable) inTx(ctx context.Context, fn func(tx bob.Tx) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func insertRecords(ctx context.Context, exec bob.Executor, records []TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(transactionRecordsTable, transactionRecordColumns...),
	}
	for _, r := range records {
		queryMods = append(queryMods, im.Values(psql.Arg(
			r.BatchID, r.LineNo, r.Code, r.HolderName, r.AccountNumber, r.Amount, r.Extra, r.Raw, r.FlushedAt,
		)))
	}

	if _, err := bob.Exec(ctx, exec, psql.Insert(queryMods...)); err != nil {
		return fmt.Errorf("insert %d records: %w", len(records), err)
	}
	return nil
}
