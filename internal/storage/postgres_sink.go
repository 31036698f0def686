package storage

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/atm-server/internal/storage/sqlconfig"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

// PostgresSink stores each flushed transaction file as one batch of rows. By default a
// flush replaces every stored row; with Append set, batches accumulate.
type PostgresSink struct {
	Records sqlconfig.ITransactionRecordsTable
	Append  bool

	now func() time.Time
}

var _ transaction.Sink = (*PostgresSink)(nil)

func NewPostgresSink(records sqlconfig.ITransactionRecordsTable, appendMode bool) *PostgresSink {
	return &PostgresSink{Records: records, Append: appendMode, now: time.Now}
}

func (s *PostgresSink) Open(ctx context.Context) (io.WriteCloser, error) {
	return &batchWriter{ctx: ctx, sink: s}, nil
}

// batchWriter collects the file and stores it in a single database transaction on Close.
type batchWriter struct {
	ctx  context.Context
	sink *PostgresSink
	buf  bytes.Buffer
}

func (w *batchWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *batchWriter) Close() error {
	records, err := w.sink.records(w.buf.Bytes())
	if err != nil {
		return err
	}
	if w.sink.Append {
		return w.sink.Records.Append(w.ctx, records)
	}
	return w.sink.Records.Replace(w.ctx, records)
}

func (s *PostgresSink) records(payload []byte) ([]sqlconfig.TransactionRecord, error) {
	batchID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("batch id: %w", err)
	}
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	flushedAt := now().UTC()

	var records []sqlconfig.TransactionRecord
	scanner := bufio.NewScanner(bytes.NewReader(payload))
	for scanner.Scan() {
		line := scanner.Text()
		tx, err := transaction.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(records)+1, err)
		}
		records = append(records, sqlconfig.TransactionRecord{
			BatchID:       batchID,
			LineNo:        len(records) + 1,
			Code:          int(tx.Code),
			HolderName:    tx.HolderName,
			AccountNumber: int(tx.AccountNumber),
			Amount:        tx.Amount,
			Extra:         tx.Extra,
			Raw:           line,
			FlushedAt:     flushedAt,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
