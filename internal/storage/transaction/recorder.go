package transaction

import (
	"context"
	"fmt"
	"strings"
)

// Recorder buffers the records of the current session in the order they were produced.
type Recorder struct {
	records []Transaction
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends tx. It does no validation or deduplication.
func (r *Recorder) Record(tx Transaction) {
	r.records = append(r.records, tx)
}

func (r *Recorder) Len() int {
	return len(r.records)
}

// Pending returns a copy of the buffered records.
func (r *Recorder) Pending() []Transaction {
	out := make([]Transaction, len(r.records))
	copy(out, r.records)
	return out
}

// Flush writes every buffered record followed by the sentinel to sink, then clears the
// buffer. The sink is closed on every path once opened. If anything fails the buffer is
// kept so the flush can be retried.
func (r *Recorder) Flush(ctx context.Context, sink Sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := r.encode()
	if err != nil {
		return err
	}

	w, err := sink.Open(ctx)
	if err != nil {
		return fmt.Errorf("open transaction sink: %w", err)
	}
	_, writeErr := w.Write([]byte(payload))
	closeErr := w.Close()
	if writeErr != nil {
		return fmt.Errorf("write transaction sink: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close transaction sink: %w", closeErr)
	}

	r.records = nil
	return nil
}

func (r *Recorder) encode() (string, error) {
	var b strings.Builder
	b.Grow((len(r.records) + 1) * (RecordLength + 1))
	for i, tx := range r.records {
		line, err := Encode(tx)
		if err != nil {
			return "", fmt.Errorf("encode record %d: %w", i, err)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	end, _ := Encode(Sentinel())
	b.WriteString(end)
	b.WriteByte('\n')
	return b.String(), nil
}
