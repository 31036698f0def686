//go:build integration

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/carson-networks/atm-server/internal/storage/sqlconfig"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

func setupDatabase(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("atm"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)

	pre, post, err := Migrate(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), pre)
	assert.Equal(t, uint(1), post)
	return db
}

func flushWithdrawal(t *testing.T, sink transaction.Sink, holder string) {
	t.Helper()
	recorder := transaction.NewRecorder()
	recorder.Record(transaction.Transaction{
		Code:          transaction.CodeWithdraw,
		HolderName:    holder,
		AccountNumber: 1,
		Amount:        decimal.RequireFromString("50"),
	})
	require.NoError(t, recorder.Flush(context.Background(), sink))
}

func TestIntegration_PostgresSink_Replace(t *testing.T) {
	db := setupDatabase(t)
	table := sqlconfig.NewTransactionRecordsTable(db)
	sink := NewPostgresSink(table, false)

	flushWithdrawal(t, sink, "Alice")
	flushWithdrawal(t, sink, "Bob")

	records, err := table.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Bob", records[0].HolderName)
	assert.Equal(t, "01 Bob                  00001 00050.00   ", records[0].Raw)
	assert.True(t, decimal.RequireFromString("50").Equal(records[0].Amount))
	assert.Equal(t, int(transaction.CodeEnd), records[1].Code)
}

func TestIntegration_PostgresSink_Append(t *testing.T) {
	db := setupDatabase(t)
	table := sqlconfig.NewTransactionRecordsTable(db)
	sink := NewPostgresSink(table, true)

	flushWithdrawal(t, sink, "Alice")
	flushWithdrawal(t, sink, "Bob")

	records, err := table.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Alice", records[0].HolderName)
	assert.Equal(t, "Bob", records[2].HolderName)
	assert.NotEqual(t, records[0].BatchID, records[2].BatchID)
}

func TestIntegration_Migrate_Idempotent(t *testing.T) {
	db := setupDatabase(t)

	pre, post, err := Migrate(db)

	require.NoError(t, err)
	assert.Equal(t, uint(1), pre)
	assert.Equal(t, uint(1), post)
}
