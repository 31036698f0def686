package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/atm-server/internal/config"
	"github.com/carson-networks/atm-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB                 *sql.DB
	TransactionRecords sqlconfig.ITransactionRecordsTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	return &Storage{
		DB:                 db,
		TransactionRecords: sqlconfig.NewTransactionRecordsTable(db),
	}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
