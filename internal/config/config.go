package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	SinkFile     = "file"
	SinkPostgres = "postgres"
)

type Config struct {
	AccountsFile       string
	TransactionsFile   string
	TransactionsAppend bool
	Sink               string
	HTTPPort           string
	LogLevel           string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match running the ATM from the directory holding its data files, and the
	// docker compose setup for Postgres.
	env := Config{
		AccountsFile:     "current_accounts.txt",
		TransactionsFile: "transactions.txt",
		Sink:             SinkFile,
		LogLevel:         "info",

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	setString(&env.AccountsFile, "ACCOUNTS_FILE")
	setString(&env.TransactionsFile, "TRANSACTIONS_FILE")
	setString(&env.Sink, "SINK")
	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.LogLevel, "LOG_LEVEL")

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	if raw := os.Getenv("TRANSACTIONS_APPEND"); len(raw) != 0 {
		appendMode, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("TRANSACTIONS_APPEND: %w", err)
		}
		env.TransactionsAppend = appendMode
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate checks values that can also be overridden by command line flags.
func (c *Config) Validate() error {
	if c.Sink != SinkFile && c.Sink != SinkPostgres {
		return fmt.Errorf("SINK must be %q or %q, got %q", SinkFile, SinkPostgres, c.Sink)
	}
	if c.Sink == SinkFile && len(c.TransactionsFile) == 0 {
		return fmt.Errorf("transactions file is required for the file sink")
	}
	return nil
}

// PostgresURL is the lib/pq connection string for the Postgres sink and migrations.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func setString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
