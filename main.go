package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/atm-server/api"
	"github.com/carson-networks/atm-server/internal/config"
	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/operator"
	"github.com/carson-networks/atm-server/internal/operator/actions"
	"github.com/carson-networks/atm-server/internal/service"
	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/accountfile"
	"github.com/carson-networks/atm-server/internal/storage/transaction"

	terminal "github.com/carson-networks/atm-server/internal/cli"
)

const shutdownTimeout = 5 * time.Second

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err := newApp(envConfig, os.Stdin).Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("atm-server")
	}
}

func newApp(env *config.Config, stdin io.Reader) *cli.App {
	return &cli.App{
		Name:  "atm-server",
		Usage: "single terminal banking ATM",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "accounts", Usage: "current accounts file", Value: env.AccountsFile, Destination: &env.AccountsFile},
			&cli.StringFlag{Name: "transactions", Usage: "transaction file written on logout and exit", Value: env.TransactionsFile, Destination: &env.TransactionsFile},
			&cli.BoolFlag{Name: "append", Usage: "append flushes instead of replacing the previous one", Value: env.TransactionsAppend, Destination: &env.TransactionsAppend},
			&cli.StringFlag{Name: "sink", Usage: "where flushes go: file or postgres", Value: env.Sink, Destination: &env.Sink},
			&cli.StringFlag{Name: "http-port", Usage: "serve the read-only HTTP view on this port", Value: env.HTTPPort, Destination: &env.HTTPPort},
			&cli.StringFlag{Name: "log-level", Usage: "logrus level", Value: env.LogLevel, Destination: &env.LogLevel},
		},
		Before: func(*cli.Context) error {
			return env.Validate()
		},
		Action: func(c *cli.Context) error {
			return runTerminal(c, env, stdin)
		},
		Commands: []*cli.Command{
			{
				Name:  "check-accounts",
				Usage: "parse the accounts file and print it back in canonical form",
				Action: func(c *cli.Context) error {
					return checkAccounts(c.App.Writer, env.AccountsFile)
				},
			},
		},
	}
}

func runTerminal(c *cli.Context, env *config.Config, stdin io.Reader) error {
	logger := logging.SetupLoggingTo(os.Stderr, logging.ParseLevel(env.LogLevel))
	logger.Info("atm-server starting")

	ledger, err := loadLedger(logger, env.AccountsFile)
	if err != nil {
		return err
	}

	sink, closeSink, err := openSink(env)
	if err != nil {
		return err
	}
	defer closeSink()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	delegator := operator.NewOperatorDelegator(&actions.Env{
		Ledger:   ledger,
		Session:  session.New(),
		Recorder: transaction.NewRecorder(),
	}, logger, operator.NewMetrics(registry))
	delegator.Start()
	defer delegator.Stop()

	if len(env.HTTPPort) != 0 {
		httpRest := &api.Rest{
			Logger:   logger,
			Port:     env.HTTPPort,
			Operator: delegator,
			Service:  service.NewService(delegator),
			Gatherer: registry,
		}
		go func() {
			if err := httpRest.Serve(); err != nil {
				logger.WithError(err).Error("HttpServer.Serve")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpRest.Shutdown(ctx); err != nil {
				logger.WithError(err).Warn("HttpServer.Shutdown")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shellDone := make(chan error, 1)
	go func() {
		shellDone <- terminal.NewShell(delegator, sink, stdin, c.App.Writer).Run(ctx)
	}()

	return awaitShell(ctx, shellDone, func(flushCtx context.Context) error {
		logger.Info("atm-server interrupted, saving transactions")
		return delegator.Process(flushCtx, &actions.Exit{Sink: sink})
	})
}

// awaitShell waits for the shell to finish. When ctx ends first, or the shell stopped
// because ctx was canceled, flush saves the session on the shell's behalf.
func awaitShell(ctx context.Context, shellDone <-chan error, flush func(ctx context.Context) error) error {
	select {
	case err := <-shellDone:
		if !errors.Is(err, context.Canceled) {
			return err
		}
	case <-ctx.Done():
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := flush(flushCtx); err != nil {
		return fmt.Errorf("flush on interrupt: %w", err)
	}
	return nil
}

func loadLedger(logger *logrus.Logger, path string) (*account.Ledger, error) {
	records, err := accountfile.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithField("path", path).Warn("Accounts.Load.missing file, starting with no accounts")
		records = nil
	} else if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debug(spew.Sdump(records))
	}

	ledger := account.NewLedger()
	highest, err := ledger.Seed(records)
	if err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"path":          path,
		"accounts":      ledger.Len(),
		"highestNumber": highest.String(),
	}).Info("Accounts.Load.Complete")
	return ledger, nil
}

func openSink(env *config.Config) (transaction.Sink, func(), error) {
	if env.Sink != config.SinkPostgres {
		return transaction.FileSink{Path: env.TransactionsFile, Append: env.TransactionsAppend}, func() {}, nil
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		return nil, nil, err
	}
	closeStorage := func() {
		if err := dbStorage.Close(); err != nil {
			logrus.WithError(err).Warn("Storage.Close")
		}
	}
	return storage.NewPostgresSink(dbStorage.TransactionRecords, env.TransactionsAppend), closeStorage, nil
}

func checkAccounts(out io.Writer, path string) error {
	records, err := accountfile.LoadFile(path)
	if err != nil {
		return err
	}
	ledger := account.NewLedger()
	if _, err := ledger.Seed(records); err != nil {
		return err
	}
	return accountfile.Write(out, ledger.List())
}
