package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/operator"
	"github.com/carson-networks/atm-server/internal/operator/actions"
	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

type shellRun struct {
	out  string
	sink *transaction.MemorySink
	env  *actions.Env
	err  error
}

func runShell(t *testing.T, seed []account.SeedRecord, script ...string) shellRun {
	t.Helper()
	return runShellWithSink(t, &transaction.MemorySink{}, seed, script...)
}

func runShellWithSink(t *testing.T, sink *transaction.MemorySink, seed []account.SeedRecord, script ...string) shellRun {
	t.Helper()
	env := &actions.Env{
		Ledger:   account.NewLedger(),
		Session:  session.New(),
		Recorder: transaction.NewRecorder(),
	}
	_, err := env.Ledger.Seed(seed)
	require.NoError(t, err)

	logger := logging.SetupLoggingTo(io.Discard, logrus.InfoLevel)
	delegator := operator.NewOperatorDelegator(env, logger, operator.NewMetrics(prometheus.NewRegistry()))
	delegator.Start()
	defer delegator.Stop()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	err = NewShell(delegator, sink, in, &out).Run(context.Background())
	return shellRun{out: out.String(), sink: sink, env: env, err: err}
}

func alice() []account.SeedRecord {
	return []account.SeedRecord{
		{Number: 1, HolderName: "Alice", Balance: decimal.RequireFromString("100"), Status: account.StatusActive},
		{Number: 2, HolderName: "Bob", Balance: decimal.RequireFromString("20"), Status: account.StatusActive},
	}
}

// -- Shell tests --

func TestShell_WithdrawThenExit(t *testing.T) {
	run := runShell(t, alice(),
		"login", "standard", "Alice",
		"withdraw", "00001", "150",
		"withdraw", "1", "$50.00",
		"exit",
	)

	require.NoError(t, run.err)
	assert.Contains(t, run.out, "Login successful. Welcome Alice.")
	assert.Contains(t, run.out, "Insufficient funds!")
	assert.Contains(t, run.out, "Withdrawal successful.")
	assert.Contains(t, run.out, "Current Balance: $50.00")
	assert.Contains(t, run.out, "Goodbye!")
	assert.Equal(t,
		"01 Alice                00001 00050.00   \n"+
			"00                      00000 00000.00   \n",
		run.sink.String())
	assert.False(t, run.env.Session.IsLoggedIn())
}

func TestShell_EndOfInputFlushes(t *testing.T) {
	run := runShell(t, alice(), "login", "standard", "Alice", "deposit", "1", "5")

	require.NoError(t, run.err)
	assert.Contains(t, run.sink.String(), "04 Alice")
	assert.Contains(t, run.out, "Transactions saved to file.")
}

func TestShell_CommandsAreCaseInsensitive(t *testing.T) {
	run := runShell(t, alice(), "LOGIN", "Admin", "Balance", "bob", "2", "QUIT")

	require.NoError(t, run.err)
	assert.Contains(t, run.out, "Welcome admin.")
	assert.Contains(t, run.out, "Current Balance: $20.00")
}

func TestShell_InvalidCommand(t *testing.T) {
	run := runShell(t, nil, "dance", "exit")

	assert.Contains(t, run.out, "Invalid command!")
}

func TestShell_MalformedAmountAbortsOnlyThatCommand(t *testing.T) {
	run := runShell(t, alice(),
		"login", "standard", "Alice",
		"withdraw", "1", "ten",
		"withdraw", "1", "10",
		"exit",
	)

	assert.Contains(t, run.out, "Invalid amount entered!")
	assert.Contains(t, run.out, "Current Balance: $90.00")
	assert.Equal(t, 2, strings.Count(run.sink.String(), "\n"))
}

func TestShell_MalformedAccountNumber(t *testing.T) {
	run := runShell(t, alice(), "login", "standard", "Alice", "balance", "abc", "exit")

	assert.Contains(t, run.out, "Invalid account number!")
}

func TestShell_RequiresLoginBeforePrompting(t *testing.T) {
	run := runShell(t, alice(), "withdraw", "exit")

	assert.Contains(t, run.out, "You must be logged in!")
	assert.NotContains(t, run.out, "Enter account number")
}

func TestShell_AdminCommandsRejectStandardUsers(t *testing.T) {
	run := runShell(t, alice(), "login", "standard", "Alice", "create", "exit")

	assert.Contains(t, run.out, "Only admins can create accounts!")
	assert.NotContains(t, run.out, "Enter account holder name")
}

func TestShell_AdminFlow(t *testing.T) {
	run := runShell(t, alice(),
		"login", "admin",
		"create", "Carol", "25.50",
		"changeplan", "3", "s",
		"disable", "2",
		"disable", "2",
		"delete", "2",
		"paybill", "Alice", "1", "fi", "30",
		"logout",
		"exit",
	)

	require.NoError(t, run.err)
	assert.Contains(t, run.out, "New Account Number: 00003")
	assert.Contains(t, run.out, "Account plan updated successfully.")
	assert.Contains(t, run.out, "Account already disabled!")
	assert.Contains(t, run.out, "Account deleted successfully.")
	assert.Contains(t, run.out, "Payee: Fast Internet, Inc.")
	assert.Contains(t, run.out, "Current Balance: $70.00")

	// exit after logout writes an empty batch over the logout flush.
	assert.Equal(t, "00                      00000 00000.00   \n", run.sink.String())
}

func TestShell_LogoutWritesSessionBatch(t *testing.T) {
	// Appending keeps the logout batch visible after the exit flush that follows it.
	sink := &transaction.MemorySink{Append: true}
	run := runShellWithSink(t, sink, alice(),
		"login", "admin",
		"create", "Carol", "1",
		"logout",
		"exit",
	)

	require.NoError(t, run.err)
	assert.Contains(t, run.out, "Logged out.")
	assert.Equal(t,
		"05 Carol                00003 00001.00   \n"+
			"00                      00000 00000.00   \n"+
			"00                      00000 00000.00   \n",
		sink.String())
}

func TestShell_LogoutBatchIsNotRewrittenBySecondSession(t *testing.T) {
	sink := &transaction.MemorySink{Append: true}
	run := runShellWithSink(t, sink, alice(),
		"login", "standard", "Alice",
		"withdraw", "1", "20",
		"logout",
		"login", "standard", "Bob",
		"deposit", "2", "5",
		"logout",
		"exit",
	)

	require.NoError(t, run.err)
	assert.Equal(t,
		"01 Alice                00001 00020.00   \n"+
			"00                      00000 00000.00   \n"+
			"04 Bob                  00002 00005.00   \n"+
			"00                      00000 00000.00   \n"+
			"00                      00000 00000.00   \n",
		sink.String())
}

func TestShell_ReportsSpecificReasons(t *testing.T) {
	run := runShell(t, alice(),
		"login", "standard", "Alice",
		"withdraw", "2", "5",
		"withdraw", "1", "0",
		"paybill", "1", "EC", "-3",
		"deposit", "2", "5",
		"transfer", "1", "9", "5",
		"logout",
		"logout",
		"exit",
	)

	assert.Contains(t, run.out, "You can only withdraw from your own account!")
	assert.Contains(t, run.out, "Amount must be positive!")
	assert.Contains(t, run.out, "Bill amount must be positive!")
	assert.Contains(t, run.out, "You can only deposit to your own account!")
	assert.Contains(t, run.out, "Destination account not found!")
	assert.Contains(t, run.out, "No user currently logged in!")
}

func TestShell_InvalidPayee(t *testing.T) {
	run := runShell(t, alice(), "login", "standard", "Alice", "paybill", "1", "ZZ", "exit")

	assert.Contains(t, run.out, "Invalid payee code!")
}

type failingProcessor struct{}

func (failingProcessor) Process(context.Context, actions.IAction) error {
	return errors.New("sink unavailable")
}

func TestShell_ExitFlushFailureIsReturned(t *testing.T) {
	var out bytes.Buffer
	err := NewShell(failingProcessor{}, &transaction.MemorySink{}, strings.NewReader("exit\n"), &out).Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, out.String(), "Could not save transactions: sink unavailable")
}

// -- ParseAmount tests --

func TestParseAmount(t *testing.T) {
	for raw, want := range map[string]string{"12": "12", "12.50": "12.5", " $7.25 ": "7.25"} {
		got, err := ParseAmount(raw)
		require.NoError(t, err, raw)
		assert.True(t, decimal.RequireFromString(want).Equal(got), raw)
	}

	for _, raw := range []string{"", "$", "abc", "1,000"} {
		_, err := ParseAmount(raw)
		assert.ErrorIs(t, err, bankerr.ErrInvalidInput, raw)
	}
}
