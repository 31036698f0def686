package operator

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/operator/actions"
	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type harness struct {
	op      *Operator
	env     *actions.Env
	metrics *Metrics
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	env := &actions.Env{
		Ledger:   account.NewLedger(),
		Session:  session.New(),
		Recorder: transaction.NewRecorder(),
	}
	metrics := NewMetrics(prometheus.NewRegistry())
	logger := logging.SetupLoggingTo(io.Discard, logrus.DebugLevel)
	return &harness{
		op:      NewOperator(env, logger, metrics, nil, nil),
		env:     env,
		metrics: metrics,
	}
}

func (h *harness) run(t *testing.T, action actions.IAction) error {
	t.Helper()
	return h.op.Execute(context.Background(), action)
}

func (h *harness) mustRun(t *testing.T, action actions.IAction) {
	t.Helper()
	require.NoError(t, h.run(t, action))
}

func (h *harness) balance(t *testing.T, n account.Number) decimal.Decimal {
	t.Helper()
	acct, err := h.env.Ledger.Lookup(n)
	require.NoError(t, err)
	return acct.Balance
}

// -- Scenario tests --

func TestOperator_AliceWithdrawScenario(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, &actions.Login{Role: session.RoleAdmin})

	create := &actions.CreateAccount{HolderName: "Alice", InitialBalance: dec("100.00")}
	h.mustRun(t, create)
	assert.Equal(t, account.Number(1), create.Created.Number)
	assert.Equal(t, account.StatusActive, create.Created.Status)
	assert.Equal(t, account.PlanStandard, create.Created.Plan)

	sink := &transaction.MemorySink{}
	h.mustRun(t, &actions.Logout{Sink: sink})
	h.mustRun(t, &actions.Login{Role: session.RoleStandard, User: "Alice"})

	err := h.run(t, &actions.Withdraw{Account: 1, Amount: dec("150.00")})
	assert.ErrorIs(t, err, bankerr.ErrInsufficientFunds)
	assert.True(t, dec("100").Equal(h.balance(t, 1)))
	assert.Equal(t, 0, h.env.Recorder.Len())

	h.mustRun(t, &actions.Withdraw{Account: 1, Amount: dec("50.00")})
	assert.True(t, dec("50").Equal(h.balance(t, 1)))

	pending := h.env.Recorder.Pending()
	require.Len(t, pending, 1)
	line, err := transaction.Encode(pending[0])
	require.NoError(t, err)
	assert.Equal(t, "01 Alice                00001 00050.00   ", line)
}

func TestOperator_WithdrawLimitScenario(t *testing.T) {
	h := newHarness(t)
	_, err := h.env.Ledger.Seed([]account.SeedRecord{
		{Number: 1, HolderName: "Alice", Balance: dec("5000"), Status: account.StatusActive},
	})
	require.NoError(t, err)
	h.mustRun(t, &actions.Login{Role: session.RoleStandard, User: "Alice"})

	h.mustRun(t, &actions.Withdraw{Account: 1, Amount: dec("200")})
	h.mustRun(t, &actions.Withdraw{Account: 1, Amount: dec("200")})
	err = h.run(t, &actions.Withdraw{Account: 1, Amount: dec("200")})

	assert.ErrorIs(t, err, bankerr.ErrLimitExceeded)
	assert.True(t, dec("400").Equal(h.env.Session.Totals().Withdraw))
	assert.True(t, dec("4600").Equal(h.balance(t, 1)))
	assert.Equal(t, 2, h.env.Recorder.Len())
}

func TestOperator_DisableTwiceThenDeleteScenario(t *testing.T) {
	h := newHarness(t)
	_, err := h.env.Ledger.Seed([]account.SeedRecord{
		{Number: 1, HolderName: "Alice", Balance: dec("10"), Status: account.StatusActive},
		{Number: 2, HolderName: "Bob", Balance: dec("20"), Status: account.StatusActive},
	})
	require.NoError(t, err)
	h.mustRun(t, &actions.Login{Role: session.RoleAdmin})

	h.mustRun(t, &actions.DisableAccount{Account: 2})
	err = h.run(t, &actions.DisableAccount{Account: 2})
	assert.ErrorIs(t, err, bankerr.ErrInvalidState)
	h.mustRun(t, &actions.DeleteAccount{Account: 2})

	_, err = h.env.Ledger.Lookup(2)
	assert.ErrorIs(t, err, bankerr.ErrNotFound)

	pending := h.env.Recorder.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, transaction.CodeDisable, pending[0].Code)
	assert.Equal(t, transaction.CodeDelete, pending[1].Code)
	assert.Equal(t, "Bob", pending[1].HolderName)
	assert.True(t, pending[1].Amount.IsZero())
}

// -- Recording tests --

func TestOperator_EverySuccessRecordsOnceEveryRejectionNever(t *testing.T) {
	h := newHarness(t)
	_, err := h.env.Ledger.Seed([]account.SeedRecord{
		{Number: 1, HolderName: "Alice", Balance: dec("1000"), Status: account.StatusActive},
		{Number: 2, HolderName: "Bob", Balance: dec("50"), Status: account.StatusActive},
	})
	require.NoError(t, err)
	h.mustRun(t, &actions.Login{Role: session.RoleStandard, User: "alice"})

	steps := []struct {
		action actions.IAction
		ok     bool
	}{
		{&actions.Withdraw{Account: 1, Amount: dec("20")}, true},
		{&actions.Withdraw{Account: 2, Amount: dec("20")}, false},
		{&actions.Transfer{From: 1, To: 2, Amount: dec("30")}, true},
		{&actions.Transfer{From: 1, To: 1, Amount: dec("30")}, false},
		{&actions.Transfer{From: 1, To: 9, Amount: dec("30")}, false},
		{&actions.PayBill{Account: 1, Payee: "ec", Amount: dec("40")}, true},
		{&actions.PayBill{Account: 1, Payee: "XX", Amount: dec("40")}, false},
		{&actions.Deposit{Account: 1, Amount: dec("60")}, true},
		{&actions.Deposit{Account: 1, Amount: dec("-1")}, false},
		{&actions.ViewBalance{Account: 1}, true},
		{&actions.CreateAccount{HolderName: "Eve", InitialBalance: dec("1")}, false},
	}

	want := 0
	for i, step := range steps {
		err := h.run(t, step.action)
		if step.ok {
			require.NoError(t, err, "step %d", i)
			if _, isView := step.action.(*actions.ViewBalance); !isView {
				want++
			}
		} else {
			require.Error(t, err, "step %d", i)
		}
		assert.Equal(t, want, h.env.Recorder.Len(), "step %d", i)
	}

	pending := h.env.Recorder.Pending()
	assert.Equal(t, "00002", pending[1].Extra)
	assert.Equal(t, "EC", pending[2].Extra)
	assert.Equal(t, "alice", pending[0].HolderName)
}

func TestOperator_DepositLeavesBalanceUnchanged(t *testing.T) {
	h := newHarness(t)
	_, err := h.env.Ledger.Seed([]account.SeedRecord{
		{Number: 1, HolderName: "Alice", Balance: dec("10"), Status: account.StatusActive},
	})
	require.NoError(t, err)
	h.mustRun(t, &actions.Login{Role: session.RoleStandard, User: "Alice"})

	h.mustRun(t, &actions.Deposit{Account: 1, Amount: dec("500")})

	assert.True(t, dec("10").Equal(h.balance(t, 1)))
	require.Equal(t, 1, h.env.Recorder.Len())
	assert.Equal(t, transaction.CodeDeposit, h.env.Recorder.Pending()[0].Code)
}

func TestOperator_TransferMovesFunds(t *testing.T) {
	h := newHarness(t)
	_, err := h.env.Ledger.Seed([]account.SeedRecord{
		{Number: 1, HolderName: "Alice", Balance: dec("100"), Status: account.StatusActive},
		{Number: 2, HolderName: "Bob", Balance: dec("5"), Status: account.StatusActive},
	})
	require.NoError(t, err)
	h.mustRun(t, &actions.Login{Role: session.RoleStandard, User: "Alice"})

	h.mustRun(t, &actions.Transfer{From: 1, To: 2, Amount: dec("99.50")})

	assert.True(t, dec("0.50").Equal(h.balance(t, 1)))
	assert.True(t, dec("104.50").Equal(h.balance(t, 2)))
	assert.True(t, dec("99.50").Equal(h.env.Session.Totals().Transfer))
}

func TestOperator_LogoutFlushesAndClearsBuffer(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, &actions.Login{Role: session.RoleAdmin})
	h.mustRun(t, &actions.CreateAccount{HolderName: "Alice", InitialBalance: dec("1")})

	sink := &transaction.MemorySink{}
	h.mustRun(t, &actions.Logout{Sink: sink})

	assert.False(t, h.env.Session.IsLoggedIn())
	assert.Equal(t, 0, h.env.Recorder.Len())
	lines := strings.Split(strings.TrimSuffix(sink.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "05 Alice"))
	assert.True(t, strings.HasPrefix(lines[1], "00 "))
}

type brokenSink struct{}

func (brokenSink) Open(context.Context) (io.WriteCloser, error) {
	return nil, errors.New("disk gone")
}

func TestOperator_LogoutFlushFailureKeepsSession(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, &actions.Login{Role: session.RoleAdmin})
	h.mustRun(t, &actions.CreateAccount{HolderName: "Alice", InitialBalance: dec("1")})

	err := h.run(t, &actions.Logout{Sink: brokenSink{}})

	assert.Error(t, err)
	assert.True(t, h.env.Session.IsLoggedIn())
	assert.Equal(t, 1, h.env.Recorder.Len())
}

func TestOperator_ExitWhileLoggedOutWritesSentinelOnly(t *testing.T) {
	h := newHarness(t)
	sink := &transaction.MemorySink{}

	h.mustRun(t, &actions.Exit{Sink: sink})

	assert.Equal(t, "00                      00000 00000.00   \n", sink.String())
}

// -- Metrics tests --

func TestOperator_CountsOutcomes(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, &actions.Withdraw{Account: 1, Amount: dec("1")})
	assert.ErrorIs(t, err, bankerr.ErrNotAuthenticated)
	h.mustRun(t, &actions.Login{Role: session.RoleAdmin})

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.operations.WithLabelValues("Withdraw", "not_authenticated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.operations.WithLabelValues("Login", "accepted")))
}

func TestOperator_TracksPendingGauge(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, &actions.Login{Role: session.RoleAdmin})
	h.mustRun(t, &actions.CreateAccount{HolderName: "Alice", InitialBalance: dec("1")})
	h.mustRun(t, &actions.CreateAccount{HolderName: "Bob", InitialBalance: dec("1")})

	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.pending))
}

// -- Delegator tests --

func newDelegator(t *testing.T) (*OperatorDelegator, *actions.Env) {
	t.Helper()
	env := &actions.Env{
		Ledger:   account.NewLedger(),
		Session:  session.New(),
		Recorder: transaction.NewRecorder(),
	}
	logger := logging.SetupLoggingTo(io.Discard, logrus.InfoLevel)
	return NewOperatorDelegator(env, logger, NewMetrics(prometheus.NewRegistry())), env
}

func TestOperatorDelegator_ProcessesInOrder(t *testing.T) {
	d, env := newDelegator(t)
	d.Start()
	defer d.Stop()
	ctx := context.Background()

	require.NoError(t, d.Process(ctx, &actions.Login{Role: session.RoleAdmin}))
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		require.NoError(t, d.Process(ctx, &actions.CreateAccount{HolderName: name, InitialBalance: dec("1")}))
	}

	list := &actions.ListAccounts{}
	require.NoError(t, d.Process(ctx, list))
	require.Len(t, list.Accounts, 3)
	assert.Equal(t, "Carol", list.Accounts[2].HolderName)
	assert.Equal(t, account.Number(3), list.Accounts[2].Number)
	assert.True(t, list.Session.LoggedIn)
	assert.Equal(t, 3, env.Recorder.Len())
}

func TestOperatorDelegator_ReturnsActionError(t *testing.T) {
	d, _ := newDelegator(t)
	d.Start()
	defer d.Stop()

	err := d.Process(context.Background(), &actions.Logout{Sink: &transaction.MemorySink{}})

	assert.ErrorIs(t, err, bankerr.ErrNotAuthenticated)
}

func TestOperatorDelegator_ProcessAfterStop(t *testing.T) {
	d, _ := newDelegator(t)
	d.Start()
	d.Stop()
	d.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := d.Process(ctx, &actions.ListPending{})

	assert.True(t, errors.Is(err, ErrStopped) || errors.Is(err, context.DeadlineExceeded))
}
