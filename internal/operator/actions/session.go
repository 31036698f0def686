package actions

import (
	"context"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

type Login struct {
	Role session.Role
	User string
}

func (l *Login) Name() string { return "Login" }

func (l *Login) Perform(_ context.Context, env *Env) (*transaction.Transaction, error) {
	return nil, env.Session.Login(l.Role, l.User)
}

// Logout flushes the session's records to Sink and ends the session. A failed flush
// leaves the session logged in with its records still buffered.
type Logout struct {
	Sink transaction.Sink
}

func (l *Logout) Name() string { return "Logout" }

func (l *Logout) Perform(ctx context.Context, env *Env) (*transaction.Transaction, error) {
	if !env.Session.IsLoggedIn() {
		return nil, bankerr.Reject(bankerr.ErrNotAuthenticated, "No user currently logged in!")
	}
	if err := env.Recorder.Flush(ctx, l.Sink); err != nil {
		return nil, err
	}
	return nil, env.Session.Logout()
}

// Exit flushes whatever is buffered and ends any open session. It is valid logged out.
type Exit struct {
	Sink transaction.Sink
}

func (e *Exit) Name() string { return "Exit" }

func (e *Exit) Perform(ctx context.Context, env *Env) (*transaction.Transaction, error) {
	if err := env.Recorder.Flush(ctx, e.Sink); err != nil {
		return nil, err
	}
	if env.Session.IsLoggedIn() {
		return nil, env.Session.Logout()
	}
	return nil, nil
}
