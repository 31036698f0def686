// Package bankerr holds the error taxonomy shared by the ledger, the session and the operator.
// Packages wrap these sentinels with context; callers match with errors.Is.
package bankerr

import "errors"

var (
	ErrNotAuthenticated    = errors.New("not logged in")
	ErrAlreadyLoggedIn     = errors.New("already logged in")
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrNotFound            = errors.New("account not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrLimitExceeded       = errors.New("session limit exceeded")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidState        = errors.New("invalid account state")
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrNotAuthenticated, "You must be logged in!"},
	{ErrAlreadyLoggedIn, "Already logged in!"},
	{ErrAuthorizationDenied, "Permission denied!"},
	{ErrNotFound, "Account not found!"},
	{ErrInvalidInput, "Invalid input!"},
	{ErrLimitExceeded, "Session limit exceeded!"},
	{ErrInsufficientFunds, "Insufficient funds!"},
	{ErrInvalidState, "Account is not in a valid state for this operation!"},
}

// Rejection is a guard failure with its own operator-facing message. It matches its
// Category with errors.Is.
type Rejection struct {
	Category error
	Message  string
}

// Reject returns a Rejection of category with message.
func Reject(category error, message string) error {
	return &Rejection{Category: category, Message: message}
}

func (r *Rejection) Error() string {
	return r.Category.Error() + ": " + r.Message
}

func (r *Rejection) Unwrap() error {
	return r.Category
}

// Reason returns the short operator-facing message for err: the message of the innermost
// Rejection, else the message of its category. Errors outside the taxonomy (sink I/O
// failures, for example) fall back to err.Error().
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Message
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return err.Error()
}

// Outcome names the taxonomy member err belongs to, for metric labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, ErrAlreadyLoggedIn):
		return "already_logged_in"
	case errors.Is(err, ErrAuthorizationDenied):
		return "authorization_denied"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	default:
		return "error"
	}
}
