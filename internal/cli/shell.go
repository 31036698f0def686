// Package cli is the interactive front end. It reads one command per line, prompts for the
// command's parameters, parses them and hands a typed action to the operator.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/operator/actions"
	"github.com/carson-networks/atm-server/internal/session"
	"github.com/carson-networks/atm-server/internal/storage/account"
	"github.com/carson-networks/atm-server/internal/storage/transaction"
)

const Prompt = "ATM> "

type IProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Shell tracks the login state it has seen succeed so it can skip prompts the operator would
// reject anyway. The operator stays the authority on every check.
type Shell struct {
	processor IProcessor
	sink      transaction.Sink
	scanner   *bufio.Scanner
	out       io.Writer

	loggedIn bool
	admin    bool
}

func NewShell(processor IProcessor, sink transaction.Sink, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		processor: processor,
		sink:      sink,
		scanner:   bufio.NewScanner(in),
		out:       out,
	}
}

// Run reads commands until exit, quit or end of input, then flushes the session. The
// returned error is the final flush's.
func (s *Shell) Run(ctx context.Context) error {
	s.println("================================")
	s.println("Welcome to the Bank ATM System!")
	s.println("================================")

	handlers := s.commands()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printf("%s", Prompt)
		line, ok := s.readLine()
		if !ok {
			return s.exit(ctx)
		}

		command := strings.ToLower(strings.TrimSpace(line))
		switch {
		case command == "":
			continue
		case command == "exit" || command == "quit":
			return s.exit(ctx)
		}

		handler, found := handlers[command]
		if !found {
			s.println("Invalid command!")
			continue
		}
		handler(ctx)
	}
}

func (s *Shell) commands() map[string]func(ctx context.Context) {
	return map[string]func(ctx context.Context){
		"login":      s.login,
		"logout":     s.logout,
		"withdraw":   s.withdraw,
		"transfer":   s.transfer,
		"paybill":    s.payBill,
		"deposit":    s.deposit,
		"create":     s.create,
		"delete":     s.deleteAccount,
		"disable":    s.disable,
		"changeplan": s.changePlan,
		"balance":    s.balance,
	}
}

func (s *Shell) exit(ctx context.Context) error {
	if err := s.processor.Process(ctx, &actions.Exit{Sink: s.sink}); err != nil {
		s.printf("Could not save transactions: %s\n", bankerr.Reason(err))
		return err
	}
	s.loggedIn, s.admin = false, false
	s.println("Transactions saved to file.")
	s.println("Thank you for using the ATM. Goodbye!")
	return nil
}

// -- session commands --

func (s *Shell) login(ctx context.Context) {
	if s.loggedIn {
		s.reject(bankerr.ErrAlreadyLoggedIn)
		return
	}
	mode, ok := s.prompt("Enter mode (admin/standard): ")
	if !ok {
		return
	}
	role, err := session.ParseRole(mode)
	if err != nil {
		s.println("Invalid mode!")
		return
	}

	user := ""
	if role == session.RoleStandard {
		if user, ok = s.prompt("Enter username: "); !ok {
			return
		}
		user = strings.TrimSpace(user)
		if user == "" {
			s.println("Username cannot be empty!")
			return
		}
	}

	if err := s.processor.Process(ctx, &actions.Login{Role: role, User: user}); err != nil {
		s.reject(err)
		return
	}
	s.loggedIn, s.admin = true, role == session.RoleAdmin
	if s.admin {
		s.println("Login successful. Welcome admin.")
		return
	}
	s.printf("Login successful. Welcome %s.\n", user)
}

func (s *Shell) logout(ctx context.Context) {
	if err := s.processor.Process(ctx, &actions.Logout{Sink: s.sink}); err != nil {
		s.reject(err)
		return
	}
	s.loggedIn, s.admin = false, false
	s.println("Transactions saved to file.")
	s.println("Logged out.")
}

// -- account holder commands --

func (s *Shell) withdraw(ctx context.Context) {
	holder, ok := s.holderName()
	if !ok {
		return
	}
	number, ok := s.accountNumber("Enter account number: ")
	if !ok {
		return
	}
	amount, ok := s.amount("Enter withdrawal amount ($): ")
	if !ok {
		return
	}

	action := &actions.Withdraw{HolderName: holder, Account: number, Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		s.reject(err)
		return
	}
	s.println("Withdrawal successful.")
	s.printf("Current Balance: $%s\n", action.Balance.StringFixed(2))
}

func (s *Shell) transfer(ctx context.Context) {
	holder, ok := s.holderName()
	if !ok {
		return
	}
	from, ok := s.accountNumber("Enter source account number: ")
	if !ok {
		return
	}
	to, ok := s.accountNumber("Enter destination account number: ")
	if !ok {
		return
	}
	amount, ok := s.amount("Enter transfer amount ($): ")
	if !ok {
		return
	}

	if err := s.processor.Process(ctx, &actions.Transfer{HolderName: holder, From: from, To: to, Amount: amount}); err != nil {
		s.reject(err)
		return
	}
	s.println("Transfer successful.")
}

func (s *Shell) payBill(ctx context.Context) {
	holder, ok := s.holderName()
	if !ok {
		return
	}
	number, ok := s.accountNumber("Enter account number: ")
	if !ok {
		return
	}
	payee, ok := s.prompt("Enter payee code (EC, CQ, FI): ")
	if !ok {
		return
	}
	payee = strings.ToUpper(strings.TrimSpace(payee))
	if _, known := actions.Payees[payee]; !known {
		s.println("Invalid payee code!")
		return
	}
	amount, ok := s.amount("Enter bill amount ($): ")
	if !ok {
		return
	}

	action := &actions.PayBill{HolderName: holder, Account: number, Payee: payee, Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		s.reject(err)
		return
	}
	s.println("Bill payment was successful!")
	s.printf("Payee: %s\n", actions.Payees[payee])
	s.printf("Current Balance: $%s\n", action.Balance.StringFixed(2))
}

func (s *Shell) deposit(ctx context.Context) {
	holder, ok := s.holderName()
	if !ok {
		return
	}
	number, ok := s.accountNumber("Enter account number: ")
	if !ok {
		return
	}
	amount, ok := s.amount("Enter deposit amount ($): ")
	if !ok {
		return
	}

	if err := s.processor.Process(ctx, &actions.Deposit{HolderName: holder, Account: number, Amount: amount}); err != nil {
		s.reject(err)
		return
	}
	s.println("Deposit was successful! Funds will be available in the next session.")
}

func (s *Shell) balance(ctx context.Context) {
	holder, ok := s.holderName()
	if !ok {
		return
	}
	number, ok := s.accountNumber("Enter account number: ")
	if !ok {
		return
	}

	action := &actions.ViewBalance{HolderName: holder, Account: number}
	if err := s.processor.Process(ctx, action); err != nil {
		s.reject(err)
		return
	}
	s.printf("Current Balance: $%s\n", action.Balance.StringFixed(2))
}

// -- admin commands --

func (s *Shell) create(ctx context.Context) {
	if !s.requireAdmin("Only admins can create accounts!") {
		return
	}
	name, ok := s.prompt("Enter account holder name: ")
	if !ok {
		return
	}
	balance, ok := s.amount("Enter starting balance ($): ")
	if !ok {
		return
	}

	action := &actions.CreateAccount{HolderName: strings.TrimSpace(name), InitialBalance: balance}
	if err := s.processor.Process(ctx, action); err != nil {
		s.reject(err)
		return
	}
	s.println("Account successfully created!")
	s.printf("New Account Number: %v\n", action.Created.Number)
}

func (s *Shell) deleteAccount(ctx context.Context) {
	if !s.requireAdmin("Only admins can delete accounts!") {
		return
	}
	number, ok := s.accountNumber("Enter account number to delete: ")
	if !ok {
		return
	}
	if err := s.processor.Process(ctx, &actions.DeleteAccount{Account: number}); err != nil {
		s.reject(err)
		return
	}
	s.println("Account deleted successfully.")
}

func (s *Shell) disable(ctx context.Context) {
	if !s.requireAdmin("Only admins can disable accounts!") {
		return
	}
	number, ok := s.accountNumber("Enter account number to disable: ")
	if !ok {
		return
	}
	if err := s.processor.Process(ctx, &actions.DisableAccount{Account: number}); err != nil {
		s.reject(err)
		return
	}
	s.println("Account disabled successfully.")
}

func (s *Shell) changePlan(ctx context.Context) {
	if !s.requireAdmin("Only admins can change account plans!") {
		return
	}
	number, ok := s.accountNumber("Enter account number: ")
	if !ok {
		return
	}
	letter, ok := s.prompt("Enter new plan (S for Student, N for Normal): ")
	if !ok {
		return
	}
	plan, err := account.ParsePlan(letter)
	if err != nil {
		s.println("Invalid plan type!")
		return
	}
	if err := s.processor.Process(ctx, &actions.ChangePlan{Account: number, Plan: plan}); err != nil {
		s.reject(err)
		return
	}
	s.println("Account plan updated successfully.")
}

// -- prompting --

// holderName checks for a session and, for admins, asks whose account is being used.
func (s *Shell) holderName() (string, bool) {
	if !s.loggedIn {
		s.reject(bankerr.ErrNotAuthenticated)
		return "", false
	}
	if !s.admin {
		return "", true
	}
	name, ok := s.prompt("Enter account holder name: ")
	return strings.TrimSpace(name), ok
}

func (s *Shell) requireAdmin(denied string) bool {
	if !s.loggedIn {
		s.reject(bankerr.ErrNotAuthenticated)
		return false
	}
	if !s.admin {
		s.println(denied)
		return false
	}
	return true
}

func (s *Shell) accountNumber(label string) (account.Number, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := account.ParseNumber(strings.TrimSpace(raw))
	if err != nil {
		s.println("Invalid account number!")
		return 0, false
	}
	return n, true
}

// amount reads a dollar amount. Range checks are left to the operator.
func (s *Shell) amount(label string) (decimal.Decimal, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	d, err := ParseAmount(raw)
	if err != nil {
		s.println("Invalid amount entered!")
		return decimal.Zero, false
	}
	return d, true
}

// ParseAmount parses a dollar amount such as "12", "12.50" or "$12.50".
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "$")
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount: %w", bankerr.ErrInvalidInput)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", raw, bankerr.ErrInvalidInput)
	}
	return d, nil
}

func (s *Shell) prompt(label string) (string, bool) {
	s.printf("%s", label)
	return s.readLine()
}

func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Shell) reject(err error) {
	s.println(bankerr.Reason(err))
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
