// Package consoledelivery manages the console session layer of the ATM.
package consoledelivery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/logpkg"
)

// ATMService provides the transaction engine interface needed by the console.
//
//go:generate mockgen -source console.go -destination console_mock.go -package consoledelivery
type ATMService interface {
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Receipt, error)
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Receipt, error)
	Transfer(ctx context.Context, fromAccountID, toCard string, amount decimal.Decimal) (domain.Receipt, error)
	PrintReceipt(ctx context.Context, t domain.ReceiptType, amount, balance decimal.Decimal) (domain.PrintedReceipt, error)
	DeviceStatus(ctx context.Context) (domain.DeviceState, error)
	RefillPaper(ctx context.Context, n int32) (domain.DeviceState, error)
	RefillInk(ctx context.Context, n int32) (domain.DeviceState, error)
	AddBanknotes(ctx context.Context, notes domain.Banknotes) (domain.DeviceState, error)
	CollectBanknotes(ctx context.Context, notes domain.Banknotes) (domain.DeviceState, error)
	UpdateFirmware(ctx context.Context, version string) (domain.DeviceState, error)
}

// AccountService provides the account ledger interface needed by the console.
type AccountService interface {
	Authenticate(ctx context.Context, cardNumber, pin string) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	History(ctx context.Context, id string, limit, offset int32) ([]domain.Entry, error)
}

// Handler facilitates console session logic.
type Handler struct {
	atm            ATMService
	accounts       AccountService
	validate       *validator.Validate
	logger         zerolog.Logger
	technicianCode string
	historySize    int32
}

// NewHandler returns console handler.
func NewHandler(atm ATMService, accounts AccountService, logger zerolog.Logger, technicianCode string, historySize int32) (*Handler, error) {
	if historySize <= 0 {
		return nil, fmt.Errorf("history size must be positive, got %d", historySize)
	}

	v := validator.New()

	if err := v.RegisterValidation("money", ValidMoney); err != nil {
		return nil, err
	}

	return &Handler{
		atm:            atm,
		accounts:       accounts,
		validate:       v,
		logger:         logger,
		technicianCode: technicianCode,
		historySize:    historySize,
	}, nil
}

// Run serves one console session reading commands from in and writing to out.
// It returns nil when the user exits or the input is exhausted.
func (h *Handler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, _ = logpkg.WithSession(ctx, h.logger)
	l := zerolog.Ctx(ctx)

	l.Info().Msg("console session started")

	s := &session{
		Handler: h,
		ctx:     ctx,
		in:      bufio.NewScanner(in),
		out:     out,
	}

	err := s.mainMenu()
	if errors.Is(err, io.EOF) {
		l.Info().Msg("console input closed")
		return nil
	}

	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	l.Info().Msg("console session ended")

	return nil
}

type session struct {
	*Handler
	ctx context.Context
	in  *bufio.Scanner
	out io.Writer
}

func (s *session) say(format string, a ...any) {
	fmt.Fprintf(s.out, format+"\n", a...)
}

// report writes the console message of err.
func (s *session) report(err error) {
	fmt.Fprintln(s.out, message(err))
}

// prompt writes text and returns the next trimmed input line.
func (s *session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// valid reports whether req passes validation and logs the rejection otherwise.
func (s *session) valid(req any) bool {
	if err := s.validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			zerolog.Ctx(s.ctx).Info().Str("field", ve[0].Field()).Str("tag", ve[0].Tag()).Msg("invalid input")
		}

		return false
	}

	return true
}

func (s *session) mainMenu() error {
	for {
		s.say("\n===== ATM SYSTEM =====")
		s.say("1. Customer")
		s.say("2. Technician")
		s.say("3. Exit")

		choice, err := s.prompt("Select: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.customerLogin()
		case "2":
			err = s.technicianLogin()
		case "3":
			s.say("Thank you for using ATM. Goodbye!")
			return nil
		default:
			s.say("Invalid choice. Try again.")
		}

		if err != nil {
			return err
		}
	}
}

type loginRequest struct {
	CardNumber string `validate:"required,numeric,max=19"`
	PIN        string `validate:"required,numeric,min=4,max=12"`
}

func (s *session) customerLogin() error {
	var (
		req loginRequest
		err error
	)

	if req.CardNumber, err = s.prompt("\nEnter card number: "); err != nil {
		return err
	}

	if req.PIN, err = s.prompt("Enter PIN: "); err != nil {
		return err
	}

	if !s.valid(req) {
		s.report(domain.ErrAuthFailure)
		return nil
	}

	account, err := s.accounts.Authenticate(s.ctx, req.CardNumber, req.PIN)
	if err != nil {
		s.report(err)
		return nil
	}

	s.say("\nWelcome! Login successful.")

	return s.customerMenu(account.ID)
}

func (s *session) customerMenu(accountID string) error {
	for {
		s.say("\n===== CUSTOMER MENU =====")
		s.say("1. Withdraw")
		s.say("2. Deposit")
		s.say("3. Transfer")
		s.say("4. Balance")
		s.say("5. Mini Statement")
		s.say("6. Exit")

		choice, err := s.prompt("Select: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.withdraw(accountID)
		case "2":
			err = s.deposit(accountID)
		case "3":
			err = s.transfer(accountID)
		case "4":
			s.balance(accountID)
		case "5":
			s.miniStatement(accountID)
		case "6":
			s.say("Thank you for using ATM!")
			return nil
		default:
			s.say("Invalid choice. Try again.")
		}

		if err != nil {
			return err
		}
	}
}

type amountRequest struct {
	Amount string `validate:"required,money"`
}

// readAmount returns ok=false when the input is not a valid amount.
func (s *session) readAmount(text string) (amount decimal.Decimal, ok bool, err error) {
	var req amountRequest

	if req.Amount, err = s.prompt(text); err != nil {
		return decimal.Zero, false, err
	}

	if !s.valid(req) {
		s.report(domain.ErrInvalidAmount)
		return decimal.Zero, false, nil
	}

	return decimal.RequireFromString(req.Amount), true, nil
}

func (s *session) withdraw(accountID string) error {
	amount, ok, err := s.readAmount("\nEnter amount to withdraw: ")
	if err != nil || !ok {
		return err
	}

	receipt, err := s.atm.Withdraw(s.ctx, accountID, amount)
	if err != nil {
		s.report(err)
		return nil
	}

	s.say("Withdrawal successful. New balance: $%s", receipt.Balance.StringFixed(2))

	return s.offerReceipt(receipt)
}

func (s *session) deposit(accountID string) error {
	amount, ok, err := s.readAmount("\nEnter amount to deposit: ")
	if err != nil || !ok {
		return err
	}

	receipt, err := s.atm.Deposit(s.ctx, accountID, amount)
	if err != nil {
		s.report(err)
		return nil
	}

	s.say("Deposit successful. New balance: $%s", receipt.Balance.StringFixed(2))

	return s.offerReceipt(receipt)
}

type transferRequest struct {
	TargetCard string `validate:"required,numeric,max=19"`
}

func (s *session) transfer(accountID string) error {
	var (
		req transferRequest
		err error
	)

	if req.TargetCard, err = s.prompt("\nEnter target card number: "); err != nil {
		return err
	}

	if !s.valid(req) {
		s.report(domain.ErrReceiverNotFound)
		return nil
	}

	amount, ok, err := s.readAmount("Enter amount to transfer: ")
	if err != nil || !ok {
		return err
	}

	receipt, err := s.atm.Transfer(s.ctx, accountID, req.TargetCard, amount)
	if err != nil {
		s.report(err)
		return nil
	}

	s.say("Transfer successful. New balance: $%s", receipt.Balance.StringFixed(2))

	return s.offerReceipt(receipt)
}

// offerReceipt prints the receipt of a committed operation on request.
// A printing failure leaves the operation committed.
func (s *session) offerReceipt(r domain.Receipt) error {
	answer, err := s.prompt("\nPrint receipt? (yes/no): ")
	if err != nil {
		return err
	}

	switch strings.ToLower(answer) {
	case "yes", "y":
	default:
		return nil
	}

	printed, err := s.atm.PrintReceipt(s.ctx, r.Type, r.Amount, r.Balance)
	if err != nil {
		s.report(err)
		return nil
	}

	fmt.Fprint(s.out, printed.Text)

	return nil
}

func (s *session) balance(accountID string) {
	account, err := s.accounts.Get(s.ctx, accountID)
	if err != nil {
		s.report(err)
		return
	}

	s.say("\n===== YOUR BALANCE =====")
	s.say("Card: %s", account.CardNumber)
	s.say("Balance: $%s", account.Balance.StringFixed(2))
}

func (s *session) miniStatement(accountID string) {
	entries, err := s.accounts.History(s.ctx, accountID, s.historySize, 0)
	if err != nil {
		s.report(err)
		return
	}

	s.say("\n===== MINI STATEMENT =====")

	if len(entries) == 0 {
		s.say("No transactions yet.")
		return
	}

	for _, e := range entries {
		s.say("%s  %-12s %10s", e.CreatedAt.Format(statementTimeFormat), e.Type, e.Amount.StringFixed(2))
	}
}

const statementTimeFormat = "2006-01-02 15:04"

func (s *session) technicianLogin() error {
	code, err := s.prompt("\nEnter technician code: ")
	if err != nil {
		return err
	}

	if code == "" || code != s.technicianCode {
		zerolog.Ctx(s.ctx).Info().Msg("technician login rejected")
		s.say("Invalid technician code!")

		return nil
	}

	zerolog.Ctx(s.ctx).Info().Msg("technician login succeeded")
	s.say("\nWelcome Technician!")

	return s.technicianMenu()
}

func (s *session) technicianMenu() error {
	for {
		s.say("\n===== TECHNICIAN MENU =====")
		s.say("1. View ATM Status")
		s.say("2. Refill Paper")
		s.say("3. Refill Ink")
		s.say("4. Add Cash")
		s.say("5. Collect Cash")
		s.say("6. Update Firmware")
		s.say("7. Exit")

		choice, err := s.prompt("Select: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.deviceStatus()
		case "2":
			err = s.refill("paper", s.atm.RefillPaper)
		case "3":
			err = s.refill("ink", s.atm.RefillInk)
		case "4":
			err = s.moveBanknotes("Cash added", s.atm.AddBanknotes)
		case "5":
			err = s.moveBanknotes("Cash collected", s.atm.CollectBanknotes)
		case "6":
			err = s.updateFirmware()
		case "7":
			s.say("Technician session ended.")
			return nil
		default:
			s.say("Invalid choice. Try again.")
		}

		if err != nil {
			return err
		}
	}
}

func (s *session) deviceStatus() {
	state, err := s.atm.DeviceStatus(s.ctx)
	if err != nil {
		s.report(err)
		return
	}

	fmt.Fprint(s.out, RenderStatus(state))
}

type quantityRequest struct {
	Quantity string `validate:"required,numeric"`
}

// readQuantity parses a whole count. A negative count reports negative and any other
// malformed or out of range input reports errInvalidCount.
func (s *session) readQuantity(text string, negative error) (n int32, invalid, err error) {
	var req quantityRequest

	if req.Quantity, err = s.prompt(text); err != nil {
		return 0, nil, err
	}

	if !s.valid(req) {
		return 0, errInvalidCount, nil
	}

	v, err := strconv.ParseInt(req.Quantity, 10, 32)

	switch {
	case err != nil:
		return 0, errInvalidCount, nil
	case v < 0:
		return 0, negative, nil
	}

	return int32(v), nil, nil
}

func (s *session) refill(supply string, apply func(ctx context.Context, n int32) (domain.DeviceState, error)) error {
	n, invalid, err := s.readQuantity(fmt.Sprintf("Enter amount of %s to add: ", supply), domain.ErrInvalidQuantity)
	if err != nil {
		return err
	}

	if invalid != nil {
		s.report(invalid)
		return nil
	}

	state, err := apply(s.ctx, n)
	if err != nil {
		s.report(err)
		return nil
	}

	name, level := "Paper", state.Paper
	if supply == "ink" {
		name, level = "Ink", state.Ink
	}

	s.say("%s refilled. %s: %d", name, name, level)

	return nil
}

func (s *session) moveBanknotes(done string, apply func(ctx context.Context, notes domain.Banknotes) (domain.DeviceState, error)) error {
	var notes domain.Banknotes

	for _, target := range []struct {
		d     domain.Denomination
		count *int32
	}{
		{domain.Note20, &notes.Notes20},
		{domain.Note50, &notes.Notes50},
		{domain.Note100, &notes.Notes100},
	} {
		n, invalid, err := s.readQuantity(fmt.Sprintf("Enter number of $%d notes: ", target.d), domain.ErrNegativeBanknotes)
		if err != nil {
			return err
		}

		if invalid != nil {
			s.report(invalid)
			return nil
		}

		*target.count = n
	}

	state, err := apply(s.ctx, notes)
	if err != nil {
		s.report(err)
		return nil
	}

	s.say("%s. ATM cash: $%s", done, state.Cash.StringFixed(2))

	return nil
}

type firmwareRequest struct {
	Version string `validate:"required,printascii,max=32"`
}

func (s *session) updateFirmware() error {
	var (
		req firmwareRequest
		err error
	)

	if req.Version, err = s.prompt("Enter new firmware version: "); err != nil {
		return err
	}

	if !s.valid(req) {
		s.say("Invalid firmware version.")
		return nil
	}

	state, err := s.atm.UpdateFirmware(s.ctx, req.Version)
	if err != nil {
		s.report(err)
		return nil
	}

	s.say("Firmware updated to %s.", state.FirmwareVersion)

	return nil
}

// RenderStatus formats the device state for the technician.
func RenderStatus(d domain.DeviceState) string {
	var sb strings.Builder

	sb.WriteString("\n===== ATM STATUS =====\n")
	fmt.Fprintf(&sb, "Cash    : $%s\n", d.Cash.StringFixed(2))
	fmt.Fprintf(&sb, "Paper   : %d\n", d.Paper)
	fmt.Fprintf(&sb, "Ink     : %d\n", d.Ink)
	fmt.Fprintf(&sb, "Firmware: %s\n", d.FirmwareVersion)

	for _, den := range domain.Denominations {
		fmt.Fprintf(&sb, "$%-3d notes: %d\n", den, d.Notes.Count(den))
	}

	return sb.String()
}
