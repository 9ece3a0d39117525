// Package accountservice manages business logic layer of accounts.
package accountservice

//go:generate mockgen -source service.go -destination service_mock.go -package accountservice

import (
	"context"
	"errors"
	"time"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AccountRepo provides data access layer interface needed by account service layer.
type AccountRepo interface {
	Get(ctx context.Context, id string) (domain.Account, error)
	GetByCredentials(ctx context.Context, cardNumber, pin string) (domain.Account, error)
	ResetFailedAttempts(ctx context.Context, id string, updatedAt time.Time) (domain.Account, error)
}

// EntryRepo provides access to the audit entries of accounts.
type EntryRepo interface {
	List(ctx context.Context, accountID string, limit, offset int32) ([]domain.Entry, error)
}

// Service facilitates account service layer logic.
type Service struct {
	accounts AccountRepo
	entries  EntryRepo
	now      func() time.Time
}

// New returns account service struct to manage account bussines logic.
func New(ar AccountRepo, er EntryRepo) *Service {
	return &Service{
		accounts: ar,
		entries:  er,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Authenticate returns the account holding the card with the given PIN and resets its
// failed login counter.
func (s *Service) Authenticate(ctx context.Context, cardNumber, pin string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.accounts.GetByCredentials(ctx, cardNumber, pin)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			l.Info().Str("card", maskCard(cardNumber)).Msg("login rejected")
			return domain.Account{}, domain.ErrAuthFailure
		}

		return domain.Account{}, errorspkg.OperationFailed("authenticate", err)
	}

	account, err = s.accounts.ResetFailedAttempts(ctx, account.ID, s.now())
	if err != nil {
		return domain.Account{}, errorspkg.OperationFailed("authenticate", err)
	}

	l.Info().Str("account_id", account.ID).Msg("login succeeded")

	return account, nil
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.accounts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		return domain.Account{}, errorspkg.OperationFailed("get account", err)
	}

	return account, nil
}

// History returns the audit entries of the account, newest first.
func (s *Service) History(ctx context.Context, id string, limit, offset int32) ([]domain.Entry, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, id, limit, offset)
	if err != nil {
		return nil, errorspkg.OperationFailed("account history", err)
	}

	return entries, nil
}

// HasFunds reports whether the account balance covers amount.
func HasFunds(a domain.Account, amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Credit raises the account balance by amount.
func Credit(a *domain.Account, amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Debit lowers the account balance by amount.
func Debit(a *domain.Account, amount decimal.Decimal) error {
	if !HasFunds(*a, amount) {
		return domain.ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)

	return nil
}

func maskCard(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return "****"
	}

	return "****" + cardNumber[len(cardNumber)-4:]
}
