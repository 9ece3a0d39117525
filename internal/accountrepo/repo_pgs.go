// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/dbpkg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const columns = `id, card_number, pin, balance, failed_attempts, created_at, updated_at`

func scan(row interface{ Scan(...interface{}) error }) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.CardNumber,
		&a.PIN,
		&a.Balance,
		&a.FailedAttempts,
		dbpkg.TimeScanner(&a.CreatedAt),
		dbpkg.TimeScanner(&a.UpdatedAt),
	)

	return a, err
}

// translate maps driver errors to domain errors and wraps the rest.
func translate(err error, op string) error {
	if err == sql.ErrNoRows {
		return domain.ErrAccountNotFound
	}

	switch dbpkg.Constraint(err) {
	case "accounts_balance_check":
		return domain.ErrInsufficientFunds
	case "accounts_card_number_key":
		return domain.ErrCardAlreadyExists
	case "accounts_pkey", "accounts_id_key":
		return domain.ErrAccountAlreadyExists
	}

	return errors.Wrap(err, op)
}

const createQuery = `
INSERT INTO
    accounts (id, card_number, pin, balance, failed_attempts, created_at, updated_at)
VALUES
    ($1, $2, $3, $4, 0, $5, $5)
RETURNING ` + columns

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.ID, arg.CardNumber, arg.PIN, arg.Balance, arg.CreatedAt)

	a, err := scan(row)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, translate(err, "accountrepo: create")
	}

	return a, nil
}

const getQuery = `
SELECT ` + columns + `
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, getQuery, id)

	a, err := scan(row)
	if err != nil {
		if err != sql.ErrNoRows {
			zerolog.Ctx(ctx).Error().Err(err).Send()
		}

		return domain.Account{}, translate(err, "accountrepo: get")
	}

	return a, nil
}

const getByCardQuery = `
SELECT ` + columns + `
FROM accounts
WHERE card_number = $1
`

// GetByCard returns the account holding the given card.
func (r *RepoPGS) GetByCard(ctx context.Context, cardNumber string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, getByCardQuery, cardNumber)

	a, err := scan(row)
	if err != nil {
		if err != sql.ErrNoRows {
			zerolog.Ctx(ctx).Error().Err(err).Send()
		}

		return domain.Account{}, translate(err, "accountrepo: get by card")
	}

	return a, nil
}

const getByCredentialsQuery = `
SELECT ` + columns + `
FROM accounts
WHERE card_number = $1 AND pin = $2
`

// GetByCredentials returns the account holding the card with the given PIN.
func (r *RepoPGS) GetByCredentials(ctx context.Context, cardNumber, pin string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, getByCredentialsQuery, cardNumber, pin)

	a, err := scan(row)
	if err != nil {
		if err != sql.ErrNoRows {
			zerolog.Ctx(ctx).Error().Err(err).Send()
		}

		return domain.Account{}, translate(err, "accountrepo: get by credentials")
	}

	return a, nil
}

const resetFailedAttemptsQuery = `
UPDATE accounts
SET failed_attempts = 0, updated_at = $2
WHERE id = $1
RETURNING ` + columns

// ResetFailedAttempts zeroes the failed login counter of the account and returns it.
func (r *RepoPGS) ResetFailedAttempts(ctx context.Context, id string, updatedAt time.Time) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, resetFailedAttemptsQuery, id, updatedAt)

	a, err := scan(row)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, translate(err, "accountrepo: reset failed attempts")
	}

	return a, nil
}

const updateBalanceQuery = `
UPDATE accounts
SET balance = $2, updated_at = $3
WHERE id = $1
RETURNING ` + columns

// UpdateBalance sets the account's balance and returns the changed account.
func (r *RepoPGS) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateBalanceQuery, id, balance, updatedAt)

	a, err := scan(row)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, translate(err, "accountrepo: update balance")
	}

	return a, nil
}

const countQuery = `SELECT COUNT(*) FROM accounts`

// Count returns the number of provisioned accounts.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	var n int64

	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return 0, errors.Wrap(err, "accountrepo: count")
	}

	return n, nil
}
