// Package ledgerrepo runs ledger transactions against a SQL database.
package ledgerrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/pet-atm/internal/accountrepo"
	"github.com/go-petr/pet-atm/internal/devicerepo"
	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/entryrepo"
	"github.com/go-petr/pet-atm/internal/ledger"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates ledger transactions over the account, device and entry repositories.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS with connection to start transactions.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{conn: conn}
}

var _ ledger.Store = (*RepoPGS)(nil)

// ExecTx runs fn within a single database transaction.
// The transaction is committed only when fn returns nil.
func (r *RepoPGS) ExecTx(ctx context.Context, fn func(q ledger.Queries) error) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errors.Wrap(err, "ledgerrepo: begin tx")
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	if err := fn(newQueries(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errors.Wrap(err, "ledgerrepo: commit tx")
	}

	return nil
}

// Provision stores the given accounts and device state unless an account already exists.
// It reports whether anything was stored.
func (r *RepoPGS) Provision(ctx context.Context, accounts []domain.CreateAccountParams, device domain.DeviceState) (bool, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return false, errors.Wrap(err, "ledgerrepo: begin tx")
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)

	n, err := accountRepo.Count(ctx)
	if err != nil {
		return false, err
	}

	if n > 0 {
		return false, nil
	}

	for _, arg := range accounts {
		if _, err := accountRepo.Create(ctx, arg); err != nil {
			return false, err
		}
	}

	if _, err := devicerepo.NewRepoPGS(tx).Create(ctx, device); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return false, errors.Wrap(err, "ledgerrepo: commit tx")
	}

	return true, nil
}

type queries struct {
	accounts *accountrepo.RepoPGS
	device   *devicerepo.RepoPGS
	entries  *entryrepo.RepoPGS
}

func newQueries(tx *sql.Tx) *queries {
	return &queries{
		accounts: accountrepo.NewRepoPGS(tx),
		device:   devicerepo.NewRepoPGS(tx),
		entries:  entryrepo.NewRepoPGS(tx),
	}
}

func (q *queries) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	return q.accounts.Get(ctx, id)
}

func (q *queries) GetAccountByCard(ctx context.Context, cardNumber string) (domain.Account, error) {
	return q.accounts.GetByCard(ctx, cardNumber)
}

func (q *queries) UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) (domain.Account, error) {
	return q.accounts.UpdateBalance(ctx, id, balance, updatedAt)
}

func (q *queries) GetDevice(ctx context.Context) (domain.DeviceState, error) {
	return q.device.Get(ctx)
}

func (q *queries) UpdateDevice(ctx context.Context, d domain.DeviceState) (domain.DeviceState, error) {
	return q.device.Update(ctx, d)
}

func (q *queries) CreateEntry(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, error) {
	return q.entries.Create(ctx, arg)
}
