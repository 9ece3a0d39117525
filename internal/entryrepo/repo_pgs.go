// Package entryrepo manages repository layer of transaction entries.
package entryrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/dbpkg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrEntryNotFound indicates that the entry is not found.
var ErrEntryNotFound = errors.New("entry not found")

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    transactions (account_id, amount, type, created_at)
VALUES
    ($1, $2, $3, $4)
RETURNING id, account_id, amount, type, created_at
`

// Create creates the entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.AccountID, arg.Amount, string(arg.Type), arg.CreatedAt)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Amount,
		&e.Type,
		dbpkg.TimeScanner(&e.CreatedAt),
	)

	if err != nil {
		l.Error().Err(err).Send()

		switch dbpkg.Constraint(err) {
		case "transactions_account_id_fkey", dbpkg.ConstraintForeignKey:
			return domain.Entry{}, domain.ErrAccountNotFound
		}

		return domain.Entry{}, errors.Wrap(err, "entryrepo: create")
	}

	return e, nil
}

const getQuery = `
SELECT id, account_id, amount, type, created_at FROM transactions
WHERE id = $1
`

// Get returns the entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Entry, error) {
	row := r.db.QueryRowContext(ctx, getQuery, id)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Amount,
		&e.Type,
		dbpkg.TimeScanner(&e.CreatedAt),
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Entry{}, ErrEntryNotFound
		}

		zerolog.Ctx(ctx).Error().Err(err).Send()

		return domain.Entry{}, errors.Wrap(err, "entryrepo: get")
	}

	return e, nil
}

const listQuery = `
SELECT id, account_id, amount, type, created_at FROM transactions
WHERE account_id = $1
ORDER BY id DESC
LIMIT $2 OFFSET $3
`

// List returns the specified number of entries for the given accountID, newest first.
func (r *RepoPGS) List(ctx context.Context, accountID string, limit, offset int32) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, accountID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errors.Wrap(err, "entryrepo: list")
	}
	defer rows.Close()

	items := []domain.Entry{}

	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.Amount,
			&e.Type,
			dbpkg.TimeScanner(&e.CreatedAt),
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errors.Wrap(err, "entryrepo: scan")
		}

		items = append(items, e)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errors.Wrap(err, "entryrepo: close rows")
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errors.Wrap(err, "entryrepo: rows")
	}

	return items, nil
}
