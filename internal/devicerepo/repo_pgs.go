// Package devicerepo manages repository layer of the ATM device state.
package devicerepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/dbpkg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates device state repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns device RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const columns = `cash, paper, ink, firmware_version, notes_20, notes_50, notes_100, updated_at`

func scan(row *sql.Row) (domain.DeviceState, error) {
	var d domain.DeviceState

	err := row.Scan(
		&d.Cash,
		&d.Paper,
		&d.Ink,
		&d.FirmwareVersion,
		&d.Notes.Notes20,
		&d.Notes.Notes50,
		&d.Notes.Notes100,
		dbpkg.TimeScanner(&d.UpdatedAt),
	)

	return d, err
}

func translate(err error, op string) error {
	if err == sql.ErrNoRows {
		return domain.ErrDeviceNotFound
	}

	switch dbpkg.Constraint(err) {
	case "device_state_cash_check":
		return domain.ErrInsufficientATMCash
	case "device_state_notes_check":
		return domain.ErrInsufficientBanknotes
	}

	return errors.Wrap(err, op)
}

const createQuery = `
INSERT INTO
    device_state (id, cash, paper, ink, firmware_version, notes_20, notes_50, notes_100, updated_at)
VALUES
    (1, $1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns

// Create stores the singleton device state and then returns it.
func (r *RepoPGS) Create(ctx context.Context, d domain.DeviceState) (domain.DeviceState, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		d.Cash, d.Paper, d.Ink, d.FirmwareVersion,
		d.Notes.Notes20, d.Notes.Notes50, d.Notes.Notes100, d.UpdatedAt)

	got, err := scan(row)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.DeviceState{}, translate(err, "devicerepo: create")
	}

	return got, nil
}

const getQuery = `
SELECT ` + columns + `
FROM device_state
WHERE id = 1
`

// Get returns the device state.
func (r *RepoPGS) Get(ctx context.Context) (domain.DeviceState, error) {
	l := zerolog.Ctx(ctx)

	d, err := scan(r.db.QueryRowContext(ctx, getQuery))
	if err != nil {
		l.Error().Err(err).Send()
		return domain.DeviceState{}, translate(err, "devicerepo: get")
	}

	return d, nil
}

const updateQuery = `
UPDATE device_state
SET cash = $1, paper = $2, ink = $3, firmware_version = $4,
    notes_20 = $5, notes_50 = $6, notes_100 = $7, updated_at = $8
WHERE id = 1
RETURNING ` + columns

// Update overwrites the device state and returns it.
func (r *RepoPGS) Update(ctx context.Context, d domain.DeviceState) (domain.DeviceState, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		d.Cash, d.Paper, d.Ink, d.FirmwareVersion,
		d.Notes.Notes20, d.Notes.Notes50, d.Notes.Notes100, d.UpdatedAt)

	got, err := scan(row)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.DeviceState{}, translate(err, "devicerepo: update")
	}

	return got, nil
}
