// Package ledger defines the record store the transaction engine runs its atomic units against.
package ledger

import (
	"context"
	"time"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/shopspring/decimal"
)

// Queries provides the reads and writes available inside one ledger transaction.
type Queries interface {
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	GetAccountByCard(ctx context.Context, cardNumber string) (domain.Account, error)
	UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) (domain.Account, error)
	GetDevice(ctx context.Context) (domain.DeviceState, error)
	UpdateDevice(ctx context.Context, d domain.DeviceState) (domain.DeviceState, error)
	CreateEntry(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, error)
}

// Store runs fn inside a transaction.
//
// Every write made through q is committed when fn returns nil and discarded otherwise.
// The error returned by fn is passed back unchanged.
type Store interface {
	ExecTx(ctx context.Context, fn func(q Queries) error) error
}
