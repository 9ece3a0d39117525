package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType tags an audit entry.
type EntryType string

// Entry types written by the transaction engine.
const (
	EntryDeposit     EntryType = "DEPOSIT"
	EntryWithdraw    EntryType = "WITHDRAW"
	EntryTransferOut EntryType = "TRANSFER_OUT"
	EntryTransferIn  EntryType = "TRANSFER_IN"
)

// Entry holds balance change data for an account.
type Entry struct {
	ID        int64           `json:"id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"` // negative when money leaves the account
	Type      EntryType       `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateEntryParams is the input data to append an audit entry.
type CreateEntryParams struct {
	AccountID string
	Amount    decimal.Decimal
	Type      EntryType
	CreatedAt time.Time
}
