package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a non-positive or sub-cent amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrReceiverNotFound indicates that no account holds the transfer target card.
	ErrReceiverNotFound = errors.New("receiver not found")
	// ErrSameAccount indicates a transfer to the sender's own account.
	ErrSameAccount = errors.New("transfer to the same account")
)

// ReceiptType is the operation printed on a receipt.
type ReceiptType string

// Receipt types.
const (
	ReceiptWithdraw ReceiptType = "WITHDRAW"
	ReceiptDeposit  ReceiptType = "DEPOSIT"
	ReceiptTransfer ReceiptType = "TRANSFER"
)

// Receipt is the result of a committed monetary operation.
type Receipt struct {
	Type      ReceiptType     `json:"type"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Entries   []Entry         `json:"entries"`
	CreatedAt time.Time       `json:"created_at"`
}

// PrintedReceipt is a receipt that consumed paper and ink.
type PrintedReceipt struct {
	Type      ReceiptType     `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	PrintedAt time.Time       `json:"printed_at"`
	Text      string          `json:"text"`
}

// IsFailure reports whether err is an expected business outcome rather than a fault.
func IsFailure(err error) bool {
	for _, target := range failures {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

var failures = []error{
	ErrInvalidAmount,
	ErrInsufficientFunds,
	ErrInsufficientATMCash,
	ErrOutOfPaper,
	ErrOutOfInk,
	ErrReceiverNotFound,
	ErrSameAccount,
	ErrAccountNotFound,
	ErrAuthFailure,
	ErrSupplyShortage,
	ErrNegativeBanknotes,
	ErrNoBanknotes,
	ErrInsufficientBanknotes,
	ErrInvalidQuantity,
	ErrCapacityExceeded,
}
