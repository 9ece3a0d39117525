// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the account with the given id already exists.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrCardAlreadyExists indicates that the card number is already assigned to an account.
	ErrCardAlreadyExists = errors.New("card number already exists")
	// ErrAuthFailure indicates that no account matches the given card and PIN.
	ErrAuthFailure = errors.New("invalid card or pin")
	// ErrInsufficientFunds indicates that the account balance cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account holds customer balance and credentials.
type Account struct {
	ID             string          `json:"id"`
	CardNumber     string          `json:"card_number"`
	PIN            string          `json:"-"`
	Balance        decimal.Decimal `json:"balance"`
	FailedAttempts int32           `json:"failed_attempts"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateAccountParams is the input data to provision an account.
type CreateAccountParams struct {
	ID         string          `json:"id"`
	CardNumber string          `json:"card_number"`
	PIN        string          `json:"pin"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
}
