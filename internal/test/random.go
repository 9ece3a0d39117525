// Package test provides shared test helpers.
package test

import (
	"time"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/randompkg"
)

// RandomAccount returns random account with a balance between 1000 and 10000.
func RandomAccount() domain.Account {
	now := time.Now().UTC().Truncate(time.Second)

	return domain.Account{
		ID:         randompkg.AccountID(),
		CardNumber: randompkg.CardNumber(),
		PIN:        randompkg.PIN(),
		Balance:    randompkg.MoneyAmountBetween(1000, 10_000),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// RandomEntries returns n random entries of the account, newest first.
func RandomEntries(accountID string, n int) []domain.Entry {
	entries := make([]domain.Entry, n)

	for i := range entries {
		entries[i] = domain.Entry{
			ID:        int64(n - i),
			AccountID: accountID,
			Amount:    randompkg.MoneyAmountBetween(-1000, 1000),
			Type:      domain.EntryDeposit,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	return entries
}
