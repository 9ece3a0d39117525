package test

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pet-atm/internal/accountrepo"
	"github.com/go-petr/pet-atm/internal/devicerepo"
	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/entryrepo"
	"github.com/go-petr/pet-atm/pkg/dbpkg"
	"github.com/go-petr/pet-atm/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// SeedAccount creates Account with the given balance inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, balance decimal.Decimal) domain.Account {
	t.Helper()

	arg := domain.CreateAccountParams{
		ID:         randompkg.AccountID(),
		CardNumber: randompkg.CardNumber(),
		PIN:        randompkg.PIN(),
		Balance:    balance,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	account, err := accountrepo.NewRepoPGS(tx).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedAccountWith1000Balance creates Account with 1000 on balance inside a test transaction.
func SeedAccountWith1000Balance(t *testing.T, tx dbpkg.SQLInterface) domain.Account {
	t.Helper()

	return SeedAccount(t, tx, decimal.NewFromInt(1000))
}

// SeedDevice stores the device state inside a test transaction.
func SeedDevice(t *testing.T, tx dbpkg.SQLInterface, d domain.DeviceState) domain.DeviceState {
	t.Helper()

	got, err := devicerepo.NewRepoPGS(tx).Create(context.Background(), d)
	if err != nil {
		t.Fatalf("deviceRepo.Create(context.Background(), %+v) returned error: %v", d, err)
	}

	return got
}

// SeedEntry creates Entry inside a test transaction.
func SeedEntry(t *testing.T, tx dbpkg.SQLInterface, accountID string, amount decimal.Decimal) domain.Entry {
	t.Helper()

	arg := domain.CreateEntryParams{
		AccountID: accountID,
		Amount:    amount,
		Type:      domain.EntryDeposit,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if amount.IsNegative() {
		arg.Type = domain.EntryWithdraw
	}

	entry, err := entryrepo.NewRepoPGS(tx).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("entryRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return entry
}

// SeedEntries creates Entries with random amounts inside a test transaction.
func SeedEntries(t *testing.T, tx dbpkg.SQLInterface, accountID string, count int) []domain.Entry {
	t.Helper()

	entries := make([]domain.Entry, count)

	for i := range entries {
		entries[i] = SeedEntry(t, tx, accountID, randompkg.MoneyAmountBetween(-1000, 1000))
	}

	return entries
}
