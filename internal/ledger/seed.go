package ledger

import (
	"time"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/shopspring/decimal"
)

// DemoAccounts returns the accounts provisioned on a fresh installation.
func DemoAccounts(now time.Time) []domain.CreateAccountParams {
	return []domain.CreateAccountParams{
		{ID: "ACC001", CardNumber: "1111", PIN: "1111", Balance: decimal.NewFromInt(5000), CreatedAt: now},
		{ID: "ACC002", CardNumber: "2222", PIN: "2222", Balance: decimal.NewFromInt(3000), CreatedAt: now},
	}
}

// DemoDevice returns the device state provisioned on a fresh installation.
func DemoDevice(now time.Time) domain.DeviceState {
	notes := domain.Banknotes{Notes20: 60, Notes50: 56, Notes100: 60}

	return domain.DeviceState{
		Cash:            notes.Total(),
		Notes:           notes,
		Paper:           20,
		Ink:             20,
		FirmwareVersion: "v1.0",
		UpdatedAt:       now,
	}
}
