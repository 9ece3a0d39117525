package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeviceNotFound indicates that the device state has not been provisioned.
	ErrDeviceNotFound = errors.New("device state not found")
	// ErrInsufficientATMCash indicates that the ATM does not hold enough cash.
	ErrInsufficientATMCash = errors.New("insufficient atm cash")
	// ErrOutOfPaper indicates that the ATM has no receipt paper left.
	ErrOutOfPaper = errors.New("atm out of paper")
	// ErrOutOfInk indicates that the ATM has no ink left.
	ErrOutOfInk = errors.New("atm out of ink")
	// ErrSupplyShortage is matched by every SupplyShortageError.
	ErrSupplyShortage = errors.New("supply shortage")
	// ErrNegativeBanknotes indicates a negative banknote count in a technician request.
	ErrNegativeBanknotes = errors.New("negative banknote count")
	// ErrNoBanknotes indicates a technician request without any banknote.
	ErrNoBanknotes = errors.New("no banknotes")
	// ErrInsufficientBanknotes is matched by every BanknoteShortageError.
	ErrInsufficientBanknotes = errors.New("insufficient banknotes")
	// ErrInvalidQuantity indicates a negative consumable quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrCapacityExceeded indicates that a refill or banknote load would overflow a device counter.
	ErrCapacityExceeded = errors.New("device capacity exceeded")
)

// Denomination is a banknote value class.
type Denomination int32

// Denominations tracked by the ATM.
const (
	Note20  Denomination = 20
	Note50  Denomination = 50
	Note100 Denomination = 100
)

// Denominations holds all tracked denominations in ascending order.
var Denominations = []Denomination{Note20, Note50, Note100}

// Value returns the monetary value of one note.
func (d Denomination) Value() decimal.Decimal {
	return decimal.NewFromInt32(int32(d))
}

// Banknotes holds a count per denomination.
type Banknotes struct {
	Notes20  int32 `json:"notes_20"`
	Notes50  int32 `json:"notes_50"`
	Notes100 int32 `json:"notes_100"`
}

// Count returns the number of notes of the given denomination.
func (b Banknotes) Count(d Denomination) int32 {
	switch d {
	case Note20:
		return b.Notes20
	case Note50:
		return b.Notes50
	case Note100:
		return b.Notes100
	}

	return 0
}

// Total returns the weighted sum of the notes.
func (b Banknotes) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range Denominations {
		total = total.Add(d.Value().Mul(decimal.NewFromInt32(b.Count(d))))
	}

	return total
}

// DeviceState holds the ATM cash and consumables inventory.
type DeviceState struct {
	Cash            decimal.Decimal `json:"cash"`
	Notes           Banknotes       `json:"notes"`
	Paper           int32           `json:"paper"`
	Ink             int32           `json:"ink"`
	FirmwareVersion string          `json:"firmware_version"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Supply names a receipt consumable shortage.
type Supply string

// Supply shortages reported by receipt printing.
const (
	SupplyPaper Supply = "PAPER"
	SupplyInk   Supply = "INK"
	SupplyBoth  Supply = "BOTH"
)

// SupplyShortageError reports which receipt consumables are exhausted.
type SupplyShortageError struct {
	Supply Supply
}

func (e *SupplyShortageError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSupplyShortage, strings.ToLower(string(e.Supply)))
}

// Is makes errors.Is(err, ErrSupplyShortage) hold.
func (e *SupplyShortageError) Is(target error) bool {
	return target == ErrSupplyShortage
}

// BanknoteShortageError reports a collection request exceeding the stock of a denomination.
type BanknoteShortageError struct {
	Denomination Denomination
	Requested    int32
	Available    int32
}

func (e *BanknoteShortageError) Error() string {
	return fmt.Sprintf("%s: %d notes of %d requested, %d available",
		ErrInsufficientBanknotes, e.Requested, e.Denomination, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientBanknotes) hold.
func (e *BanknoteShortageError) Is(target error) bool {
	return target == ErrInsufficientBanknotes
}
