// Package inventory enforces the physical resource rules of the ATM device state.
//
// Functions mutate the given state in memory only. Callers persist the result
// inside a ledger transaction.
package inventory

import (
	"math"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/shopspring/decimal"
)

// Supplies reports which receipt consumables are in stock.
type Supplies struct {
	Paper bool
	Ink   bool
}

// Shortage returns the missing supply, or false when both are in stock.
func (s Supplies) Shortage() (domain.Supply, bool) {
	switch {
	case !s.Paper && !s.Ink:
		return domain.SupplyBoth, true
	case !s.Paper:
		return domain.SupplyPaper, true
	case !s.Ink:
		return domain.SupplyInk, true
	}

	return "", false
}

// HasSufficientCash reports whether the device holds at least amount.
func HasSufficientCash(d *domain.DeviceState, amount decimal.Decimal) bool {
	return d.Cash.GreaterThanOrEqual(amount)
}

// CheckSupplies reports whether paper and ink are in stock.
func CheckSupplies(d *domain.DeviceState) Supplies {
	return Supplies{Paper: d.Paper > 0, Ink: d.Ink > 0}
}

// ConsumeReceipt takes one unit of paper and ink.
// Nothing is taken unless both are in stock.
func ConsumeReceipt(d *domain.DeviceState) error {
	if supply, short := CheckSupplies(d).Shortage(); short {
		return &domain.SupplyShortageError{Supply: supply}
	}

	d.Paper--
	d.Ink--

	return nil
}

// AddBanknotes loads notes into the device and raises the cash total by their value.
func AddBanknotes(d *domain.DeviceState, notes domain.Banknotes) error {
	if negative(notes) {
		return domain.ErrNegativeBanknotes
	}

	if notes == (domain.Banknotes{}) {
		return domain.ErrNoBanknotes
	}

	for _, denom := range domain.Denominations {
		if !fits(d.Notes.Count(denom), notes.Count(denom)) {
			return domain.ErrCapacityExceeded
		}
	}

	d.Notes.Notes20 += notes.Notes20
	d.Notes.Notes50 += notes.Notes50
	d.Notes.Notes100 += notes.Notes100
	d.Cash = d.Cash.Add(notes.Total())

	return nil
}

// RemoveBanknotes takes notes out of the device and lowers the cash total by their value.
// Every denomination is checked against its stock before anything changes.
func RemoveBanknotes(d *domain.DeviceState, notes domain.Banknotes) error {
	if negative(notes) {
		return domain.ErrNegativeBanknotes
	}

	for _, denom := range domain.Denominations {
		requested, available := notes.Count(denom), d.Notes.Count(denom)
		if requested > available {
			return &domain.BanknoteShortageError{
				Denomination: denom,
				Requested:    requested,
				Available:    available,
			}
		}
	}

	d.Notes.Notes20 -= notes.Notes20
	d.Notes.Notes50 -= notes.Notes50
	d.Notes.Notes100 -= notes.Notes100
	d.Cash = d.Cash.Sub(notes.Total())

	return nil
}

// DebitCash lowers the aggregate cash total. Denomination counts are left as is.
func DebitCash(d *domain.DeviceState, amount decimal.Decimal) error {
	if !HasSufficientCash(d, amount) {
		return domain.ErrInsufficientATMCash
	}

	d.Cash = d.Cash.Sub(amount)

	return nil
}

// CreditCash raises the aggregate cash total. Denomination counts are left as is.
func CreditCash(d *domain.DeviceState, amount decimal.Decimal) {
	d.Cash = d.Cash.Add(amount)
}

// RefillPaper adds n sheets of paper.
func RefillPaper(d *domain.DeviceState, n int32) error {
	if n < 0 {
		return domain.ErrInvalidQuantity
	}

	if !fits(d.Paper, n) {
		return domain.ErrCapacityExceeded
	}

	d.Paper += n

	return nil
}

// RefillInk adds n units of ink.
func RefillInk(d *domain.DeviceState, n int32) error {
	if n < 0 {
		return domain.ErrInvalidQuantity
	}

	if !fits(d.Ink, n) {
		return domain.ErrCapacityExceeded
	}

	d.Ink += n

	return nil
}

// SetFirmware overwrites the firmware version.
func SetFirmware(d *domain.DeviceState, version string) {
	d.FirmwareVersion = version
}

// Balanced reports whether the cash total equals the value of the tracked notes.
func Balanced(d *domain.DeviceState) bool {
	return d.Cash.Equal(d.Notes.Total())
}

func negative(n domain.Banknotes) bool {
	return n.Notes20 < 0 || n.Notes50 < 0 || n.Notes100 < 0
}

// fits reports whether n more units can be added to current without overflowing the counter.
func fits(current, n int32) bool {
	return int64(current)+int64(n) <= math.MaxInt32
}
