package consoledelivery

import (
	"errors"
	"fmt"

	"github.com/go-petr/pet-atm/internal/domain"
)

// errInvalidCount reports count input that is not a whole number or does not fit a device counter.
var errInvalidCount = errors.New("invalid count input")

var messages = []struct {
	err error
	msg string
}{
	{domain.ErrInvalidAmount, "Invalid amount. Please enter a positive number."},
	{domain.ErrInsufficientFunds, "Insufficient balance."},
	{domain.ErrInsufficientATMCash, "ATM has insufficient cash."},
	{domain.ErrOutOfPaper, "ATM is out of paper."},
	{domain.ErrOutOfInk, "ATM is out of ink."},
	{domain.ErrReceiverNotFound, "Target account not found."},
	{domain.ErrSameAccount, "Cannot transfer to your own account."},
	{domain.ErrAccountNotFound, "Account not found."},
	{domain.ErrAuthFailure, "Login failed! Invalid card or PIN."},
	{domain.ErrNegativeBanknotes, "Invalid note count. Please enter zero or a positive whole number."},
	{domain.ErrNoBanknotes, "No banknotes entered."},
	{domain.ErrInvalidQuantity, "Invalid quantity. Please enter zero or a positive whole number."},
	{domain.ErrCapacityExceeded, "ATM capacity exceeded. Please enter a smaller quantity."},
	{domain.ErrDeviceNotFound, "ATM is not provisioned."},
	{errInvalidCount, "Invalid input. Please enter a whole number up to 2147483647."},
}

const operationFailedMsg = "Operation failed. Please try again later."

// message returns the console text for err.
func message(err error) string {
	var shortage *domain.SupplyShortageError
	if errors.As(err, &shortage) {
		switch shortage.Supply {
		case domain.SupplyPaper:
			return "Sorry, we cannot print the receipt. The ATM is out of paper."
		case domain.SupplyInk:
			return "Sorry, we cannot print the receipt. The ATM is out of ink."
		default:
			return "Sorry, we cannot print the receipt. The ATM is out of paper and ink."
		}
	}

	var notes *domain.BanknoteShortageError
	if errors.As(err, &notes) {
		return fmt.Sprintf("Not enough $%d notes. Available: %d", notes.Denomination, notes.Available)
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return operationFailedMsg
}
