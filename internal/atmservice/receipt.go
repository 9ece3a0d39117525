package atmservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/inventory"
	"github.com/shopspring/decimal"
)

// ReceiptTimeFormat is the layout of the receipt date line.
const ReceiptTimeFormat = "2006-01-02 15:04"

// PrintReceipt consumes one unit of paper and ink and renders the receipt.
//
// It runs in its own transaction. A supply shortage is reported as a
// *domain.SupplyShortageError and leaves the committed monetary operation as is.
func (s *Service) PrintReceipt(ctx context.Context, t domain.ReceiptType, amount, balance decimal.Decimal) (domain.PrintedReceipt, error) {
	state, err := s.updateDevice(ctx, "print receipt", inventory.ConsumeReceipt)
	if err != nil {
		return domain.PrintedReceipt{}, err
	}

	printed := domain.PrintedReceipt{
		Type:      t,
		Amount:    amount,
		Balance:   balance,
		PrintedAt: state.UpdatedAt,
	}
	printed.Text = RenderReceipt(printed)

	return printed, nil
}

// RenderReceipt formats the receipt as printed by the device.
func RenderReceipt(r domain.PrintedReceipt) string {
	var sb strings.Builder

	sb.WriteString("--------- RECEIPT ---------\n")
	fmt.Fprintf(&sb, "Type   : %s\n", r.Type)
	fmt.Fprintf(&sb, "Amount : %s\n", r.Amount.StringFixed(2))
	fmt.Fprintf(&sb, "Balance: %s\n", r.Balance.StringFixed(2))
	fmt.Fprintf(&sb, "Date   : %s\n", r.PrintedAt.Format(ReceiptTimeFormat))
	sb.WriteString("---------------------------\n")

	return sb.String()
}
