package invoice

import (
	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// Totals is the result of recomputing an invoice's derived amounts
type Totals struct {
	Items    []models.LineItem
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals re-derives every item amount as quantity x rate, sums them
// into the subtotal and subtracts discount. Caller-supplied amounts are
// discarded. A negative discount is not clamped, and total may go below zero.
func ComputeTotals(items []models.LineItem, discount decimal.Decimal) Totals {
	out := make([]models.LineItem, len(items))
	subtotal := decimal.Zero

	for i, item := range items {
		item.Amount = item.Rate.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(item.Amount)
		out[i] = item
	}

	return Totals{
		Items:    out,
		Subtotal: subtotal,
		Total:    subtotal.Sub(discount),
	}
}

// ApplyTotals overwrites the derived fields of inv in place
func ApplyTotals(inv *models.Invoice) {
	totals := ComputeTotals(inv.Items, inv.Discount)
	inv.Items = totals.Items
	inv.Subtotal = totals.Subtotal
	inv.Total = totals.Total
}
