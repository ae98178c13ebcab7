package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/invoicer/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.LineItem
		discount string
		subtotal string
		total    string
	}{
		{
			name:     "empty items",
			items:    nil,
			discount: "0",
			subtotal: "0",
			total:    "0",
		},
		{
			name:     "single item with discount",
			items:    []models.LineItem{{Description: "Design", Quantity: 2, Rate: d("500")}},
			discount: "100",
			subtotal: "1000",
			total:    "900",
		},
		{
			name: "stale amounts are discarded",
			items: []models.LineItem{
				{Quantity: 3, Rate: d("0.1"), Amount: d("999")},
				{Quantity: 1, Rate: d("0.2"), Amount: d("-5")},
			},
			discount: "0",
			subtotal: "0.5",
			total:    "0.5",
		},
		{
			name:     "negative discount is not clamped",
			items:    []models.LineItem{{Quantity: 1, Rate: d("10")}},
			discount: "-5",
			subtotal: "10",
			total:    "15",
		},
		{
			name:     "total may go negative",
			items:    []models.LineItem{{Quantity: 1, Rate: d("10")}},
			discount: "25.50",
			subtotal: "10",
			total:    "-15.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, d(tt.discount))

			assert.True(t, got.Subtotal.Equal(d(tt.subtotal)), "subtotal: got %s want %s", got.Subtotal, tt.subtotal)
			assert.True(t, got.Total.Equal(d(tt.total)), "total: got %s want %s", got.Total, tt.total)
			assert.Len(t, got.Items, len(tt.items))
			for i, item := range got.Items {
				want := item.Rate.Mul(decimal.NewFromInt(int64(item.Quantity)))
				assert.True(t, item.Amount.Equal(want), "item %d amount: got %s want %s", i, item.Amount, want)
			}
		})
	}
}

func TestComputeTotals_DoesNotModifyInput(t *testing.T) {
	items := []models.LineItem{{Quantity: 2, Rate: d("3"), Amount: d("1")}}

	ComputeTotals(items, decimal.Zero)

	assert.True(t, items[0].Amount.Equal(d("1")))
}

func TestNumberFormat(t *testing.T) {
	issued := mustDate(t, "2024-03-05")

	assert.Equal(t, "INV-202403-0007", DefaultNumberFormat.Format(issued, 7))
	assert.Equal(t, "202403-12", NumberFormat{Width: 2}.Format(issued, 12))
	assert.Equal(t, "X-202403-12345", NumberFormat{Prefix: "X", Width: 3}.Format(issued, 12345))
}
