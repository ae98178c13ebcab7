package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db, SeedDefaults{Currency: "EUR"}); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.GetContext(context.Background(), &n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleInvoice(clientID int) *models.Invoice {
	return &models.Invoice{
		IssueDate: "2024-03-05",
		DueDate:   "2024-04-04",
		ClientID:  clientID,
		Items: []models.LineItem{
			{Description: "Design", Quantity: 2, Rate: dec("500"), Amount: dec("1000")},
			{Description: "Hosting", Quantity: 1, Rate: dec("20.5"), Amount: dec("20.5")},
		},
		Subtotal: dec("1020.5"),
		Discount: dec("100"),
		Total:    dec("920.5"),
		Status:   models.StatusDraft,
	}
}
