package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema and the
// seeded settings record
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(context.Background(), db, database.SeedDefaults{}); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// CreateTestClient inserts a client and returns its ID
func CreateTestClient(t *testing.T, db *sqlx.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO clients (name, company, email) VALUES (?, ?, ?)`,
		name, name+" Co", "")
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestInvoice inserts an invoice with one item of quantity 1 at rate
// and returns its ID
func CreateTestInvoice(t *testing.T, db *sqlx.DB, clientID int, number, rate string) int {
	t.Helper()
	ctx := context.Background()
	result, err := db.ExecContext(ctx,
		`INSERT INTO invoices (number, issue_date, due_date, client_id, subtotal, discount, total, status)
		 VALUES (?, '2024-01-15', '2024-02-14', ?, ?, '0', ?, 'draft')`,
		number, clientID, rate, rate)
	if err != nil {
		t.Fatalf("Failed to create test invoice: %v", err)
	}
	id, _ := result.LastInsertId()

	_, err = db.ExecContext(ctx,
		`INSERT INTO invoice_items (invoice_id, position, description, quantity, rate, amount)
		 VALUES (?, 0, 'Work', 1, ?, ?)`,
		id, rate, rate)
	if err != nil {
		t.Fatalf("Failed to create test invoice item: %v", err)
	}
	return int(id)
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.GetContext(context.Background(), &n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
