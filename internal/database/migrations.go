package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// SeedDefaults carries the values written into a freshly created settings record
type SeedDefaults struct {
	Currency string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(name)`,

	// client_id is deliberately not a foreign key: deleting a client
	// leaves its invoices pointing at the old id
	`CREATE TABLE IF NOT EXISTS invoices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		number TEXT NOT NULL DEFAULT '',
		issue_date TEXT NOT NULL DEFAULT '',
		due_date TEXT NOT NULL DEFAULT '',
		client_id INTEGER NOT NULL DEFAULT 0,
		subtotal TEXT NOT NULL DEFAULT '0',
		discount TEXT NOT NULL DEFAULT '0',
		total TEXT NOT NULL DEFAULT '0',
		status TEXT NOT NULL DEFAULT 'draft',
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_number ON invoices(number)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_client ON invoices(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_issue_date ON invoices(issue_date)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)`,

	`CREATE TABLE IF NOT EXISTS invoice_items (
		invoice_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL,
		rate TEXT NOT NULL,
		amount TEXT NOT NULL,
		PRIMARY KEY (invoice_id, position),
		FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE CASCADE
	)`,

	// Per-month sequence for generated invoice numbers
	`CREATE TABLE IF NOT EXISTS invoice_counters (
		period TEXT PRIMARY KEY,
		next_number INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id TEXT PRIMARY KEY,
		company_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		currency TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS bank_accounts (
		settings_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		bank_name TEXT NOT NULL DEFAULT '',
		account_number TEXT NOT NULL DEFAULT '',
		account_holder TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (settings_id, position),
		FOREIGN KEY (settings_id) REFERENCES settings(id) ON DELETE CASCADE
	)`,
}

// Migrate creates the schema and seeds the settings record if needed.
// It runs in one transaction, so concurrent callers cannot create
// duplicate settings rows; every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB, seed SeedDefaults) error {
	return withTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return models.Storage("create schema", err)
			}
		}
		return seedSettings(ctx, tx, seed)
	})
}

// seedSettings inserts the default settings record if it is missing
func seedSettings(ctx context.Context, tx *sqlx.Tx, seed SeedDefaults) error {
	currency := seed.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	_, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (id, currency) VALUES (?, ?)`,
		models.SettingsKey, currency,
	)
	if err != nil {
		return models.Storage("seed settings", fmt.Errorf("insert default record: %w", err))
	}
	return nil
}
