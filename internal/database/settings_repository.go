package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// SettingsRepo reads and writes the singleton settings record.
type SettingsRepo struct {
	db *sqlx.DB
}

// GetSettings returns the settings record with its bank accounts.
// A database that was never migrated reports NotFound rather than a storage error.
func (r *SettingsRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	return selectSettings(ctx, r.db)
}

// SaveSettings replaces the settings record and its bank accounts
func (r *SettingsRepo) SaveSettings(ctx context.Context, s *models.Settings) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return putSettings(ctx, tx, s)
	})
}

func selectSettings(ctx context.Context, q sqlx.QueryerContext) (*models.Settings, error) {
	settings := &models.Settings{}
	err := sqlx.GetContext(ctx, q, settings,
		`SELECT company_name, email, address, phone, website, currency FROM settings WHERE id = ?`,
		models.SettingsKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMissingTable(err) {
			return nil, models.NotFound("settings", nil)
		}
		return nil, models.Storage("get settings", err)
	}

	settings.BankAccounts = []models.BankAccount{}
	if err := sqlx.SelectContext(ctx, q, &settings.BankAccounts,
		`SELECT bank_name, account_number, account_holder
		 FROM bank_accounts WHERE settings_id = ? ORDER BY position`,
		models.SettingsKey); err != nil {
		return nil, models.Storage("list bank accounts", err)
	}

	return settings, nil
}

func putSettings(ctx context.Context, e sqlx.ExecerContext, s *models.Settings) error {
	_, err := e.ExecContext(ctx,
		`INSERT INTO settings (id, company_name, email, address, phone, website, currency)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			company_name = excluded.company_name,
			email = excluded.email,
			address = excluded.address,
			phone = excluded.phone,
			website = excluded.website,
			currency = excluded.currency`,
		models.SettingsKey, s.CompanyName, s.Email, s.Address, s.Phone, s.Website, s.Currency,
	)
	if err != nil {
		return models.Storage("save settings", err)
	}

	if _, err := e.ExecContext(ctx, `DELETE FROM bank_accounts WHERE settings_id = ?`, models.SettingsKey); err != nil {
		return models.Storage("replace bank accounts", err)
	}

	for position, account := range s.BankAccounts {
		_, err := e.ExecContext(ctx,
			`INSERT INTO bank_accounts (settings_id, position, bank_name, account_number, account_holder)
			 VALUES (?, ?, ?, ?, ?)`,
			models.SettingsKey, position, account.BankName, account.AccountNumber, account.AccountHolder,
		)
		if err != nil {
			return models.Storage("insert bank account", err)
		}
	}
	return nil
}
