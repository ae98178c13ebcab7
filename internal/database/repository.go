package database

import (
	"github.com/jmoiron/sqlx"
)

// Repository provides a unified interface to all data operations.
// It composes collection-specific repositories using struct embedding.
type Repository struct {
	*ClientRepo
	*InvoiceRepo
	*SettingsRepo
	*BackupRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		ClientRepo:   &ClientRepo{db: db},
		InvoiceRepo:  &InvoiceRepo{db: db},
		SettingsRepo: &SettingsRepo{db: db},
		BackupRepo:   &BackupRepo{db: db},
	}
}
