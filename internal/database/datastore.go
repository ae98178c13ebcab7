package database

import (
	"context"

	"github.com/thenoetrevino/invoicer/internal/models"
)

// ClientRepository defines client persistence
type ClientRepository interface {
	CreateClient(ctx context.Context, c *models.Client) (*models.Client, error)
	GetClientByID(ctx context.Context, id int) (*models.Client, error)
	GetAllClients(ctx context.Context) ([]*models.Client, error)
	PutClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, id int) error
}

// InvoiceRepository defines invoice persistence
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, inv *models.Invoice, numbering *Numbering) (*models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id int) (*models.Invoice, error)
	GetAllInvoices(ctx context.Context) ([]*models.Invoice, error)
	GetInvoicesByClient(ctx context.Context, clientID int) ([]*models.Invoice, error)
	GetInvoicesByStatus(ctx context.Context, status models.InvoiceStatus) ([]*models.Invoice, error)
	GetInvoicesByNumber(ctx context.Context, number string) ([]*models.Invoice, error)
	UpdateInvoice(ctx context.Context, inv *models.Invoice) error
	DeleteInvoice(ctx context.Context, id int) error
}

// SettingsRepository defines settings persistence
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s *models.Settings) error
}

// BackupRepository defines whole-collection reads and replacement
type BackupRepository interface {
	ReadSnapshot(ctx context.Context) (*Snapshot, error)
	Replace(ctx context.Context, rep *Replacement) error
}

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces for clearer dependencies.
type DataStore interface {
	ClientRepository
	InvoiceRepository
	SettingsRepository
	BackupRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
