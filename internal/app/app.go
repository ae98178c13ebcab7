package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/database"
	backupservice "github.com/thenoetrevino/invoicer/internal/services/backup"
	clientservice "github.com/thenoetrevino/invoicer/internal/services/client"
	invoiceservice "github.com/thenoetrevino/invoicer/internal/services/invoice"
	settingsservice "github.com/thenoetrevino/invoicer/internal/services/settings"
)

// App holds all application services and provides dependency injection.
// It owns the open database handle; construct one at startup and pass it
// to every consumer.
type App struct {
	db   *sqlx.DB
	repo database.DataStore

	logger *slog.Logger
	seed   database.SeedDefaults

	mu          sync.Mutex
	initialized bool

	// Service layer (business logic)
	ClientService   clientservice.Service
	InvoiceService  invoiceservice.Service
	SettingsService settingsservice.Service
	BackupService   backupservice.Service
}

// New creates a new App over an open database with all services initialized.
// The schema is not touched until Initialize is called.
func New(db *sqlx.DB, opts ...Option) *App {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		db:     db,
		repo:   repo,
		logger: cfg.logger,
		seed:   database.SeedDefaults{Currency: cfg.currency},

		ClientService: clientservice.NewService(repo),
		InvoiceService: invoiceservice.NewService(repo, invoiceservice.Config{
			Numbering:        cfg.numbering,
			PaymentTermsDays: cfg.paymentTermsDays,
			Now:              cfg.now,
		}),
		SettingsService: settingsservice.NewService(repo),
		BackupService:   backupservice.NewService(repo),
	}
}

// Open opens (creating if absent) the database file inside dataDir and
// builds an App over it. Fails with models.ErrStorageUnavailable when the
// directory or file cannot be used.
func Open(ctx context.Context, dataDir string, opts ...Option) (*App, error) {
	db, err := database.OpenFile(ctx, dataDir)
	if err != nil {
		return nil, err
	}
	return New(db, opts...), nil
}

// Initialize creates missing tables and indexes and seeds the default
// settings record. It is safe to call repeatedly and from several
// goroutines; only the first successful call does any work. A failed call
// is not remembered, so a later call retries.
func (a *App) Initialize(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	if err := database.Migrate(ctx, a.db, a.seed); err != nil {
		a.logger.Error("failed to initialize database", "error", err)
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	a.initialized = true
	a.logger.Debug("database initialized")
	return nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
