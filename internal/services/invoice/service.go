package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/invoicer/internal/database"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// DefaultPaymentTermsDays is used for the due date when none is configured
const DefaultPaymentTermsDays = 30

// Service defines all invoice-related business operations
type Service interface {
	// Read operations
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
	GetInvoice(ctx context.Context, id int) (*models.Invoice, error)
	ListInvoicesByClient(ctx context.Context, clientID int) ([]*models.Invoice, error)
	ListInvoicesByStatus(ctx context.Context, status models.InvoiceStatus) ([]*models.Invoice, error)
	FindInvoicesByNumber(ctx context.Context, number string) ([]*models.Invoice, error)

	// Write operations
	AddInvoice(ctx context.Context, record *models.Invoice) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id int, record *models.Invoice) (*models.Invoice, error)
	SetStatus(ctx context.Context, id int, status models.InvoiceStatus) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id int) error
}

// Config controls defaults applied to new invoices
type Config struct {
	Numbering        NumberFormat
	PaymentTermsDays int

	// Now returns the current time; defaults to time.Now
	Now func() time.Time
}

// service implements Service interface
type service struct {
	repo database.InvoiceRepository
	cfg  Config
}

// NewService creates a new invoice service
func NewService(repo database.InvoiceRepository, cfg Config) Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Numbering.Width <= 0 {
		cfg.Numbering.Width = DefaultNumberFormat.Width
	}
	if cfg.PaymentTermsDays < 0 {
		cfg.PaymentTermsDays = DefaultPaymentTermsDays
	}
	return &service{
		repo: repo,
		cfg:  cfg,
	}
}

// ListInvoices retrieves every invoice ordered by ID
func (s *service) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return s.repo.GetAllInvoices(ctx)
}

// GetInvoice retrieves an invoice with its items
func (s *service) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidInvoiceID
	}
	return s.repo.GetInvoiceByID(ctx, id)
}

// ListInvoicesByClient retrieves the invoices billed to a client
func (s *service) ListInvoicesByClient(ctx context.Context, clientID int) ([]*models.Invoice, error) {
	if clientID <= 0 {
		return nil, models.NewValidationError("clientId", "must be a positive integer")
	}
	return s.repo.GetInvoicesByClient(ctx, clientID)
}

// ListInvoicesByStatus retrieves the invoices in a status
func (s *service) ListInvoicesByStatus(ctx context.Context, status models.InvoiceStatus) ([]*models.Invoice, error) {
	parsed, err := models.ParseInvoiceStatus(string(status))
	if err != nil {
		return nil, err
	}
	return s.repo.GetInvoicesByStatus(ctx, parsed)
}

// FindInvoicesByNumber retrieves invoices carrying number. Numbers are not
// unique, so the result may hold several invoices.
func (s *service) FindInvoicesByNumber(ctx context.Context, number string) ([]*models.Invoice, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}
	return s.repo.GetInvoicesByNumber(ctx, number)
}

// AddInvoice stores a new invoice. Amounts, subtotal and total are
// recomputed from the items and discount. Missing dates, status and number
// are filled in from the configured defaults.
func (s *service) AddInvoice(ctx context.Context, record *models.Invoice) (*models.Invoice, error) {
	if record == nil {
		return nil, ErrNilInvoice
	}

	inv := prepare(record)
	inv.ID = 0
	if err := s.applyDefaults(inv); err != nil {
		return nil, err
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	ApplyTotals(inv)

	issued, _ := time.Parse(models.DateLayout, inv.IssueDate)
	created, err := s.repo.CreateInvoice(ctx, inv, s.cfg.Numbering.numbering(issued))
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	slog.Debug("invoice created", "id", created.ID, "number", created.Number, "total", created.Total.String())
	return created, nil
}

// UpdateInvoice replaces the invoice stored under id with record.
// Empty number, dates and status keep their stored values; derived amounts
// are recomputed. Fails with NotFound when id does not exist.
func (s *service) UpdateInvoice(ctx context.Context, id int, record *models.Invoice) (*models.Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidInvoiceID
	}
	if record == nil {
		return nil, ErrNilInvoice
	}

	existing, err := s.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv := prepare(record)
	inv.ID = id
	if inv.Number == "" {
		inv.Number = existing.Number
	}
	if inv.IssueDate == "" {
		inv.IssueDate = existing.IssueDate
	}
	if inv.DueDate == "" {
		inv.DueDate = existing.DueDate
	}
	if inv.Status == "" {
		inv.Status = existing.Status
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	ApplyTotals(inv)

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	slog.Debug("invoice updated", "id", inv.ID, "status", inv.Status, "total", inv.Total.String())
	return inv, nil
}

// SetStatus moves an invoice to status. Any transition is allowed.
func (s *service) SetStatus(ctx context.Context, id int, status models.InvoiceStatus) (*models.Invoice, error) {
	if id <= 0 {
		return nil, ErrInvalidInvoiceID
	}
	parsed, err := models.ParseInvoiceStatus(string(status))
	if err != nil {
		return nil, err
	}

	inv, err := s.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Status = parsed
	ApplyTotals(inv)

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	slog.Debug("invoice status changed", "id", id, "status", parsed)
	return inv, nil
}

// DeleteInvoice removes an invoice and its items.
// Deleting a missing invoice is not an error.
func (s *service) DeleteInvoice(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInvoiceID
	}
	if err := s.repo.DeleteInvoice(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	slog.Debug("invoice deleted", "id", id)
	return nil
}

// applyDefaults fills in the issue date, due date and status of a new invoice
func (s *service) applyDefaults(inv *models.Invoice) error {
	if inv.IssueDate == "" {
		inv.IssueDate = s.cfg.Now().Format(models.DateLayout)
	}
	if inv.DueDate == "" {
		issued, err := time.Parse(models.DateLayout, inv.IssueDate)
		if err != nil {
			return models.NewValidationError("issueDate",
				fmt.Sprintf("'%s' is not a YYYY-MM-DD date", inv.IssueDate))
		}
		inv.DueDate = issued.AddDate(0, 0, s.cfg.PaymentTermsDays).Format(models.DateLayout)
	}
	if inv.Status == "" {
		inv.Status = models.StatusDraft
	}
	return nil
}

// prepare copies record so the caller's value is never modified
func prepare(record *models.Invoice) *models.Invoice {
	inv := *record
	inv.Items = append([]models.LineItem{}, record.Items...)
	return &inv
}
