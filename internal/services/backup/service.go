package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/invoicer/internal/database"
	"github.com/thenoetrevino/invoicer/internal/models"
	"github.com/thenoetrevino/invoicer/internal/services/invoice"
)

// Service defines whole-database backup and restore
type Service interface {
	// Backup serializes every collection into one JSON document
	Backup(ctx context.Context) ([]byte, error)

	// Restore replaces the collections present in data.
	// The document is validated in full before anything is written.
	Restore(ctx context.Context, data []byte) (*Summary, error)
}

// service implements Service interface
type service struct {
	repo database.BackupRepository
}

// NewService creates a new backup service
func NewService(repo database.BackupRepository) Service {
	return &service{repo: repo}
}

// Backup returns indented JSON with a trailing newline. Records are ordered
// by ID and empty collections are written as [] so the same state always
// produces the same bytes.
func (s *service) Backup(ctx context.Context) ([]byte, error) {
	snap, err := s.repo.ReadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	doc := Document{
		Clients:  snap.Clients,
		Invoices: snap.Invoices,
		Settings: snap.Settings,
	}
	if doc.Clients == nil {
		doc.Clients = []models.Client{}
	}
	if doc.Invoices == nil {
		doc.Invoices = []models.Invoice{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return append(data, '\n'), nil
}

// Restore parses and validates data, then clears and repopulates every
// collection present in it inside one transaction. Absent or null fields
// leave their collection untouched; unknown fields are ignored.
func (s *service) Restore(ctx context.Context, data []byte) (*Summary, error) {
	in, err := parse(data)
	if err != nil {
		return nil, err
	}

	rep, err := prepare(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, rep); err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}

	summary := &Summary{
		Clients:     len(rep.Clients),
		Invoices:    len(rep.Invoices),
		Settings:    rep.Settings != nil,
		Collections: []string{},
	}
	if rep.ReplaceClients {
		summary.Collections = append(summary.Collections, "clients")
	}
	if rep.ReplaceInvoices {
		summary.Collections = append(summary.Collections, "invoices")
	}
	if summary.Settings {
		summary.Collections = append(summary.Collections, "settings")
	}

	slog.Info("backup restored", "collections", summary.Collections,
		"clients", summary.Clients, "invoices", summary.Invoices)
	return summary, nil
}

func parse(data []byte) (*incoming, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, malformed("document must be a JSON object")
	}

	in := &incoming{}
	if err := json.Unmarshal(trimmed, in); err != nil {
		return nil, malformed(err.Error())
	}
	return in, nil
}

func malformed(reason string) error {
	return fmt.Errorf("%w: %w", ErrMalformed, models.NewValidationError("", reason))
}

// prepare validates every record and builds the replacement. Invoice
// totals are recomputed; stored values in the document are not trusted.
func prepare(in *incoming) (*database.Replacement, error) {
	rep := &database.Replacement{}

	if in.Clients != nil {
		seen := make(map[int]bool, len(*in.Clients))
		for i, c := range *in.Clients {
			if err := checkID(fmt.Sprintf("clients[%d].id", i), c.ID, seen); err != nil {
				return nil, err
			}
			if err := models.Validate(&c); err != nil {
				return nil, prefix(fmt.Sprintf("clients[%d]", i), err)
			}
		}
		rep.Clients = *in.Clients
		rep.ReplaceClients = true
	}

	if in.Invoices != nil {
		seen := make(map[int]bool, len(*in.Invoices))
		invoices := make([]models.Invoice, len(*in.Invoices))
		for i, inv := range *in.Invoices {
			if err := checkID(fmt.Sprintf("invoices[%d].id", i), inv.ID, seen); err != nil {
				return nil, err
			}
			if err := inv.Validate(); err != nil {
				return nil, prefix(fmt.Sprintf("invoices[%d]", i), err)
			}
			invoice.ApplyTotals(&inv)
			invoices[i] = inv
		}
		rep.Invoices = invoices
		rep.ReplaceInvoices = true
	}

	if in.Settings != nil {
		settings := *in.Settings
		if settings.BankAccounts == nil {
			settings.BankAccounts = []models.BankAccount{}
		}
		if err := models.Validate(&settings); err != nil {
			return nil, prefix("settings", err)
		}
		rep.Settings = &settings
	}

	return rep, nil
}

func checkID(field string, id int, seen map[int]bool) error {
	if id <= 0 {
		return models.NewValidationError(field, "must be a positive integer")
	}
	if seen[id] {
		return models.NewValidationError(field, fmt.Sprintf("duplicate id %d", id))
	}
	seen[id] = true
	return nil
}

// prefix qualifies the field of a ValidationError with its location
func prefix(path string, err error) error {
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	field := path
	if verr.Field != "" {
		field = path + "." + verr.Field
	}
	return models.NewValidationError(field, verr.Message)
}
