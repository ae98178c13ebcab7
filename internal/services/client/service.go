package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/invoicer/internal/database"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// Service defines all client-related business operations
type Service interface {
	// Read operations
	ListClients(ctx context.Context) ([]*models.Client, error)
	GetClient(ctx context.Context, id int) (*models.Client, error)

	// Write operations
	AddClient(ctx context.Context, record *models.Client) (*models.Client, error)
	UpdateClient(ctx context.Context, record *models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, id int) error
}

// service implements Service interface
type service struct {
	repo database.ClientRepository
}

// NewService creates a new client service
func NewService(repo database.ClientRepository) Service {
	return &service{repo: repo}
}

// ListClients retrieves all clients ordered by ID
func (s *service) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.repo.GetAllClients(ctx)
}

// GetClient retrieves a client by ID
func (s *service) GetClient(ctx context.Context, id int) (*models.Client, error) {
	if id <= 0 {
		return nil, ErrInvalidClientID
	}
	return s.repo.GetClientByID(ctx, id)
}

// AddClient stores a new client and returns it with its assigned ID
func (s *service) AddClient(ctx context.Context, record *models.Client) (*models.Client, error) {
	if record == nil {
		return nil, ErrNilClient
	}
	if err := models.Validate(record); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateClient(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	slog.Debug("client created", "id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateClient replaces the whole client stored under record.ID.
// A record without an ID is rejected before anything is written.
func (s *service) UpdateClient(ctx context.Context, record *models.Client) (*models.Client, error) {
	if record == nil {
		return nil, ErrNilClient
	}
	if record.ID == 0 {
		return nil, ErrMissingClientID
	}
	if record.ID < 0 {
		return nil, ErrInvalidClientID
	}
	if err := models.Validate(record); err != nil {
		return nil, err
	}

	updated := *record
	if err := s.repo.PutClient(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	slog.Debug("client updated", "id", updated.ID)
	return &updated, nil
}

// DeleteClient removes a client without touching invoices that reference it.
// Deleting a missing client is not an error.
func (s *service) DeleteClient(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidClientID
	}
	if err := s.repo.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	slog.Debug("client deleted", "id", id)
	return nil
}
