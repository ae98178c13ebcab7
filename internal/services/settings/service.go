package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/invoicer/internal/database"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// Service defines all settings-related business operations
type Service interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, patch Patch) (*models.Settings, error)

	// Bank account helpers built on UpdateSettings
	AddBankAccount(ctx context.Context, account models.BankAccount) (*models.Settings, error)
	RemoveBankAccount(ctx context.Context, position int) (*models.Settings, error)
}

// Patch lists the settings fields to change. Nil fields keep their stored
// value; a non-nil BankAccounts replaces the whole list.
type Patch struct {
	CompanyName  *string
	Email        *string
	Address      *string
	Phone        *string
	Website      *string
	Currency     *string
	BankAccounts *[]models.BankAccount
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.CompanyName == nil && p.Email == nil && p.Address == nil &&
		p.Phone == nil && p.Website == nil && p.Currency == nil && p.BankAccounts == nil
}

// service implements Service interface
type service struct {
	repo database.SettingsRepository
}

// NewService creates a new settings service
func NewService(repo database.SettingsRepository) Service {
	return &service{repo: repo}
}

// GetSettings returns the singleton settings record.
// Fails with NotFound if the database was never initialized.
func (s *service) GetSettings(ctx context.Context) (*models.Settings, error) {
	return s.repo.GetSettings(ctx)
}

// UpdateSettings merges patch into the stored record, persists it and
// returns the full result
func (s *service) UpdateSettings(ctx context.Context, patch Patch) (*models.Settings, error) {
	current, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	merged := merge(current, patch)
	if err := validateSettings(merged); err != nil {
		return nil, err
	}

	if err := s.repo.SaveSettings(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	slog.Debug("settings updated", "company", merged.CompanyName, "bank_accounts", len(merged.BankAccounts))
	return merged, nil
}

// AddBankAccount appends account to the configured bank accounts
func (s *service) AddBankAccount(ctx context.Context, account models.BankAccount) (*models.Settings, error) {
	if strings.TrimSpace(account.BankName) == "" {
		return nil, ErrEmptyBankName
	}

	current, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	accounts := append(append([]models.BankAccount{}, current.BankAccounts...), account)
	return s.UpdateSettings(ctx, Patch{BankAccounts: &accounts})
}

// RemoveBankAccount drops the bank account at position (zero-based)
func (s *service) RemoveBankAccount(ctx context.Context, position int) (*models.Settings, error) {
	current, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= len(current.BankAccounts) {
		return nil, ErrBankAccountSlot
	}

	accounts := make([]models.BankAccount, 0, len(current.BankAccounts)-1)
	accounts = append(accounts, current.BankAccounts[:position]...)
	accounts = append(accounts, current.BankAccounts[position+1:]...)
	return s.UpdateSettings(ctx, Patch{BankAccounts: &accounts})
}

func merge(current *models.Settings, patch Patch) *models.Settings {
	merged := *current
	merged.BankAccounts = append([]models.BankAccount{}, current.BankAccounts...)

	if patch.CompanyName != nil {
		merged.CompanyName = *patch.CompanyName
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Website != nil {
		merged.Website = *patch.Website
	}
	if patch.Currency != nil {
		merged.Currency = strings.ToUpper(strings.TrimSpace(*patch.Currency))
	}
	if patch.BankAccounts != nil {
		merged.BankAccounts = append([]models.BankAccount{}, (*patch.BankAccounts)...)
	}
	return &merged
}

func validateSettings(s *models.Settings) error {
	if s.Currency == "" {
		return ErrEmptyCurrency
	}
	return models.Validate(s)
}
