package settings

import "github.com/thenoetrevino/invoicer/internal/models"

// Settings-related errors
var (
	ErrEmptyCurrency   = models.NewValidationError("currency", "cannot be empty")
	ErrEmptyBankName   = models.NewValidationError("bankName", "cannot be empty")
	ErrBankAccountSlot = models.NewValidationError("position", "no bank account at that position")
)
