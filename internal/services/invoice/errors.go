package invoice

import "github.com/thenoetrevino/invoicer/internal/models"

// Invoice-related errors
var (
	// Validation errors
	ErrInvalidInvoiceID = models.NewValidationError("id", "must be a positive integer")
	ErrNilInvoice       = models.NewValidationError("", "invoice record is required")
	ErrEmptyNumber      = models.NewValidationError("number", "cannot be empty")
)
