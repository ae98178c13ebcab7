package client

import "github.com/thenoetrevino/invoicer/internal/models"

// Client-related errors
var (
	// ErrMissingClientID is returned by updates that do not name a client
	ErrMissingClientID = models.NewValidationError("id", "is required to update a client")
	ErrInvalidClientID = models.NewValidationError("id", "must be a positive integer")
	ErrNilClient       = models.NewValidationError("", "client record is required")
)
