package backup

import "github.com/thenoetrevino/invoicer/internal/models"

// Document is the on-disk backup format: one JSON object holding every
// collection. There is no version field or checksum.
type Document struct {
	Clients  []models.Client  `json:"clients"`
	Invoices []models.Invoice `json:"invoices"`
	Settings *models.Settings `json:"settings"`
}

// incoming is the restore-side view of a Document. Pointer fields tell an
// absent (or null) collection apart from an empty one.
type incoming struct {
	Clients  *[]models.Client  `json:"clients"`
	Invoices *[]models.Invoice `json:"invoices"`
	Settings *models.Settings  `json:"settings"`
}

// Summary reports what a restore wrote
type Summary struct {
	Clients  int  `json:"clients"`
	Invoices int  `json:"invoices"`
	Settings bool `json:"settings"`

	// Collections lists the top-level fields that were present and replaced
	Collections []string `json:"collections"`
}
