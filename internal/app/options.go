package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/invoicer/internal/models"
	invoiceservice "github.com/thenoetrevino/invoicer/internal/services/invoice"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger           *slog.Logger
	currency         string
	numbering        invoiceservice.NumberFormat
	paymentTermsDays int
	now              func() time.Time
}

func defaultConfig() *appConfig {
	return &appConfig{
		logger:           slog.Default(),
		currency:         models.DefaultCurrency,
		numbering:        invoiceservice.DefaultNumberFormat,
		paymentTermsDays: invoiceservice.DefaultPaymentTermsDays,
		now:              time.Now,
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithDefaultCurrency sets the currency seeded into a new settings record
func WithDefaultCurrency(currency string) Option {
	return func(cfg *appConfig) {
		if currency != "" {
			cfg.currency = currency
		}
	}
}

// WithNumbering sets the format of generated invoice numbers
func WithNumbering(format invoiceservice.NumberFormat) Option {
	return func(cfg *appConfig) {
		cfg.numbering = format
	}
}

// WithPaymentTerms sets how many days after issue a new invoice falls due
func WithPaymentTerms(days int) Option {
	return func(cfg *appConfig) {
		cfg.paymentTermsDays = days
	}
}

// WithClock replaces time.Now for default invoice dates
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}
