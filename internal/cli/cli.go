package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/invoicer/internal/app"
	"github.com/thenoetrevino/invoicer/internal/cli/styles"
	"github.com/thenoetrevino/invoicer/internal/config"
	"github.com/thenoetrevino/invoicer/internal/logging"
	"github.com/thenoetrevino/invoicer/internal/models"
	invoiceservice "github.com/thenoetrevino/invoicer/internal/services/invoice"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// AppKey is the context key under which tests inject an *app.App
const AppKey contextKey = "invoicer.app"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when the app was injected (tests); Close leaves it open
	owned   bool
	logFile io.Closer
}

// NewCLI loads configuration, sets up logging and opens the data store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := logging.Init(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		if errors.Is(err, logging.ErrUnknownLevel) {
			return nil, fmt.Errorf("failed to initialize logging: %w", err)
		}
		// The log file lives in the data dir, so this is the first place an
		// unusable data dir shows up
		return nil, fmt.Errorf("%w: failed to initialize logging: %w", models.ErrStorageUnavailable, err)
	}

	application, err := app.Open(ctx, cfg.DataDir,
		app.WithLogger(slog.Default()),
		app.WithDefaultCurrency(cfg.DefaultCurrency),
		app.WithNumbering(invoiceservice.NumberFormat{
			Prefix: cfg.Invoice.NumberPrefix,
			Width:  cfg.Invoice.SequenceWidth,
		}),
		app.WithPaymentTerms(cfg.Invoice.PaymentTermsDays),
	)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	c := &CLI{App: application, Config: cfg, owned: true, logFile: logFile}
	if err := application.Initialize(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	styles.Init(cfg.ColorScheme)
	return c, nil
}

// GetCLIFromContext returns a CLI over the app stored in ctx under AppKey,
// or opens the real data store when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if injected, ok := ctx.Value(AppKey).(*app.App); ok && injected != nil {
			if err := injected.Initialize(ctx); err != nil {
				return nil, err
			}
			cfg := config.Default()
			styles.Init(cfg.ColorScheme)
			return &CLI{App: injected, Config: cfg}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		if closeErr := c.logFile.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
