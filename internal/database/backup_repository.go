package database

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// Snapshot is the full content of the three collections
type Snapshot struct {
	Clients  []models.Client
	Invoices []models.Invoice
	Settings *models.Settings
}

// Replacement describes which collections a restore overwrites.
// Clients and invoices are only touched when their flag is set; a nil
// Settings keeps the current record.
type Replacement struct {
	Clients  []models.Client
	Invoices []models.Invoice
	Settings *models.Settings

	ReplaceClients  bool
	ReplaceInvoices bool
}

// BackupRepo reads and replaces whole collections.
type BackupRepo struct {
	db *sqlx.DB
}

// ReadSnapshot reads every collection inside one transaction so the
// result is a consistent point-in-time view.
func (r *BackupRepo) ReadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		if snap.Clients, err = selectClients(ctx, tx); err != nil {
			return err
		}
		if snap.Invoices, err = selectInvoices(ctx, tx, ""); err != nil {
			return err
		}
		snap.Settings, err = selectSettings(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Replace clears and repopulates the selected collections in a single
// transaction. Records keep their IDs. Any failure rolls everything back.
func (r *BackupRepo) Replace(ctx context.Context, rep *Replacement) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if rep.ReplaceClients {
			if _, err := tx.ExecContext(ctx, `DELETE FROM clients`); err != nil {
				return models.Storage("clear clients", err)
			}
			if err := insertClients(ctx, tx, rep.Clients); err != nil {
				return err
			}
		}

		if rep.ReplaceInvoices {
			if _, err := tx.ExecContext(ctx, `DELETE FROM invoice_items`); err != nil {
				return models.Storage("clear invoice items", err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM invoices`); err != nil {
				return models.Storage("clear invoices", err)
			}
			if err := insertInvoices(ctx, tx, rep.Invoices); err != nil {
				return err
			}
			if err := raiseCounters(ctx, tx, rep.Invoices); err != nil {
				return err
			}
		}

		if rep.Settings != nil {
			if err := putSettings(ctx, tx, rep.Settings); err != nil {
				return err
			}
		}

		return nil
	})
}

// raiseCounters moves each month's counter past the highest sequence found
// among restored numbers of the form [<prefix>-]<YYYYMM>-<seq>. Counters
// never move backwards.
func raiseCounters(ctx context.Context, tx *sqlx.Tx, invoices []models.Invoice) error {
	highest := make(map[string]int)
	for _, inv := range invoices {
		period, seq, ok := parseGeneratedNumber(inv.Number)
		if ok && seq > highest[period] {
			highest[period] = seq
		}
	}

	for period, seq := range highest {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO invoice_counters (period, next_number) VALUES (?, ?)
			 ON CONFLICT(period) DO UPDATE SET next_number = MAX(next_number, excluded.next_number)`,
			period, seq,
		)
		if err != nil {
			return models.Storage("raise invoice counter", err)
		}
	}
	return nil
}

func parseGeneratedNumber(number string) (string, int, bool) {
	parts := strings.Split(number, "-")
	if len(parts) < 2 {
		return "", 0, false
	}
	period, tail := parts[len(parts)-2], parts[len(parts)-1]
	if len(period) != 6 {
		return "", 0, false
	}
	if _, err := time.Parse("200601", period); err != nil {
		return "", 0, false
	}
	seq, err := strconv.Atoi(tail)
	if err != nil || seq <= 0 {
		return "", 0, false
	}
	return period, seq, true
}
