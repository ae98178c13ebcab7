package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/invoicer/internal/models"
)

const invoiceColumns = `id, number, issue_date, due_date, client_id, subtotal, discount, total, status, notes`

// invoiceRow mirrors the invoices table; items live in invoice_items
type invoiceRow struct {
	ID        int             `db:"id"`
	Number    string          `db:"number"`
	IssueDate string          `db:"issue_date"`
	DueDate   string          `db:"due_date"`
	ClientID  int             `db:"client_id"`
	Subtotal  decimal.Decimal `db:"subtotal"`
	Discount  decimal.Decimal `db:"discount"`
	Total     decimal.Decimal `db:"total"`
	Status    string          `db:"status"`
	Notes     string          `db:"notes"`
}

type itemRow struct {
	InvoiceID int `db:"invoice_id"`
	Position  int `db:"position"`
	models.LineItem
}

// Numbering assigns a number to an invoice created without one.
// Format receives the next value of the counter for Period.
type Numbering struct {
	Period string
	Format func(seq int) string
}

// InvoiceRepo handles all invoice-related database operations.
type InvoiceRepo struct {
	db *sqlx.DB
}

// CreateInvoice inserts an invoice with its items in one transaction.
// When inv.Number is empty and numbering is set, the number is drawn from
// the per-period counter inside the same transaction.
func (r *InvoiceRepo) CreateInvoice(ctx context.Context, inv *models.Invoice, numbering *Numbering) (*models.Invoice, error) {
	created := cloneInvoice(inv)

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if created.Number == "" && numbering != nil {
			seq, err := nextSequence(ctx, tx, numbering.Period)
			if err != nil {
				return err
			}
			created.Number = numbering.Format(seq)
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO invoices (number, issue_date, due_date, client_id, subtotal, discount, total, status, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			created.Number, created.IssueDate, created.DueDate, created.ClientID,
			created.Subtotal, created.Discount, created.Total, string(created.Status), created.Notes,
		)
		if err != nil {
			return models.Storage("insert invoice", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return models.Storage("read invoice id", err)
		}
		created.ID = int(id)

		return insertItems(ctx, tx, created.ID, created.Items)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetInvoiceByID retrieves an invoice and its items
func (r *InvoiceRepo) GetInvoiceByID(ctx context.Context, id int) (*models.Invoice, error) {
	invoices, err := selectInvoices(ctx, r.db, ` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, models.NotFound("invoice", id)
	}
	return &invoices[0], nil
}

// GetAllInvoices retrieves all invoices ordered by ID
func (r *InvoiceRepo) GetAllInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return r.listWhere(ctx, "")
}

// GetInvoicesByClient retrieves the invoices billed to a client
func (r *InvoiceRepo) GetInvoicesByClient(ctx context.Context, clientID int) ([]*models.Invoice, error) {
	return r.listWhere(ctx, ` WHERE client_id = ?`, clientID)
}

// GetInvoicesByStatus retrieves the invoices in a given status
func (r *InvoiceRepo) GetInvoicesByStatus(ctx context.Context, status models.InvoiceStatus) ([]*models.Invoice, error) {
	return r.listWhere(ctx, ` WHERE status = ?`, string(status))
}

// GetInvoicesByNumber retrieves every invoice carrying number.
// Numbers are not unique, so more than one may come back.
func (r *InvoiceRepo) GetInvoicesByNumber(ctx context.Context, number string) ([]*models.Invoice, error) {
	return r.listWhere(ctx, ` WHERE number = ?`, number)
}

// UpdateInvoice replaces the invoice row and all of its items.
// Returns a NotFoundError when no invoice has inv.ID.
func (r *InvoiceRepo) UpdateInvoice(ctx context.Context, inv *models.Invoice) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE invoices SET
				number = ?, issue_date = ?, due_date = ?, client_id = ?,
				subtotal = ?, discount = ?, total = ?, status = ?, notes = ?
			 WHERE id = ?`,
			inv.Number, inv.IssueDate, inv.DueDate, inv.ClientID,
			inv.Subtotal, inv.Discount, inv.Total, string(inv.Status), inv.Notes,
			inv.ID,
		)
		if err != nil {
			return models.Storage("update invoice", err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return models.Storage("update invoice", err)
		}
		if n == 0 {
			return models.NotFound("invoice", inv.ID)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM invoice_items WHERE invoice_id = ?`, inv.ID); err != nil {
			return models.Storage("replace invoice items", err)
		}
		return insertItems(ctx, tx, inv.ID, inv.Items)
	})
}

// DeleteInvoice removes an invoice and its items.
// Deleting a missing ID is not an error.
func (r *InvoiceRepo) DeleteInvoice(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM invoice_items WHERE invoice_id = ?`, id); err != nil {
			return models.Storage("delete invoice items", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
			return models.Storage("delete invoice", err)
		}
		return nil
	})
}

func (r *InvoiceRepo) listWhere(ctx context.Context, where string, args ...any) ([]*models.Invoice, error) {
	invoices, err := selectInvoices(ctx, r.db, where, args...)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Invoice, len(invoices))
	for i := range invoices {
		out[i] = &invoices[i]
	}
	return out, nil
}

// selectInvoices loads invoices matching where (a " WHERE ..." clause over
// the invoices table, or "") together with their items.
func selectInvoices(ctx context.Context, q sqlx.QueryerContext, where string, args ...any) ([]models.Invoice, error) {
	rows := []invoiceRow{}
	if err := sqlx.SelectContext(ctx, q, &rows,
		`SELECT `+invoiceColumns+` FROM invoices`+where+` ORDER BY id`, args...); err != nil {
		return nil, models.Storage("list invoices", err)
	}

	invoices := make([]models.Invoice, len(rows))
	index := make(map[int]int, len(rows))
	for i, row := range rows {
		invoices[i] = models.Invoice{
			ID:        row.ID,
			Number:    row.Number,
			IssueDate: row.IssueDate,
			DueDate:   row.DueDate,
			ClientID:  row.ClientID,
			Items:     []models.LineItem{},
			Subtotal:  row.Subtotal,
			Discount:  row.Discount,
			Total:     row.Total,
			Status:    models.InvoiceStatus(row.Status),
			Notes:     row.Notes,
		}
		index[row.ID] = i
	}
	if len(rows) == 0 {
		return invoices, nil
	}

	items := []itemRow{}
	if err := sqlx.SelectContext(ctx, q, &items,
		`SELECT invoice_id, position, description, quantity, rate, amount
		 FROM invoice_items
		 WHERE invoice_id IN (SELECT id FROM invoices`+where+`)
		 ORDER BY invoice_id, position`, args...); err != nil {
		return nil, models.Storage("list invoice items", err)
	}

	for _, item := range items {
		i, ok := index[item.InvoiceID]
		if !ok {
			continue
		}
		invoices[i].Items = append(invoices[i].Items, item.LineItem)
	}

	return invoices, nil
}

func insertItems(ctx context.Context, e sqlx.ExecerContext, invoiceID int, items []models.LineItem) error {
	for position, item := range items {
		_, err := e.ExecContext(ctx,
			`INSERT INTO invoice_items (invoice_id, position, description, quantity, rate, amount)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			invoiceID, position, item.Description, item.Quantity, item.Rate, item.Amount,
		)
		if err != nil {
			return models.Storage("insert invoice item", err)
		}
	}
	return nil
}

func insertInvoices(ctx context.Context, e sqlx.ExecerContext, invoices []models.Invoice) error {
	for _, inv := range invoices {
		_, err := e.ExecContext(ctx,
			`INSERT INTO invoices (`+invoiceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			inv.ID, inv.Number, inv.IssueDate, inv.DueDate, inv.ClientID,
			inv.Subtotal, inv.Discount, inv.Total, string(inv.Status), inv.Notes,
		)
		if err != nil {
			return models.Storage("restore invoice", err)
		}
		if err := insertItems(ctx, e, inv.ID, inv.Items); err != nil {
			return err
		}
	}
	return nil
}

// nextSequence increments and returns the counter for period
func nextSequence(ctx context.Context, tx *sqlx.Tx, period string) (int, error) {
	var seq int
	err := tx.QueryRowxContext(ctx,
		`INSERT INTO invoice_counters (period, next_number) VALUES (?, 1)
		 ON CONFLICT(period) DO UPDATE SET next_number = next_number + 1
		 RETURNING next_number`,
		period,
	).Scan(&seq)
	if err != nil {
		return 0, models.Storage("advance invoice counter", err)
	}
	return seq, nil
}

func cloneInvoice(inv *models.Invoice) *models.Invoice {
	clone := *inv
	clone.Items = append([]models.LineItem{}, inv.Items...)
	return &clone
}
