package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/models"
)

const clientColumns = `id, name, company, email, phone, address`

// ClientRepo handles all client-related database operations.
type ClientRepo struct {
	db *sqlx.DB
}

// CreateClient inserts a client and returns it with its assigned ID.
// Any ID on the input is ignored.
func (r *ClientRepo) CreateClient(ctx context.Context, c *models.Client) (*models.Client, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (name, company, email, phone, address) VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.Company, c.Email, c.Phone, c.Address,
	)
	if err != nil {
		return nil, models.Storage("insert client", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, models.Storage("read client id", err)
	}

	created := *c
	created.ID = int(id)
	return &created, nil
}

// GetClientByID retrieves a client by its ID
func (r *ClientRepo) GetClientByID(ctx context.Context, id int) (*models.Client, error) {
	client := &models.Client{}
	err := r.db.GetContext(ctx, client,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	if err != nil {
		return nil, notFoundOr(err, "client", id, "get")
	}
	return client, nil
}

// GetAllClients retrieves all clients ordered by ID
func (r *ClientRepo) GetAllClients(ctx context.Context) ([]*models.Client, error) {
	clients, err := selectClients(ctx, r.db)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Client, len(clients))
	for i := range clients {
		out[i] = &clients[i]
	}
	return out, nil
}

// PutClient writes the full record under c.ID, inserting it when no
// row with that ID exists yet.
func (r *ClientRepo) PutClient(ctx context.Context, c *models.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, company, email, phone, address)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			company = excluded.company,
			email = excluded.email,
			phone = excluded.phone,
			address = excluded.address`,
		c.ID, c.Name, c.Company, c.Email, c.Phone, c.Address,
	)
	if err != nil {
		return models.Storage("put client", err)
	}
	return nil
}

// DeleteClient removes a client. Deleting a missing ID is not an error.
func (r *ClientRepo) DeleteClient(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		return models.Storage("delete client", err)
	}
	return nil
}

func selectClients(ctx context.Context, q sqlx.QueryerContext) ([]models.Client, error) {
	clients := []models.Client{}
	if err := sqlx.SelectContext(ctx, q, &clients,
		`SELECT `+clientColumns+` FROM clients ORDER BY id`); err != nil {
		return nil, models.Storage("list clients", err)
	}
	return clients, nil
}

func insertClients(ctx context.Context, e sqlx.ExecerContext, clients []models.Client) error {
	for _, c := range clients {
		_, err := e.ExecContext(ctx,
			`INSERT INTO clients (id, name, company, email, phone, address) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Company, c.Email, c.Phone, c.Address,
		)
		if err != nil {
			return models.Storage("restore client", err)
		}
	}
	return nil
}
