package models

// Client is a billable customer.
// Invoices reference clients by ID only; nothing cascades on delete.
type Client struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Company string `json:"company" db:"company"`
	Email   string `json:"email" db:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" db:"phone"`
	Address string `json:"address" db:"address"`
}

// GetID lets output formatters print the ID in quiet mode
func (c *Client) GetID() int {
	return c.ID
}

// DisplayName prefers the company name and falls back to the contact name
func (c *Client) DisplayName() string {
	if c.Company != "" {
		return c.Company
	}
	return c.Name
}
