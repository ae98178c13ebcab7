package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the storage format for issue and due dates
const DateLayout = "2006-01-02"

// InvoiceStatus is the lifecycle state of an invoice.
// Any status may move to any other; nothing is inferred from dates.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// InvoiceStatuses lists every valid status in display order
var InvoiceStatuses = []InvoiceStatus{StatusDraft, StatusSent, StatusPaid, StatusOverdue}

// Valid reports whether s is one of the known statuses
func (s InvoiceStatus) Valid() bool {
	for _, known := range InvoiceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseInvoiceStatus maps a case-insensitive name to its status
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", NewValidationError("status",
			fmt.Sprintf("'%s' is not one of draft, sent, paid, overdue", s))
	}
	return status, nil
}

// LineItem is one billable entry. Amount is always quantity x rate.
type LineItem struct {
	Description string          `json:"description" db:"description"`
	Quantity    int             `json:"quantity" db:"quantity" validate:"gt=0"`
	Rate        decimal.Decimal `json:"rate" db:"rate"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
}

// Invoice is a bill issued to a client.
// Subtotal and Total are derived from Items and Discount on every write.
type Invoice struct {
	ID        int             `json:"id"`
	Number    string          `json:"number"`
	IssueDate string          `json:"issueDate"`
	DueDate   string          `json:"dueDate"`
	ClientID  int             `json:"clientId" validate:"gt=0"`
	Items     []LineItem      `json:"items" validate:"dive"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Status    InvoiceStatus   `json:"status"`
	Notes     string          `json:"notes"`
}

// GetID lets output formatters print the ID in quiet mode
func (i *Invoice) GetID() int {
	return i.ID
}

// Validate checks the fields a caller controls. Derived amounts are not
// inspected since they are recomputed on every write.
func (i *Invoice) Validate() error {
	if err := Validate(i); err != nil {
		return err
	}
	if !i.Status.Valid() {
		return NewValidationError("status",
			fmt.Sprintf("'%s' is not one of draft, sent, paid, overdue", i.Status))
	}
	for n, item := range i.Items {
		if item.Rate.IsNegative() {
			return NewValidationError(fmt.Sprintf("items[%d].rate", n), "must not be negative")
		}
	}
	if err := checkDate("issueDate", i.IssueDate); err != nil {
		return err
	}
	return checkDate("dueDate", i.DueDate)
}

// checkDate accepts an empty value or a YYYY-MM-DD date
func checkDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return NewValidationError(field, fmt.Sprintf("'%s' is not a YYYY-MM-DD date", value))
	}
	return nil
}
