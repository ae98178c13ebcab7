package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Classes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"not found", NotFound("client", 7), ErrNotFound},
		{"validation", NewValidationError("id", "required"), ErrValidation},
		{"storage", Storage("insert client", errors.New("disk full")), ErrStorage},
		{"wrapped not found", fmt.Errorf("get invoice: %w", NotFound("invoice", 3)), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("Expected %v to match %v", tt.err, tt.target)
			}
		})
	}
}

func TestErrors_ClassesAreDistinct(t *testing.T) {
	if errors.Is(NotFound("client", 1), ErrValidation) {
		t.Error("NotFoundError should not match ErrValidation")
	}
	if errors.Is(NewValidationError("id", "required"), ErrStorage) {
		t.Error("ValidationError should not match ErrStorage")
	}
	if errors.Is(Storage("op", errors.New("boom")), ErrStorageUnavailable) {
		t.Error("StorageError should not match ErrStorageUnavailable")
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{NotFound("client", 7), "client 7 not found"},
		{NotFound("settings", nil), "settings not found"},
		{NewValidationError("id", "client id is required"), "invalid id: client id is required"},
		{NewValidationError("", "document is empty"), "document is empty"},
		{Storage("insert client", errors.New("disk full")), "insert client: disk full"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expected {
			t.Errorf("Expected error message '%s', got '%s'", tt.expected, tt.err.Error())
		}
	}
}

func TestStorage_UnwrapsNative(t *testing.T) {
	native := errors.New("constraint failed")
	err := Storage("insert invoice", native)

	if !errors.Is(err, native) {
		t.Error("StorageError should unwrap to the native error")
	}

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatal("Expected errors.As to find *StorageError")
	}
	if se.Op != "insert invoice" {
		t.Errorf("Expected op 'insert invoice', got '%s'", se.Op)
	}

	if Storage("noop", nil) != nil {
		t.Error("Storage(nil) should return nil")
	}
}

// ============================================================================
// Status Tests
// ============================================================================

func TestParseInvoiceStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    InvoiceStatus
		wantErr bool
	}{
		{"draft", StatusDraft, false},
		{"SENT", StatusSent, false},
		{" paid ", StatusPaid, false},
		{"overdue", StatusOverdue, false},
		{"void", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseInvoiceStatus(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ParseInvoiceStatus(%q) expected validation error, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInvoiceStatus(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseInvoiceStatus(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestClient_DisplayName(t *testing.T) {
	c := Client{Name: "Jane Doe", Company: "Acme Co"}
	if c.DisplayName() != "Acme Co" {
		t.Errorf("Expected 'Acme Co', got '%s'", c.DisplayName())
	}

	c.Company = ""
	if c.DisplayName() != "Jane Doe" {
		t.Errorf("Expected 'Jane Doe', got '%s'", c.DisplayName())
	}
}

// ============================================================================
// VALIDATION
// ============================================================================

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	err := Validate(&Client{Name: "x", Email: "not-an-email"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if verr.Field != "email" {
		t.Errorf("Expected field 'email', got '%s'", verr.Field)
	}

	if err := Validate(&Client{Email: "ok@example.com"}); err != nil {
		t.Errorf("Expected valid client, got %v", err)
	}
}

func TestValidate_NestedItems(t *testing.T) {
	type wrapper struct {
		Items []LineItem `json:"items" validate:"dive"`
	}

	err := Validate(&wrapper{Items: []LineItem{{Quantity: 1}, {Quantity: 0}}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %v", err)
	}
	if verr.Field != "items[1].quantity" {
		t.Errorf("Expected field 'items[1].quantity', got '%s'", verr.Field)
	}
}

func TestInvoice_Validate(t *testing.T) {
	valid := func() *Invoice {
		return &Invoice{
			ClientID:  1,
			IssueDate: "2024-01-31",
			Status:    StatusSent,
			Items:     []LineItem{{Description: "x", Quantity: 1, Rate: decimal.NewFromInt(5)}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Invoice)
		field  string
	}{
		{"valid", func(*Invoice) {}, ""},
		{"missing client", func(i *Invoice) { i.ClientID = 0 }, "clientId"},
		{"zero quantity", func(i *Invoice) { i.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"negative rate", func(i *Invoice) { i.Items[0].Rate = decimal.NewFromInt(-1) }, "items[0].rate"},
		{"bad status", func(i *Invoice) { i.Status = "void" }, "status"},
		{"bad issue date", func(i *Invoice) { i.IssueDate = "31/01/2024" }, "issueDate"},
		{"bad due date", func(i *Invoice) { i.DueDate = "2024-02-30" }, "dueDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := valid()
			tt.mutate(inv)
			err := inv.Validate()

			if tt.field == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected field '%s', got '%s'", tt.field, verr.Field)
			}
		})
	}
}
