package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/invoicer/internal/database"
	"github.com/thenoetrevino/invoicer/internal/models"
	"github.com/thenoetrevino/invoicer/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return parsed
}

func newTestService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	now := mustDate(t, "2024-03-05")

	svc := NewService(repo, Config{
		Numbering:        DefaultNumberFormat,
		PaymentTermsDays: 30,
		Now:              func() time.Time { return now },
	})
	return svc, repo
}

func designInvoice() *models.Invoice {
	return &models.Invoice{
		ClientID: 1,
		Items:    []models.LineItem{{Description: "Design", Quantity: 2, Rate: d("500")}},
		Discount: d("100"),
		Status:   models.StatusDraft,
	}
}

// ============================================================================
// ADD
// ============================================================================

func TestAddInvoice_RecomputesTotals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := designInvoice()
	in.Subtotal = d("1")
	in.Total = d("2")
	in.Items[0].Amount = d("3")

	created, err := svc.AddInvoice(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.True(t, created.Items[0].Amount.Equal(d("1000")))
	assert.True(t, created.Subtotal.Equal(d("1000")))
	assert.True(t, created.Total.Equal(d("900")))

	stored, err := svc.GetInvoice(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].Amount.Equal(d("1000")))
	assert.True(t, stored.Subtotal.Equal(d("1000")))
	assert.True(t, stored.Total.Equal(d("900")))

	// Caller's record is untouched
	assert.True(t, in.Total.Equal(d("2")))
}

func TestAddInvoice_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.AddInvoice(context.Background(), &models.Invoice{ClientID: 1})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", created.IssueDate)
	assert.Equal(t, "2024-04-04", created.DueDate)
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.Equal(t, "INV-202403-0001", created.Number)
	assert.NotNil(t, created.Items)
	assert.True(t, created.Subtotal.IsZero())
}

func TestAddInvoice_NumberingPerMonth(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	numbers := []string{}
	for _, issue := range []string{"2024-03-01", "2024-03-31", "2024-04-01", "2024-03-15"} {
		inv := designInvoice()
		inv.IssueDate = issue
		created, err := svc.AddInvoice(ctx, inv)
		require.NoError(t, err)
		numbers = append(numbers, created.Number)
	}

	assert.Equal(t, []string{
		"INV-202403-0001",
		"INV-202403-0002",
		"INV-202404-0001",
		"INV-202403-0003",
	}, numbers)

	manual := designInvoice()
	manual.Number = "INV-202403-0001"
	created, err := svc.AddInvoice(ctx, manual)
	require.NoError(t, err)
	assert.Equal(t, "INV-202403-0001", created.Number, "duplicate numbers are allowed")

	found, err := svc.FindInvoicesByNumber(ctx, "INV-202403-0001")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestAddInvoice_Validation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Invoice)
	}{
		{"zero quantity", func(i *models.Invoice) { i.Items[0].Quantity = 0 }},
		{"negative rate", func(i *models.Invoice) { i.Items[0].Rate = d("-1") }},
		{"unknown status", func(i *models.Invoice) { i.Status = "void" }},
		{"missing client", func(i *models.Invoice) { i.ClientID = 0 }},
		{"bad issue date", func(i *models.Invoice) { i.IssueDate = "March 5" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := designInvoice()
			tt.mutate(inv)

			_, err := svc.AddInvoice(ctx, inv)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	_, err := svc.AddInvoice(ctx, nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	all, err := repo.GetAllInvoices(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected invoices must not be written")
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdateInvoice_RecomputesAndKeepsNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddInvoice(ctx, designInvoice())
	require.NoError(t, err)

	updated, err := svc.UpdateInvoice(ctx, created.ID, &models.Invoice{
		ClientID: 1,
		Items: []models.LineItem{
			{Description: "Design", Quantity: 3, Rate: d("500")},
			{Description: "Review", Quantity: 1, Rate: d("250.25")},
		},
		Discount: d("0"),
		Total:    d("1"),
		Status:   models.StatusSent,
	})
	require.NoError(t, err)

	assert.Equal(t, created.Number, updated.Number)
	assert.Equal(t, created.IssueDate, updated.IssueDate)
	assert.True(t, updated.Subtotal.Equal(d("1750.25")))
	assert.True(t, updated.Total.Equal(d("1750.25")))

	stored, err := svc.GetInvoice(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSent, stored.Status)
	assert.Len(t, stored.Items, 2)
	assert.True(t, stored.Total.Equal(d("1750.25")))
}

func TestUpdateInvoice_NotFound(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	existing, err := svc.AddInvoice(ctx, designInvoice())
	require.NoError(t, err)
	before, err := repo.GetAllInvoices(ctx)
	require.NoError(t, err)

	change := designInvoice()
	change.Items[0].Quantity = 9
	change.Status = models.StatusPaid
	_, err = svc.UpdateInvoice(ctx, existing.ID+1, change)
	assert.ErrorIs(t, err, models.ErrNotFound)

	after, err := repo.GetAllInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateInvoice_InvalidID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateInvoice(context.Background(), 0, designInvoice())
	assert.ErrorIs(t, err, ErrInvalidInvoiceID)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSetStatus_AnyTransition(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddInvoice(ctx, designInvoice())
	require.NoError(t, err)

	for _, status := range []models.InvoiceStatus{"paid", "DRAFT", "overdue", "sent"} {
		updated, err := svc.SetStatus(ctx, created.ID, status)
		require.NoError(t, err)

		want, _ := models.ParseInvoiceStatus(string(status))
		assert.Equal(t, want, updated.Status)
		assert.True(t, updated.Total.Equal(d("900")))
	}

	_, err = svc.SetStatus(ctx, created.ID, "cancelled")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.SetStatus(ctx, 99, models.StatusPaid)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// ============================================================================
// READ / DELETE
// ============================================================================

func TestListByClientAndStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := designInvoice()
	b := designInvoice()
	b.ClientID = 2
	b.Status = models.StatusPaid
	for _, inv := range []*models.Invoice{a, b} {
		_, err := svc.AddInvoice(ctx, inv)
		require.NoError(t, err)
	}

	byClient, err := svc.ListInvoicesByClient(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, models.StatusPaid, byClient[0].Status)

	paid, err := svc.ListInvoicesByStatus(ctx, "Paid")
	require.NoError(t, err)
	assert.Len(t, paid, 1)

	_, err = svc.ListInvoicesByStatus(ctx, "archived")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.FindInvoicesByNumber(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyNumber)
}

func TestDeleteInvoice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddInvoice(ctx, designInvoice())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(ctx, created.ID))
	_, err = svc.GetInvoice(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.NoError(t, svc.DeleteInvoice(ctx, created.ID), "second delete is a no-op")
	assert.ErrorIs(t, svc.DeleteInvoice(ctx, -1), models.ErrValidation)
}
