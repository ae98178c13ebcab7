package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/invoicer/internal/models"
)

func testNumbering(period string) *Numbering {
	return &Numbering{
		Period: period,
		Format: func(seq int) string { return fmt.Sprintf("T-%s-%03d", period, seq) },
	}
}

func TestInvoiceRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	in := sampleInvoice(1)
	in.Notes = "thanks"
	created, err := repo.CreateInvoice(ctx, in, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 0, in.ID, "input must not be mutated")

	got, err := repo.GetInvoiceByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Design", got.Items[0].Description)
	assert.Equal(t, "Hosting", got.Items[1].Description)
	assert.True(t, got.Items[1].Rate.Equal(dec("20.5")))
	assert.True(t, got.Subtotal.Equal(dec("1020.5")))
	assert.True(t, got.Total.Equal(dec("920.5")))
	assert.Equal(t, models.StatusDraft, got.Status)
	assert.Equal(t, "thanks", got.Notes)
	assert.Equal(t, "2024-03-05", got.IssueDate)

	_, err = repo.GetInvoiceByID(ctx, 77)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestInvoiceRepo_EmptyItemsIsNotNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	in := sampleInvoice(1)
	in.Items = nil
	created, err := repo.CreateInvoice(ctx, in, nil)
	require.NoError(t, err)

	got, err := repo.GetInvoiceByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestInvoiceRepo_Numbering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.CreateInvoice(ctx, sampleInvoice(1), testNumbering("202403"))
	require.NoError(t, err)
	second, err := repo.CreateInvoice(ctx, sampleInvoice(1), testNumbering("202403"))
	require.NoError(t, err)
	other, err := repo.CreateInvoice(ctx, sampleInvoice(1), testNumbering("202404"))
	require.NoError(t, err)

	assert.Equal(t, "T-202403-001", first.Number)
	assert.Equal(t, "T-202403-002", second.Number)
	assert.Equal(t, "T-202404-001", other.Number)

	// Caller-supplied numbers are kept and do not consume the counter
	manual := sampleInvoice(1)
	manual.Number = "CUSTOM-1"
	kept, err := repo.CreateInvoice(ctx, manual, testNumbering("202403"))
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM-1", kept.Number)

	third, err := repo.CreateInvoice(ctx, sampleInvoice(1), testNumbering("202403"))
	require.NoError(t, err)
	assert.Equal(t, "T-202403-003", third.Number)
}

func TestInvoiceRepo_UpdateReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.CreateInvoice(ctx, sampleInvoice(1), nil)
	require.NoError(t, err)

	created.Items = []models.LineItem{
		{Description: "Only", Quantity: 3, Rate: dec("10"), Amount: dec("30")},
	}
	created.Subtotal = dec("30")
	created.Discount = dec("0")
	created.Total = dec("30")
	created.Status = models.StatusPaid
	require.NoError(t, repo.UpdateInvoice(ctx, created))

	got, err := repo.GetInvoiceByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Only", got.Items[0].Description)
	assert.Equal(t, models.StatusPaid, got.Status)
	assert.True(t, got.Total.Equal(dec("30")))
	assert.Equal(t, 1, countRows(t, db, "invoice_items"))
}

func TestInvoiceRepo_UpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	missing := sampleInvoice(1)
	missing.ID = 5
	err := repo.UpdateInvoice(ctx, missing)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.Equal(t, 0, countRows(t, db, "invoices"))
	assert.Equal(t, 0, countRows(t, db, "invoice_items"))
}

func TestInvoiceRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.CreateInvoice(ctx, sampleInvoice(1), nil)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteInvoice(ctx, created.ID))
	_, err = repo.GetInvoiceByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 0, countRows(t, db, "invoice_items"))

	assert.NoError(t, repo.DeleteInvoice(ctx, 999))
}

func TestInvoiceRepo_Queries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	a := sampleInvoice(1)
	a.Number = "A-1"
	b := sampleInvoice(2)
	b.Number = "A-1"
	b.Status = models.StatusSent
	c := sampleInvoice(1)
	c.Number = "C-1"
	c.Status = models.StatusSent
	for _, inv := range []*models.Invoice{a, b, c} {
		_, err := repo.CreateInvoice(ctx, inv, nil)
		require.NoError(t, err)
	}

	byClient, err := repo.GetInvoicesByClient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byClient, 2)
	assert.Equal(t, "A-1", byClient[0].Number)
	assert.Equal(t, "C-1", byClient[1].Number)
	assert.Len(t, byClient[1].Items, 2, "items load for filtered queries")

	sent, err := repo.GetInvoicesByStatus(ctx, models.StatusSent)
	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.Equal(t, 2, sent[0].ClientID)

	byNumber, err := repo.GetInvoicesByNumber(ctx, "A-1")
	require.NoError(t, err)
	assert.Len(t, byNumber, 2)

	none, err := repo.GetInvoicesByNumber(ctx, "nope")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := repo.GetAllInvoices(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
