package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/invoicer/internal/database"
	"github.com/thenoetrevino/invoicer/internal/models"
	settingsservice "github.com/thenoetrevino/invoicer/internal/services/settings"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew(t *testing.T) {
	app := New(setupTestDB(t))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.ClientService == nil {
		t.Error("Expected ClientService to be initialized")
	}
	if app.InvoiceService == nil {
		t.Error("Expected InvoiceService to be initialized")
	}
	if app.SettingsService == nil {
		t.Error("Expected SettingsService to be initialized")
	}
	if app.BackupService == nil {
		t.Error("Expected BackupService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to be set")
	}
}

func TestInitialize_SeedsSettingsOnce(t *testing.T) {
	app := New(setupTestDB(t), WithDefaultCurrency("CHF"))
	ctx := context.Background()

	// Before initialization there is nothing to read
	_, err := app.SettingsService.GetSettings(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, app.Initialize(ctx))
		}()
	}
	wg.Wait()

	settings, err := app.SettingsService.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CHF", settings.Currency)
	assert.Empty(t, settings.CompanyName)

	var n int
	require.NoError(t, app.db.Get(&n, `SELECT COUNT(*) FROM settings`))
	assert.Equal(t, 1, n)
}

func TestInitialize_KeepsUpdatedSettings(t *testing.T) {
	app := New(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, app.Initialize(ctx))

	name := "Acme"
	_, err := app.SettingsService.UpdateSettings(ctx, settingsservice.Patch{CompanyName: &name})
	require.NoError(t, err)

	// A second App over the same handle initializes again without reseeding
	again := New(app.db)
	require.NoError(t, again.Initialize(ctx))

	settings, err := again.SettingsService.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", settings.CompanyName)
}

func TestExampleScenario(t *testing.T) {
	app := New(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, app.Initialize(ctx))

	client, err := app.ClientService.AddClient(ctx, &models.Client{Name: "Acme", Company: "Acme Co"})
	require.NoError(t, err)
	assert.Equal(t, 1, client.ID)

	inv, err := app.InvoiceService.AddInvoice(ctx, &models.Invoice{
		ClientID: 1,
		Items:    []models.LineItem{{Description: "Design", Quantity: 2, Rate: decimal.NewFromInt(500)}},
		Discount: decimal.NewFromInt(100),
		Status:   models.StatusDraft,
	})
	require.NoError(t, err)

	stored, err := app.InvoiceService.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stored.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(900)))
}

func TestOpen_StorageUnavailable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Open(context.Background(), filepath.Join(blocker, "data"))
	assert.True(t, errors.Is(err, models.ErrStorageUnavailable), "got %v", err)
}

func TestOpen_AndClose(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	app, err := Open(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, app.Initialize(ctx))
	_, err = app.ClientService.AddClient(ctx, &models.Client{Name: "Persisted"})
	require.NoError(t, err)
	require.NoError(t, app.Close())

	reopened, err := Open(ctx, dir)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.Initialize(ctx))

	clients, err := reopened.ClientService.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Persisted", clients[0].Name)
}
