package cli

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/app"
	"github.com/thenoetrevino/invoicer/internal/testutil"
)

// FixedNow is the clock used by CLI tests so generated numbers and dates
// are predictable
var FixedNow = time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sqlx.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithClock(func() time.Time { return FixedNow }))

	return db, appInstance
}

// CreateTestClient wraps testutil.CreateTestClient for CLI tests
func CreateTestClient(t *testing.T, db *sqlx.DB, name string) int {
	t.Helper()
	return testutil.CreateTestClient(t, db, name)
}

// CreateTestInvoice wraps testutil.CreateTestInvoice for CLI tests
func CreateTestInvoice(t *testing.T, db *sqlx.DB, clientID int, number, rate string) int {
	t.Helper()
	return testutil.CreateTestInvoice(t, db, clientID, number, rate)
}
