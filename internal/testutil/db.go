// Package testutil holds shared helpers for tests that need a database or
// run CLI commands
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/thenoetrevino/aftercare/internal/app"
	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema. It is
// closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestApp creates an App over a fresh in-memory database with the
// default catalog and references "ref-1", "ref-2", ...
func SetupTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	seq := 0
	opts = append([]app.Option{app.WithReferenceFunc(func() string {
		seq++
		return fmt.Sprintf("ref-%d", seq)
	})}, opts...)
	return app.New(database.NewRepository(SetupTestDB(t)), booking.DefaultCatalog(), opts...)
}
