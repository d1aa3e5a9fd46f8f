package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/aftercare/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aftercare-test.db")
	db, err := OpenDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// ============================================================================
// FIXTURES
// ============================================================================

func testBooking(reference string, weeks int, start, end string) *models.Booking {
	return &models.Booking{
		Reference: reference,
		Weeks:     weeks,
		Days:      weeks * models.DefaultSessionsPerWeek,
		Price:     weeks * models.DefaultPricePerWeek,
		StartDate: start,
		EndDate:   end,
	}
}
