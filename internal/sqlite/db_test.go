package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	// Verify all tables were created
	tables := []string{
		"applications",
		"alerts",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestApplicationsTable verifies the applications table constraints
func TestApplicationsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO applications (id, company, position, status, created_at, modified_at)
		 VALUES (?, ?, ?, ?, datetime('now'), datetime('now'))`,
		"a1", "Acme", "SWE Intern", "applied")
	require.NoError(t, err)

	// Date columns default to empty strings, not NULL
	var deadline, interviewDate string
	err = db.QueryRowContext(ctx,
		`SELECT deadline, interview_date FROM applications WHERE id = ?`,
		"a1").Scan(&deadline, &interviewDate)
	require.NoError(t, err)
	require.Equal(t, "", deadline)
	require.Equal(t, "", interviewDate)

	// Status constraint - should fail with invalid status
	_, err = db.ExecContext(ctx,
		`INSERT INTO applications (id, company, position, status, created_at, modified_at)
		 VALUES (?, ?, ?, ?, datetime('now'), datetime('now'))`,
		"a2", "Acme", "SWE Intern", "ghosted")
	require.Error(t, err, "should fail with invalid status")
}

// TestAlertsTable verifies the alerts table constraints
func TestAlertsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO alerts (id, kind, message, record_id, created_at)
		 VALUES (?, ?, ?, ?, datetime('now'))`,
		"a1:deadline:7d", "deadline", "Application deadline for Acme is in 1 week!", "a1")
	require.NoError(t, err)

	// Read flag defaults to unread
	var isRead int
	err = db.QueryRowContext(ctx,
		`SELECT is_read FROM alerts WHERE id = ?`,
		"a1:deadline:7d").Scan(&isRead)
	require.NoError(t, err)
	require.Equal(t, 0, isRead)

	// Kind constraint - should fail with invalid kind
	_, err = db.ExecContext(ctx,
		`INSERT INTO alerts (id, kind, message, record_id, created_at)
		 VALUES (?, ?, ?, ?, datetime('now'))`,
		"a1:other:7d", "other", "message", "a1")
	require.Error(t, err, "should fail with invalid kind")
}
