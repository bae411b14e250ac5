package sqlite

import (
	"context"
	"fmt"

	"interntrack/internal/domain/alert"
	"interntrack/internal/repository"
)

// AlertRepository implements alert.AlertRepository for SQLite
type AlertRepository struct {
	db *DB
}

// NewAlertRepository creates a new AlertRepository
func NewAlertRepository(db *DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Insert appends alerts to the collection. Identities are expected to
// be deduplicated by the engine before they get here.
func (r *AlertRepository) Insert(ctx context.Context, alerts []alert.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO alerts (id, kind, message, record_id, created_at, is_read)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, a := range alerts {
		if _, err := tx.ExecContext(ctx, query, a.ID, a.Kind, a.Message, a.RecordID, a.CreatedAt, a.Read); err != nil {
			return fmt.Errorf("failed to insert alert %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit alerts: %w", err)
	}
	return nil
}

// List returns the alert collection, newest first
func (r *AlertRepository) List(ctx context.Context) ([]alert.Alert, error) {
	query := `
		SELECT id, kind, message, record_id, created_at, is_read
		FROM alerts
		ORDER BY created_at DESC, rowid DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []alert.Alert
	for rows.Next() {
		var a alert.Alert
		if err := rows.Scan(&a.ID, &a.Kind, &a.Message, &a.RecordID, &a.CreatedAt, &a.Read); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}

	return alerts, nil
}

// MarkRead sets the read flag on one alert
func (r *AlertRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// MarkAllRead sets the read flag on every alert
func (r *AlertRepository) MarkAllRead(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = 1`); err != nil {
		return fmt.Errorf("failed to mark all alerts read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread alerts. Derived on demand,
// never cached.
func (r *AlertRepository) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts WHERE is_read = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}
	return count, nil
}
