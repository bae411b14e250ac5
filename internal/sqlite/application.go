package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"interntrack/internal/domain/application"
	"interntrack/internal/repository"
)

// ApplicationRepository implements application.Repository for SQLite
type ApplicationRepository struct {
	db *DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application record
func (r *ApplicationRepository) Create(ctx context.Context, rec *application.Record) error {
	query := `
		INSERT INTO applications (
			id, company, position, status, application_date,
			deadline, interview_date, location, created_at, modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Company,
		rec.Position,
		rec.Status,
		rec.ApplicationDate,
		rec.Deadline,
		rec.InterviewDate,
		rec.Location,
		rec.CreatedAt,
		rec.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// Get retrieves an application record by ID
func (r *ApplicationRepository) Get(ctx context.Context, id string) (*application.Record, error) {
	query := `
		SELECT
			id, company, position, status, application_date,
			deadline, interview_date, location, created_at, modified_at
		FROM applications
		WHERE id = ?
	`

	var rec application.Record
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.Company,
		&rec.Position,
		&rec.Status,
		&rec.ApplicationDate,
		&rec.Deadline,
		&rec.InterviewDate,
		&rec.Location,
		&rec.CreatedAt,
		&rec.ModifiedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &rec, nil
}

// Update replaces the mutable fields of an application record
func (r *ApplicationRepository) Update(ctx context.Context, rec *application.Record) error {
	query := `
		UPDATE applications
		SET company = ?, position = ?, status = ?, application_date = ?,
		    deadline = ?, interview_date = ?, location = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.Company,
		rec.Position,
		rec.Status,
		rec.ApplicationDate,
		rec.Deadline,
		rec.InterviewDate,
		rec.Location,
		rec.ModifiedAt,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
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

// Delete removes an application record
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
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

// List returns application records matching the given options, newest first
func (r *ApplicationRepository) List(ctx context.Context, opts application.ListOptions) ([]application.Record, error) {
	query := `
		SELECT
			id, company, position, status, application_date,
			deadline, interview_date, location, created_at, modified_at
		FROM applications
	`

	var args []interface{}
	if len(opts.Statuses) > 0 {
		placeholders := make([]string, len(opts.Statuses))
		for i, status := range opts.Statuses {
			placeholders[i] = "?"
			args = append(args, status)
		}
		query += fmt.Sprintf(" WHERE status IN (%s)", strings.Join(placeholders, ","))
	}

	query += " ORDER BY created_at DESC, id"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var records []application.Record
	for rows.Next() {
		var rec application.Record
		err := rows.Scan(
			&rec.ID,
			&rec.Company,
			&rec.Position,
			&rec.Status,
			&rec.ApplicationDate,
			&rec.Deadline,
			&rec.InterviewDate,
			&rec.Location,
			&rec.CreatedAt,
			&rec.ModifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return records, nil
}
