package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"interntrack/internal/repository"

	"github.com/google/uuid"
)

// Service handles application record business logic. It owns all record
// mutations; alert derivation is re-run after each one so the alert
// collection tracks the record set without a polling loop.
type Service struct {
	repo   Repository
	alerts AlertRegenerator
	logger *slog.Logger
}

// NewService creates a new application service.
func NewService(repo Repository, alerts AlertRegenerator, logger *slog.Logger) *Service {
	return &Service{repo: repo, alerts: alerts, logger: logger}
}

// CreateRequest describes an application creation request.
type CreateRequest struct {
	Company         string
	Position        string
	Status          Status
	ApplicationDate string
	Deadline        string
	InterviewDate   string
	Location        string
}

// UpdateRequest describes a partial application update.
type UpdateRequest struct {
	ID              string
	Company         *string
	Position        *string
	ApplicationDate *string
	Deadline        *string
	InterviewDate   *string
	Location        *string
}

// Create creates a new application record with validation.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Record, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusApplied
	}

	now := time.Now()
	rec := &Record{
		ID:              uuid.NewString(),
		Company:         req.Company,
		Position:        req.Position,
		Status:          status,
		ApplicationDate: req.ApplicationDate,
		Deadline:        req.Deadline,
		InterviewDate:   req.InterviewDate,
		Location:        req.Location,
		CreatedAt:       now,
		ModifiedAt:      now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	s.recordSetChanged(ctx)
	return rec, nil
}

// Update modifies an existing application record.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Record, error) {
	if err := ValidateUpdateInput(req); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading application: %w", err)
	}

	updated := *current
	if req.Company != nil {
		updated.Company = *req.Company
	}
	if req.Position != nil {
		updated.Position = *req.Position
	}
	if req.ApplicationDate != nil {
		updated.ApplicationDate = *req.ApplicationDate
	}
	if req.Deadline != nil {
		updated.Deadline = *req.Deadline
	}
	if req.InterviewDate != nil {
		updated.InterviewDate = *req.InterviewDate
	}
	if req.Location != nil {
		updated.Location = *req.Location
	}
	updated.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating application: %w", err)
	}

	s.recordSetChanged(ctx)
	return &updated, nil
}

// SetStatus moves an application to a new workflow status.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (*Record, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading application: %w", err)
	}

	updated := *current
	updated.Status = status
	updated.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating application status: %w", err)
	}

	s.recordSetChanged(ctx)
	return &updated, nil
}

// Delete removes an application record. Alerts already derived from it
// are kept; they reference the record only weakly.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting application: %w", err)
	}

	s.recordSetChanged(ctx)
	return nil
}

// Get returns an application by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting application: %w", err)
	}
	return rec, nil
}

// List returns application records based on options, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	return s.repo.List(ctx, opts)
}

// recordSetChanged re-derives alerts after a mutation. Failures are
// logged rather than surfaced: the next tick or mutation catches up,
// and the mutation itself already succeeded.
func (s *Service) recordSetChanged(ctx context.Context) {
	if s.alerts == nil {
		return
	}
	if _, err := s.alerts.Regenerate(ctx); err != nil && s.logger != nil {
		s.logger.Warn("alert regeneration after record change failed", "error", err)
	}
}
