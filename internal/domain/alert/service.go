package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"interntrack/internal/domain/application"
	"interntrack/internal/repository"
)

// Service runs alert derivation against the stored record set and owns
// read-state changes to the persisted alert collection.
type Service struct {
	alerts  AlertRepository
	records ApplicationRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new alert service.
func NewService(alerts AlertRepository, records ApplicationRepository, logger *slog.Logger) *Service {
	return &Service{
		alerts:  alerts,
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock overrides the time source. Used by tests and callers that
// need a fixed evaluation instant.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Regenerate loads the record set and the existing alert collection,
// derives any newly triggered alerts and appends them. It returns the
// number of alerts added.
func (s *Service) Regenerate(ctx context.Context) (int, error) {
	records, err := s.records.List(ctx, application.ListOptions{})
	if err != nil {
		return 0, fmt.Errorf("loading applications: %w", err)
	}
	existing, err := s.alerts.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading alerts: %w", err)
	}

	fresh := Regenerate(records, existing, s.now())
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := s.alerts.Insert(ctx, fresh); err != nil {
		return 0, fmt.Errorf("storing alerts: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("alerts generated", "count", len(fresh))
	}
	return len(fresh), nil
}

// List returns the alert collection, newest first.
func (s *Service) List(ctx context.Context) ([]Alert, error) {
	return s.alerts.List(ctx)
}

// MarkRead marks a single alert as read.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.alerts.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAlertNotFound
		}
		return fmt.Errorf("marking alert read: %w", err)
	}
	return nil
}

// MarkAllRead marks every alert in the collection as read.
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.alerts.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("marking all alerts read: %w", err)
	}
	return nil
}

// UnreadCount returns the derived unread count.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	return s.alerts.UnreadCount(ctx)
}
