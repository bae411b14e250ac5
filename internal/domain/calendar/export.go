package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"interntrack/internal/domain/application"
)

// ApplicationRepository provides read access to the records to export.
type ApplicationRepository interface {
	List(ctx context.Context, opts application.ListOptions) ([]application.Record, error)
}

// Document is a rendered calendar ready for delivery. Writing it to
// disk (or offering it as a download) is the caller's concern.
type Document struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Content  string `json:"content"`
}

// Service produces calendar exports from the stored record set.
type Service struct {
	records ApplicationRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new calendar export service.
func NewService(records ApplicationRepository, logger *slog.Logger) *Service {
	return &Service{records: records, logger: logger, now: time.Now}
}

// SetClock overrides the time source used for DTSTAMP and UIDs.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Export encodes every stored record and renders the combined document.
// Returns ErrNoEvents when no record carries an exportable date.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	records, err := s.records.List(ctx, application.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("loading applications: %w", err)
	}

	var events []Event
	for _, rec := range records {
		events = append(events, EncodeRecord(rec)...)
	}

	content, err := Render(events, s.now())
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("calendar exported", "events", len(events))
	}
	return &Document{
		Filename: Filename,
		MIMEType: MIMEType,
		Content:  content,
	}, nil
}
