package alert

import (
	"context"

	"interntrack/internal/domain/application"
)

// AlertRepository provides persistence for the alert collection.
// Alerts are append-only from the engine's point of view; only the
// read flag is ever updated.
type AlertRepository interface {
	Insert(ctx context.Context, alerts []Alert) error
	List(ctx context.Context) ([]Alert, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}

// ApplicationRepository provides read access to the record set the
// engine derives alerts from.
type ApplicationRepository interface {
	List(ctx context.Context, opts application.ListOptions) ([]application.Record, error)
}
