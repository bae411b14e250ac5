package application

import "context"

// Repository provides persistence for application records.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]Record, error)
}

// AlertRegenerator re-derives the alert collection after the record set
// changes. The service invokes it on every successful mutation.
type AlertRegenerator interface {
	Regenerate(ctx context.Context) (int, error)
}
