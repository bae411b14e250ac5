package mocks

import (
	"context"

	"interntrack/internal/domain/alert"
	"interntrack/internal/domain/application"

	"github.com/stretchr/testify/mock"
)

// ApplicationRepository is a mock for application.Repository.
type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) Create(ctx context.Context, rec *application.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *ApplicationRepository) Get(ctx context.Context, id string) (*application.Record, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*application.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) Update(ctx context.Context, rec *application.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *ApplicationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ApplicationRepository) List(ctx context.Context, opts application.ListOptions) ([]application.Record, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]application.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AlertRepository is a mock for alert.AlertRepository.
type AlertRepository struct {
	mock.Mock
}

func (m *AlertRepository) Insert(ctx context.Context, alerts []alert.Alert) error {
	args := m.Called(ctx, alerts)
	return args.Error(0)
}

func (m *AlertRepository) List(ctx context.Context) ([]alert.Alert, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]alert.Alert); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AlertRepository) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AlertRepository) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *AlertRepository) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// AlertRegenerator is a mock for application.AlertRegenerator.
type AlertRegenerator struct {
	mock.Mock
}

func (m *AlertRegenerator) Regenerate(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
