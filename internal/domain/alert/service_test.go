package alert_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"interntrack/internal/domain/alert"
	"interntrack/internal/domain/application"
	"interntrack/internal/repository"
	"interntrack/internal/repository/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var serviceNow = time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC)

func newFixedClockService(alerts *mocks.AlertRepository, records *mocks.ApplicationRepository) *alert.Service {
	svc := alert.NewService(alerts, records, nil)
	svc.SetClock(func() time.Time { return serviceNow })
	return svc
}

func TestService_Regenerate(t *testing.T) {
	alertRepo := &mocks.AlertRepository{}
	appRepo := &mocks.ApplicationRepository{}
	svc := newFixedClockService(alertRepo, appRepo)
	ctx := context.Background()

	records := []application.Record{{
		ID:       "a1",
		Company:  "Acme",
		Position: "SWE Intern",
		Status:   application.StatusApplied,
		Deadline: "2024-07-01",
	}}

	appRepo.On("List", ctx, application.ListOptions{}).Return(records, nil)
	alertRepo.On("List", ctx).Return([]alert.Alert(nil), nil)
	alertRepo.On("Insert", ctx, mock.MatchedBy(func(fresh []alert.Alert) bool {
		return len(fresh) == 1 && fresh[0].ID == "a1:deadline:7d"
	})).Return(nil)

	count, err := svc.Regenerate(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	alertRepo.AssertExpectations(t)
}

func TestService_Regenerate_NothingNew(t *testing.T) {
	alertRepo := &mocks.AlertRepository{}
	appRepo := &mocks.ApplicationRepository{}
	svc := newFixedClockService(alertRepo, appRepo)
	ctx := context.Background()

	appRepo.On("List", ctx, application.ListOptions{}).Return([]application.Record(nil), nil)
	alertRepo.On("List", ctx).Return([]alert.Alert(nil), nil)

	count, err := svc.Regenerate(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	// Insert is never called for an empty batch
	alertRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_Regenerate_LoadError(t *testing.T) {
	alertRepo := &mocks.AlertRepository{}
	appRepo := &mocks.ApplicationRepository{}
	svc := newFixedClockService(alertRepo, appRepo)
	ctx := context.Background()

	appRepo.On("List", ctx, application.ListOptions{}).Return(nil, errors.New("db down"))

	_, err := svc.Regenerate(ctx)
	require.Error(t, err)
}

func TestService_MarkRead(t *testing.T) {
	alertRepo := &mocks.AlertRepository{}
	appRepo := &mocks.ApplicationRepository{}
	svc := newFixedClockService(alertRepo, appRepo)
	ctx := context.Background()

	alertRepo.On("MarkRead", ctx, "a1:deadline:7d").Return(nil)
	require.NoError(t, svc.MarkRead(ctx, "a1:deadline:7d"))

	// Repository not-found translates to the domain error
	alertRepo.On("MarkRead", ctx, "missing").Return(repository.ErrNotFound)
	err := svc.MarkRead(ctx, "missing")
	require.ErrorIs(t, err, alert.ErrAlertNotFound)

	// Empty ID rejected before touching the repository
	err = svc.MarkRead(ctx, "")
	require.ErrorIs(t, err, alert.ErrInvalidInput)
}

func TestService_MarkAllRead(t *testing.T) {
	alertRepo := &mocks.AlertRepository{}
	appRepo := &mocks.ApplicationRepository{}
	svc := newFixedClockService(alertRepo, appRepo)
	ctx := context.Background()

	alertRepo.On("MarkAllRead", ctx).Return(nil)
	require.NoError(t, svc.MarkAllRead(ctx))
}

func TestService_UnreadCount(t *testing.T) {
	alertRepo := &mocks.AlertRepository{}
	appRepo := &mocks.ApplicationRepository{}
	svc := newFixedClockService(alertRepo, appRepo)
	ctx := context.Background()

	alertRepo.On("UnreadCount", ctx).Return(3, nil)

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}
