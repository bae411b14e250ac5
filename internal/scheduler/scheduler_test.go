package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingRegenerator struct {
	mu    sync.Mutex
	calls int
}

func (c *countingRegenerator) Regenerate(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return 0, nil
}

func (c *countingRegenerator) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(&countingRegenerator{}, "not a cron spec", slog.Default())
	require.Error(t, err)
}

func TestNew_ValidSchedule(t *testing.T) {
	s, err := New(&countingRegenerator{}, "@hourly", slog.Default())
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestScheduler_Tick(t *testing.T) {
	reg := &countingRegenerator{}
	s, err := New(reg, "@hourly", slog.Default())
	require.NoError(t, err)

	// Exercise the sweep directly rather than waiting on the cron clock
	s.tick()
	require.Equal(t, 1, reg.count())
}

func TestScheduler_StartStop(t *testing.T) {
	reg := &countingRegenerator{}
	s, err := New(reg, "@every 1h", slog.Default())
	require.NoError(t, err)

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
