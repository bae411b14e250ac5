package alert

import (
	"testing"
	"time"

	"interntrack/internal/domain/application"

	"github.com/stretchr/testify/require"
)

func TestRegenerate_AcmeScenario(t *testing.T) {
	records := []application.Record{{
		ID:       "a1",
		Company:  "Acme",
		Position: "SWE Intern",
		Status:   application.StatusApplied,
		Deadline: "2024-07-01",
	}}

	fresh := Regenerate(records, nil, evalNow)
	require.Len(t, fresh, 1)
	require.Equal(t, "a1:deadline:7d", fresh[0].ID)
	require.Equal(t, "Application deadline for Acme is in 1 week!", fresh[0].Message)
	require.Equal(t, "a1", fresh[0].RecordID)
	require.False(t, fresh[0].Read)
	require.Equal(t, evalNow, fresh[0].CreatedAt)
}

func TestRegenerate_Deterministic(t *testing.T) {
	records := []application.Record{{
		ID:       "a1",
		Company:  "Acme",
		Position: "SWE Intern",
		Status:   application.StatusApplied,
		Deadline: "2024-07-01",
	}}

	first := Regenerate(records, nil, evalNow)
	second := Regenerate(records, nil, evalNow)
	require.Equal(t, first, second)
}

func TestRegenerate_NoDuplicates(t *testing.T) {
	records := []application.Record{{
		ID:       "a1",
		Company:  "Acme",
		Position: "SWE Intern",
		Status:   application.StatusApplied,
		Deadline: "2024-07-01",
	}}

	first := Regenerate(records, nil, evalNow)
	require.Len(t, first, 1)

	// Feeding the first pass back in as existing yields nothing new
	again := Regenerate(records, first, evalNow)
	require.Empty(t, again)
}

func TestRegenerate_ReadStateIrrelevantToDedup(t *testing.T) {
	records := []application.Record{{
		ID:       "a1",
		Company:  "Acme",
		Position: "SWE Intern",
		Status:   application.StatusApplied,
		Deadline: "2024-07-01",
	}}

	existing := Regenerate(records, nil, evalNow)
	MarkAllRead(existing)

	// A read alert still suppresses regeneration of the same identity
	again := Regenerate(records, existing, evalNow)
	require.Empty(t, again)
}

func TestRegenerate_MultipleRecords(t *testing.T) {
	records := []application.Record{
		{
			ID:       "a1",
			Company:  "Acme",
			Position: "SWE Intern",
			Status:   application.StatusApplied,
			Deadline: "2024-07-01",
		},
		{
			ID:            "a2",
			Company:       "Globex",
			Position:      "Data Intern",
			Status:        application.StatusInterview,
			InterviewDate: "2024-06-25T00:00",
		},
		{
			ID:       "a3",
			Company:  "Initech",
			Position: "QA Intern",
			Status:   application.StatusApplied,
		},
	}

	fresh := Regenerate(records, nil, evalNow)
	require.Len(t, fresh, 2)
	require.Equal(t, "a1:deadline:7d", fresh[0].ID)
	require.Equal(t, "a2:interview:24h", fresh[1].ID)
}

func TestRegenerate_LaterBoundary(t *testing.T) {
	records := []application.Record{{
		ID:       "a1",
		Company:  "Acme",
		Position: "SWE Intern",
		Status:   application.StatusApplied,
		Deadline: "2024-07-01",
	}}

	existing := Regenerate(records, nil, evalNow)
	require.Len(t, existing, 1)

	// Four days later the 3-day boundary fires as a distinct alert
	later := evalNow.Add(4 * 24 * time.Hour)
	fresh := Regenerate(records, existing, later)
	require.Len(t, fresh, 1)
	require.Equal(t, "a1:deadline:3d", fresh[0].ID)
}

func TestUnreadCount(t *testing.T) {
	alerts := []Alert{
		{ID: "x", Read: false},
		{ID: "y", Read: true},
		{ID: "z", Read: false},
	}
	require.Equal(t, 2, UnreadCount(alerts))

	MarkAllRead(alerts)
	require.Equal(t, 0, UnreadCount(alerts))
}

func TestIdentity(t *testing.T) {
	require.Equal(t, "a1:deadline:7d", Identity("a1", KindDeadline, "7d"))
	require.Equal(t, "a2:interview:2h", Identity("a2", KindInterview, "2h"))
}
