package alert

import (
	"fmt"
	"time"
)

// Kind categorizes what an alert is about.
type Kind string

const (
	KindDeadline  Kind = "deadline"
	KindInterview Kind = "interview"
	KindFollowup  Kind = "followup"
	// KindStatus is reserved for status-change notices; no generation
	// rule currently produces it.
	KindStatus Kind = "status"
)

// Alert is a derived, deduplicated notification. Its identity is
// deterministic: the same trigger condition for the same record always
// yields the same ID, which is what makes regeneration idempotent.
type Alert struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	RecordID  string    `json:"record_id"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// Identity derives the deterministic alert ID from the record identity,
// the alert kind and the trigger bucket (e.g. "7d", "2h").
func Identity(recordID string, kind Kind, bucket string) string {
	return fmt.Sprintf("%s:%s:%s", recordID, kind, bucket)
}

// UnreadCount returns the number of unread alerts. The count is a
// projection over the collection, never stored state.
func UnreadCount(alerts []Alert) int {
	n := 0
	for _, a := range alerts {
		if !a.Read {
			n++
		}
	}
	return n
}

// MarkAllRead flips every alert in the collection to read.
func MarkAllRead(alerts []Alert) {
	for i := range alerts {
		alerts[i].Read = true
	}
}
