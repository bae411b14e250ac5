package alert

import (
	"time"

	"interntrack/internal/domain/application"
)

// Regenerate evaluates the rule set against every record and returns
// the alerts that are new relative to existing. The caller unions the
// result into its collection; nothing is ever removed here.
//
// Dedup is by deterministic identity only — read state is irrelevant —
// so a trigger condition produces at most one alert over the lifetime
// of the collection, no matter how often regeneration runs.
func Regenerate(records []application.Record, existing []Alert, now time.Time) []Alert {
	seen := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		seen[a.ID] = struct{}{}
	}

	var fresh []Alert
	for _, rec := range records {
		for _, c := range Evaluate(rec, now) {
			id := Identity(rec.ID, c.Kind, c.Bucket)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			fresh = append(fresh, Alert{
				ID:        id,
				Kind:      c.Kind,
				Message:   c.Message,
				RecordID:  rec.ID,
				CreatedAt: now,
				Read:      false,
			})
		}
	}
	return fresh
}
