package calendar

import (
	"fmt"
	"time"

	"interntrack/internal/domain/application"
)

// interviewLocationFallback is used when an interview has no stored
// location.
const interviewLocationFallback = "Check email for details"

// Event is the in-memory form of one exportable calendar entry. It is
// built on demand from an application record and consumed immediately
// by the renderer; it is never persisted.
type Event struct {
	Title              string
	Start              time.Time
	End                time.Time
	Description        string
	Location           string
	AlarmMinutesBefore int
}

// EncodeRecord converts one application record into zero, one or two
// calendar events: a zero-length marker event for the deadline and a
// one-hour block with a 60-minute reminder for the interview. Records
// without valid dates contribute nothing. Encoding is stateless, so
// repeated calls yield equal output.
func EncodeRecord(rec application.Record) []Event {
	var events []Event

	if deadline, ok := rec.DeadlineTime(); ok {
		events = append(events, Event{
			Title:       fmt.Sprintf("Application Deadline: %s - %s", rec.Company, rec.Position),
			Start:       deadline,
			End:         deadline,
			Description: fmt.Sprintf("Submit application for %s at %s", rec.Position, rec.Company),
			Location:    rec.Location,
		})
	}

	if interview, ok := rec.InterviewTime(); ok {
		location := rec.Location
		if location == "" {
			location = interviewLocationFallback
		}
		events = append(events, Event{
			Title:              fmt.Sprintf("Interview: %s - %s", rec.Company, rec.Position),
			Start:              interview,
			End:                interview.Add(time.Hour),
			Description:        fmt.Sprintf("Interview for %s position at %s", rec.Position, rec.Company),
			Location:           location,
			AlarmMinutesBefore: 60,
		})
	}

	return events
}
