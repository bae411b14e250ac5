package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const (
	// Filename is the fixed name the exported document is delivered as.
	Filename = "internship-events.ics"
	// MIMEType is the interchange media type of the document.
	MIMEType = "text/calendar"

	prodID    = "-//interntrack//Internship Tracker//EN"
	uidDomain = "interntrack"
)

// Render serializes events into a single VCALENDAR document. Timestamps
// are written in the compact UTC form (20060102T150405Z); lines use the
// CRLF convention required by the format.
//
// An empty event sequence is a distinct condition, not an empty
// document: callers report "nothing to export" on ErrNoEvents.
func Render(events []Event, now time.Time) (string, error) {
	if len(events) == 0 {
		return "", ErrNoEvents
	}

	cal := ical.NewCalendar()
	cal.SetVersion("2.0")
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")

	base := now.UnixNano()
	for i, event := range events {
		uid := fmt.Sprintf("%d@%s", base+int64(i), uidDomain)
		ve := cal.AddEvent(uid)
		ve.SetDtStampTime(now)
		ve.SetStartAt(event.Start)
		ve.SetEndAt(event.End)
		ve.SetSummary(event.Title)
		ve.SetDescription(event.Description)
		if event.Location != "" {
			ve.SetLocation(event.Location)
		}

		if event.AlarmMinutesBefore > 0 {
			alarm := ve.AddAlarm()
			alarm.SetAction(ical.ActionDisplay)
			alarm.SetTrigger(fmt.Sprintf("-PT%dM", event.AlarmMinutesBefore))
			alarm.SetProperty(ical.ComponentPropertyDescription, "Reminder")
		}
	}

	// CRLF regardless of platform; Serialize defaults to the OS newline.
	return cal.Serialize(ical.WithNewLineWindows), nil
}
