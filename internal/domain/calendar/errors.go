package calendar

import "errors"

// ErrNoEvents indicates an export was requested but no record carries
// a deadline or interview date. Callers surface it to the user instead
// of emitting an empty calendar.
var ErrNoEvents = errors.New("no events to export")
