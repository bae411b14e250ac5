package application

import "time"

// Status represents the workflow state of an application
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusAccepted  Status = "accepted"
)

// Record represents one tracked internship application.
//
// Date fields hold the values as entered at the boundary, either a
// calendar date ("2006-01-02") or a date-time ("2006-01-02T15:04").
// They are parsed on read so that a bad stored value degrades to
// "no date set" instead of failing downstream consumers.
type Record struct {
	ID              string    `json:"id"`
	Company         string    `json:"company"`
	Position        string    `json:"position"`
	Status          Status    `json:"status"`
	ApplicationDate string    `json:"application_date,omitempty"`
	Deadline        string    `json:"deadline,omitempty"`
	InterviewDate   string    `json:"interview_date,omitempty"`
	Location        string    `json:"location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	ModifiedAt      time.Time `json:"modified_at"`
}

// dateLayouts are tried in order when parsing stored date values.
// Naive values (no offset) are read as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses a stored date value. The second return is false for
// empty or unparsable input.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DeadlineTime returns the parsed application deadline, if set and valid.
func (r Record) DeadlineTime() (time.Time, bool) {
	return ParseDate(r.Deadline)
}

// InterviewTime returns the parsed interview date, if set and valid.
func (r Record) InterviewTime() (time.Time, bool) {
	return ParseDate(r.InterviewDate)
}

// ValidStatus reports whether s is one of the known workflow states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusAccepted:
		return true
	}
	return false
}
