package alert

import (
	"fmt"
	"math"
	"time"

	"interntrack/internal/domain/application"
)

const day = 24 * time.Hour

// Candidate is a rule match for one record: the alert it would produce,
// minus identity and timestamps.
type Candidate struct {
	Kind    Kind
	Bucket  string
	Message string
}

// Evaluate applies the rule set to one application record at the given
// instant and returns the candidate alerts whose trigger conditions
// hold right now.
//
// Every rule matches on an exact integer boundary (days or hours until
// the event), not a range. An evaluation pass therefore has to run at
// least once per hour or boundaries can slip past unobserved; the
// scheduler's default cadence accounts for this.
//
// Unparsable stored dates make the affected rules skip the record.
func Evaluate(rec application.Record, now time.Time) []Candidate {
	var out []Candidate

	if deadline, ok := rec.DeadlineTime(); ok {
		switch daysUntil := ceilDiv(deadline.Sub(now), day); daysUntil {
		case 7:
			out = append(out, Candidate{
				Kind:    KindDeadline,
				Bucket:  "7d",
				Message: fmt.Sprintf("Application deadline for %s is in 1 week!", rec.Company),
			})
		case 3:
			out = append(out, Candidate{
				Kind:    KindDeadline,
				Bucket:  "3d",
				Message: fmt.Sprintf("Application deadline for %s is in 3 days!", rec.Company),
			})
		case 1:
			out = append(out, Candidate{
				Kind:    KindDeadline,
				Bucket:  "1d",
				Message: fmt.Sprintf("Application deadline for %s is tomorrow!", rec.Company),
			})
		}
	}

	if interview, ok := rec.InterviewTime(); ok && rec.Status == application.StatusInterview {
		switch hoursUntil := ceilDiv(interview.Sub(now), time.Hour); hoursUntil {
		case 24:
			out = append(out, Candidate{
				Kind:    KindInterview,
				Bucket:  "24h",
				Message: fmt.Sprintf("Interview with %s is tomorrow! Time to prepare!", rec.Company),
			})
		case 2:
			out = append(out, Candidate{
				Kind:    KindInterview,
				Bucket:  "2h",
				Message: fmt.Sprintf("Interview with %s is in 2 hours! Good luck!", rec.Company),
			})
		}

		if floorDiv(now.Sub(interview), day) == 1 {
			out = append(out, Candidate{
				Kind:    KindFollowup,
				Bucket:  "1d",
				Message: fmt.Sprintf("Send a thank you email to %s!", rec.Company),
			})
		}
	}

	return out
}

func ceilDiv(d, unit time.Duration) int {
	return int(math.Ceil(float64(d) / float64(unit)))
}

func floorDiv(d, unit time.Duration) int {
	return int(math.Floor(float64(d) / float64(unit)))
}
