package batch

import (
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/pkg/validator"
)

// ExpandInput is one schedule rule handed to the expander. Times are "HH:MM"
// and must already be validated (EndTime strictly after StartTime).
type ExpandInput struct {
	Days      []Weekday
	StartTime string
	EndTime   string
}

// ExpandSchedule converts an inclusive [start, end] date range and a set of
// weekly rules into concrete training sessions. Dates are compared at
// midnight UTC; each emitted session carries the rule's start time of day in
// UTC and the rule's duration in minutes.
//
// If two rules resolve to the exact same timestamp only one session is
// emitted. The function is pure: persistence is the caller's concern.
func ExpandSchedule(batchID, batchName, locationID, coachID string, start, end time.Time, rules []ExpandInput) ([]TrainingSession, error) {
	start = midnightUTC(start)
	end = midnightUTC(end)
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	seen := make(map[string]struct{})
	var sessions []TrainingSession

	for _, rule := range rules {
		startMin, ok := validator.MinutesOfDay(rule.StartTime)
		if !ok {
			return nil, fmt.Errorf("invalid start time %q", rule.StartTime)
		}
		endMin, ok := validator.MinutesOfDay(rule.EndTime)
		if !ok {
			return nil, fmt.Errorf("invalid end time %q", rule.EndTime)
		}
		duration := endMin - startMin
		if duration <= 0 {
			return nil, fmt.Errorf("end time %q not after start time %q", rule.EndTime, rule.StartTime)
		}

		for _, day := range rule.Days {
			weekday, ok := day.TimeWeekday()
			if !ok {
				return nil, fmt.Errorf("unknown weekday %q", day)
			}

			// First occurrence of the weekday on or after start, then
			// 7-day steps until past end.
			for d := firstOnOrAfter(start, weekday); !d.After(end); d = d.AddDate(0, 0, 7) {
				startsAt := d.Add(time.Duration(startMin) * time.Minute)
				key := startsAt.Format(time.RFC3339)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				desc := fmt.Sprintf("Weekly %s training for %s (%s - %s)", day, batchName, rule.StartTime, rule.EndTime)
				sessions = append(sessions, TrainingSession{
					BatchID:         batchID,
					Name:            fmt.Sprintf("%s - %s", batchName, d.Format("2006-01-02")),
					Description:     &desc,
					StartsAt:        startsAt,
					DurationMinutes: duration,
					LocationID:      locationID,
					CoachID:         coachID,
					Status:          SessionScheduled,
				})
			}
		}
	}

	return sessions, nil
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOnOrAfter(start time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, offset)
}
