package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expand(t *testing.T, start, end time.Time, rules []ExpandInput) []TrainingSession {
	t.Helper()
	sessions, err := ExpandSchedule("batch-1", "U13", "loc-1", "coach-1", start, end, rules)
	require.NoError(t, err)
	return sessions
}

func TestExpandSchedule_TwoMondays(t *testing.T) {
	// Mon 2024-01-01 through Sun 2024-01-14, Mondays 16:00-17:30.
	sessions := expand(t, day(2024, time.January, 1), day(2024, time.January, 14), []ExpandInput{
		{Days: []Weekday{Monday}, StartTime: "16:00", EndTime: "17:30"},
	})

	require.Len(t, sessions, 2)
	assert.Equal(t, time.Date(2024, time.January, 1, 16, 0, 0, 0, time.UTC), sessions[0].StartsAt)
	assert.Equal(t, time.Date(2024, time.January, 8, 16, 0, 0, 0, time.UTC), sessions[1].StartsAt)
	for _, s := range sessions {
		assert.Equal(t, 90, s.DurationMinutes)
		assert.Equal(t, SessionScheduled, s.Status)
		assert.Equal(t, "batch-1", s.BatchID)
	}
}

func TestExpandSchedule_Deterministic(t *testing.T) {
	rules := []ExpandInput{
		{Days: []Weekday{Monday, Wednesday}, StartTime: "16:00", EndTime: "18:00"},
		{Days: []Weekday{Saturday}, StartTime: "09:00", EndTime: "11:30"},
	}
	first := expand(t, day(2024, time.March, 1), day(2024, time.April, 30), rules)
	second := expand(t, day(2024, time.March, 1), day(2024, time.April, 30), rules)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].StartsAt, second[i].StartsAt)
		assert.Equal(t, first[i].DurationMinutes, second[i].DurationMinutes)
	}
}

func TestExpandSchedule_AllWithinRange(t *testing.T) {
	start, end := day(2024, time.February, 3), day(2024, time.March, 20)
	sessions := expand(t, start, end, []ExpandInput{
		{Days: []Weekday{Tuesday, Friday, Sunday}, StartTime: "17:00", EndTime: "18:30"},
	})

	require.NotEmpty(t, sessions)
	for _, s := range sessions {
		d := day(s.StartsAt.Year(), s.StartsAt.Month(), s.StartsAt.Day())
		assert.False(t, d.Before(start), "session %s before range", s.StartsAt)
		assert.False(t, d.After(end), "session %s after range", s.StartsAt)
		wd := s.StartsAt.Weekday()
		assert.Contains(t, []time.Weekday{time.Tuesday, time.Friday, time.Sunday}, wd)
	}
}

func TestExpandSchedule_DedupIdenticalRules(t *testing.T) {
	// Two rules both selecting Monday 16:00 over exactly 3 Mondays: 3
	// sessions, not 6.
	sessions := expand(t, day(2024, time.January, 1), day(2024, time.January, 15), []ExpandInput{
		{Days: []Weekday{Monday}, StartTime: "16:00", EndTime: "17:30"},
		{Days: []Weekday{Monday}, StartTime: "16:00", EndTime: "17:00"},
	})
	assert.Len(t, sessions, 3)
}

func TestExpandSchedule_EmptyRules(t *testing.T) {
	sessions := expand(t, day(2024, time.January, 1), day(2024, time.January, 31), nil)
	assert.Empty(t, sessions)
}

func TestExpandSchedule_SingleDayRange(t *testing.T) {
	// start == end: at most one session per matching weekday.
	d := day(2024, time.January, 1) // a Monday
	sessions := expand(t, d, d, []ExpandInput{
		{Days: []Weekday{Monday, Tuesday}, StartTime: "10:00", EndTime: "11:00"},
	})
	require.Len(t, sessions, 1)
	assert.Equal(t, time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC), sessions[0].StartsAt)
}

func TestExpandSchedule_RejectsDegenerateTimes(t *testing.T) {
	_, err := ExpandSchedule("b", "n", "l", "c", day(2024, time.January, 1), day(2024, time.January, 14), []ExpandInput{
		{Days: []Weekday{Monday}, StartTime: "17:00", EndTime: "17:00"},
	})
	assert.Error(t, err)

	_, err = ExpandSchedule("b", "n", "l", "c", day(2024, time.January, 1), day(2024, time.January, 14), []ExpandInput{
		{Days: []Weekday{Monday}, StartTime: "17:00", EndTime: "16:00"},
	})
	assert.Error(t, err)
}

func TestExpandSchedule_RejectsReversedRange(t *testing.T) {
	_, err := ExpandSchedule("b", "n", "l", "c", day(2024, time.January, 14), day(2024, time.January, 1), []ExpandInput{
		{Days: []Weekday{Monday}, StartTime: "16:00", EndTime: "17:00"},
	})
	assert.Error(t, err)
}

func TestExpandSchedule_StartMidweek(t *testing.T) {
	// Range starts Thursday 2024-01-04; first Monday emitted is the 8th.
	sessions := expand(t, day(2024, time.January, 4), day(2024, time.January, 14), []ExpandInput{
		{Days: []Weekday{Monday}, StartTime: "16:00", EndTime: "17:00"},
	})
	require.Len(t, sessions, 1)
	assert.Equal(t, time.Date(2024, time.January, 8, 16, 0, 0, 0, time.UTC), sessions[0].StartsAt)
}
