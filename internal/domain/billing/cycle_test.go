package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleKey(t *testing.T) {
	periodEnd := time.Date(2024, time.January, 31, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		interval Interval
		want     string
	}{
		{IntervalDaily, "2024-01-31"},
		{IntervalWeekly, "W-2024-01-31"},
		{IntervalMonthly, "2024-01"},
		{IntervalYearly, "2024"},
	}
	for _, c := range cases {
		if got := CycleKey(c.interval, periodEnd); got != c.want {
			t.Errorf("CycleKey(%s) = %q, want %q", c.interval, got, c.want)
		}
	}
}

func TestCycleKey_SamePeriodSameKey(t *testing.T) {
	// Two runs within the same month must resolve to the same monthly key.
	a := CycleKey(IntervalMonthly, date(2024, time.March, 1))
	b := CycleKey(IntervalMonthly, date(2024, time.March, 30))
	assert.Equal(t, a, b)
}

func TestCycleKey_ConsecutivePeriodsDistinct(t *testing.T) {
	// The enrollment invoice carries the key of the first period's end, so
	// the first renewal resolves to that same key; every later period must
	// get a fresh one or it would never be billed.
	start := date(2024, time.January, 15)
	for _, interval := range []Interval{IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalYearly} {
		end, err := NextPeriodEnd(interval, start)
		require.NoError(t, err)

		next, err := NextPeriodEnd(interval, end)
		require.NoError(t, err)
		assert.NotEqual(t, CycleKey(interval, end), CycleKey(interval, next), "interval %s", interval)
	}
}

func TestNextPeriodEnd_SimpleIntervals(t *testing.T) {
	current := date(2024, time.January, 15)

	next, err := NextPeriodEnd(IntervalDaily, current)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 16), next)

	next, err = NextPeriodEnd(IntervalWeekly, current)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 22), next)

	next, err = NextPeriodEnd(IntervalYearly, current)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 15), next)
}

func TestNextPeriodEnd_MonthlyClampsToDay30(t *testing.T) {
	cases := []struct {
		name    string
		current time.Time
		want    time.Time
	}{
		{"january to short february", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"non-leap february clamp", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"february to march 30th", date(2024, time.February, 29), date(2024, time.March, 30)},
		{"mid-month lands on the 30th", date(2024, time.March, 5), date(2024, time.April, 30)},
		{"december rolls the year", date(2024, time.December, 30), date(2025, time.January, 30)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, err := NextPeriodEnd(IntervalMonthly, c.current)
			require.NoError(t, err)
			assert.Equal(t, c.want, next)
		})
	}
}

func TestNextPeriodEnd_MonthlyPreservesClock(t *testing.T) {
	current := time.Date(2024, time.January, 31, 8, 15, 30, 0, time.UTC)
	next, err := NextPeriodEnd(IntervalMonthly, current)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 8, 15, 30, 0, time.UTC), next)
}

func TestNextPeriodEnd_OnceDoesNotRenew(t *testing.T) {
	_, err := NextPeriodEnd(IntervalOnce, date(2024, time.January, 1))
	assert.Error(t, err)
}

func TestFormatInvoiceNumber(t *testing.T) {
	day := date(2024, time.January, 31)
	assert.Equal(t, "INV-20240131-001", FormatInvoiceNumber(day, 1))
	assert.Equal(t, "INV-20240131-042", FormatInvoiceNumber(day, 42))
	assert.Equal(t, "INV-20240131-100", FormatInvoiceNumber(day, 100))
}

func TestInvoiceNumberDayPrefix(t *testing.T) {
	assert.Equal(t, "INV-20240131-%", InvoiceNumberDayPrefix(date(2024, time.January, 31)))
}

func TestPlanCode(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"U-13 Elite squad", "U13-ELITE-SQUAD"},
		{"U-15 (Girls)", "U15-GIRLS"},
		{"  monthly basic ", "MONTHLY-BASIC"},
		{"Goalkeepers", "GOALKEEPERS"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := PlanCode(c.name); got != c.want {
			t.Errorf("PlanCode(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestSubscriptionBillable(t *testing.T) {
	now := date(2024, time.June, 1)
	plan := &Plan{Interval: IntervalMonthly, IsActive: true}
	base := Subscription{
		Status:    SubscriptionActive,
		AutoRenew: true,
		Plan:      plan,
	}

	assert.True(t, base.Billable(now))

	cancelled := base
	cancelled.CancelAtPeriodEnd = true
	assert.False(t, cancelled.Billable(now))

	paused := base
	paused.Status = SubscriptionPaused
	assert.False(t, paused.Billable(now))

	ended := base
	endDate := date(2024, time.May, 1)
	ended.EndDate = &endDate
	assert.False(t, ended.Billable(now))

	oncePlan := *plan
	oncePlan.Interval = IntervalOnce
	once := base
	once.Plan = &oncePlan
	assert.False(t, once.Billable(now))

	archivedPlan := *plan
	archivedPlan.IsArchived = true
	archived := base
	archived.Plan = &archivedPlan
	assert.False(t, archived.Billable(now))
}

func TestEndOfDay(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 12, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC), EndOfDay(now))
}
