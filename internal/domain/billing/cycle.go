package billing

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MonthlyBillingDay is the target day-of-month for monthly renewals.
// Monthly billing always lands on the 30th, or the last day of months that
// are shorter. This is academy policy, not a generic "add one month".
const MonthlyBillingDay = 30

// CycleKey derives the idempotency key that identifies which billing period
// an invoice covers. The granularity follows the interval so that re-running
// the cycle job within the same period resolves to the same key.
func CycleKey(interval Interval, periodEnd time.Time) string {
	periodEnd = periodEnd.UTC()
	switch interval {
	case IntervalDaily:
		return periodEnd.Format("2006-01-02")
	case IntervalWeekly:
		return "W-" + periodEnd.Format("2006-01-02")
	case IntervalYearly:
		return periodEnd.Format("2006")
	default: // monthly
		return periodEnd.Format("2006-01")
	}
}

// NextPeriodEnd computes the end of the period that follows current.
// DAILY advances one day, WEEKLY seven, YEARLY one year. MONTHLY advances to
// the clamped MonthlyBillingDay of the month after current, preserving the
// time of day.
func NextPeriodEnd(interval Interval, current time.Time) (time.Time, error) {
	switch interval {
	case IntervalDaily:
		return current.AddDate(0, 0, 1), nil
	case IntervalWeekly:
		return current.AddDate(0, 0, 7), nil
	case IntervalYearly:
		return current.AddDate(1, 0, 0), nil
	case IntervalMonthly:
		year, month, _ := current.Date()
		// Day 0 of month+2 is the last day of month+1.
		lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, current.Location()).Day()
		day := MonthlyBillingDay
		if lastDay < day {
			day = lastDay
		}
		hour, min, sec := current.Clock()
		return time.Date(year, month+1, day, hour, min, sec, current.Nanosecond(), current.Location()), nil
	}
	return time.Time{}, fmt.Errorf("interval %q does not renew", interval)
}

// FormatInvoiceNumber renders the sequential per-day invoice number.
func FormatInvoiceNumber(day time.Time, seq int) string {
	return fmt.Sprintf("INV-%s-%03d", day.UTC().Format("20060102"), seq)
}

// InvoiceNumberDayPrefix is the LIKE prefix matching all invoice numbers of
// a calendar day, used to count today's invoices inside the creating
// transaction.
func InvoiceNumberDayPrefix(day time.Time) string {
	return fmt.Sprintf("INV-%s-%%", day.UTC().Format("20060102"))
}

var (
	planCodeStrip  = regexp.MustCompile(`[^A-Z0-9\s]+`)
	planCodeSpaces = regexp.MustCompile(`\s+`)
)

// PlanCode derives the uppercase plan code from a plan name: punctuation is
// dropped, word breaks become hyphens. "U-13 Elite squad" becomes
// "U13-ELITE-SQUAD".
func PlanCode(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	code := planCodeStrip.ReplaceAllString(upper, "")
	code = planCodeSpaces.ReplaceAllString(code, "-")
	return strings.Trim(code, "-")
}

// RunResult is what a cycle run reports back to its trigger.
type RunResult struct {
	RunAt           time.Time `json:"run_at"`
	TotalCandidates int       `json:"total_candidates"`
	Created         int       `json:"created"`
	SkippedExisting int       `json:"skipped_existing"`
	Failed          int       `json:"failed"`
}

// EndOfDay returns the last second of now's calendar day in UTC; the cycle
// runner bills every subscription whose period ends on or before it.
func EndOfDay(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
