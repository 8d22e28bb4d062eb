package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/dashboard"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

// Summary implements dashboard.Repository. One round trip, all aggregates as
// scalar subqueries.
func (r *dashboardRepositoryImpl) Summary(ctx context.Context, now time.Time) (dashboard.Summary, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT
			(SELECT COUNT(*) FROM athletes WHERE status = 'ACTIVE' AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM subscriptions WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM training_sessions WHERE starts_at >= $1 AND starts_at < $2),
			(SELECT COUNT(*) FROM invoices WHERE status IN ('PENDING', 'PARTIAL')),
			(SELECT COALESCE(SUM(amount_due - discount - amount_paid), 0)
				FROM invoices WHERE status IN ('PENDING', 'PARTIAL')),
			(SELECT COALESCE(SUM(amount_paid), 0)
				FROM invoices WHERE updated_at >= $3 AND updated_at < $4 AND amount_paid > 0),
			(SELECT COALESCE(SUM(amount), 0)
				FROM expenses WHERE incurred_on >= $3 AND incurred_on < $4)
	`

	var summary dashboard.Summary
	err := q.QueryRow(ctx, query, dayStart, dayEnd, monthStart, monthEnd).Scan(
		&summary.ActiveAthletes,
		&summary.ActiveSubscriptions,
		&summary.SessionsToday,
		&summary.PendingInvoices,
		&summary.OutstandingBalance,
		&summary.RevenueThisMonth,
		&summary.ExpensesThisMonth,
	)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to load dashboard summary: %w", err)
	}

	return summary, nil
}
