package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type subscriptionRepositoryImpl struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) billing.SubscriptionRepository {
	return &subscriptionRepositoryImpl{db: db}
}

const subscriptionColumns = `s.id, s.athlete_id, s.plan_id, s.status, s.auto_renew,
		s.cancel_at_period_end, s.current_period_start, s.current_period_end, s.end_date,
		s.created_at, s.updated_at`

func scanSubscriptionWithPlan(row pgx.Row, sub *billing.Subscription) error {
	var plan billing.Plan
	err := row.Scan(
		&sub.ID,
		&sub.AthleteID,
		&sub.PlanID,
		&sub.Status,
		&sub.AutoRenew,
		&sub.CancelAtPeriodEnd,
		&sub.CurrentPeriodStart,
		&sub.CurrentPeriodEnd,
		&sub.EndDate,
		&sub.CreatedAt,
		&sub.UpdatedAt,
		&plan.ID,
		&plan.Name,
		&plan.Code,
		&plan.Amount,
		&plan.Interval,
		&plan.IsActive,
		&plan.IsArchived,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return err
	}
	sub.Plan = &plan
	return nil
}

// Create implements billing.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) Create(ctx context.Context, s billing.Subscription) (billing.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subscriptions (
			athlete_id, plan_id, status, auto_renew, cancel_at_period_end,
			current_period_start, current_period_end, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, athlete_id, plan_id, status, auto_renew, cancel_at_period_end,
				  current_period_start, current_period_end, end_date, created_at, updated_at
	`

	var created billing.Subscription
	err := q.QueryRow(ctx, query,
		s.AthleteID,
		s.PlanID,
		s.Status,
		s.AutoRenew,
		s.CancelAtPeriodEnd,
		s.CurrentPeriodStart,
		s.CurrentPeriodEnd,
		s.EndDate,
	).Scan(
		&created.ID,
		&created.AthleteID,
		&created.PlanID,
		&created.Status,
		&created.AutoRenew,
		&created.CancelAtPeriodEnd,
		&created.CurrentPeriodStart,
		&created.CurrentPeriodEnd,
		&created.EndDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return billing.Subscription{}, err
	}

	return created, nil
}

// GetByID implements billing.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) GetByID(ctx context.Context, id string) (billing.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.id = $1
	`, subscriptionColumns, planJoinColumns)

	var found billing.Subscription
	if err := scanSubscriptionWithPlan(q.QueryRow(ctx, query, id), &found); err != nil {
		return billing.Subscription{}, err
	}

	return found, nil
}

const planJoinColumns = `p.id, p.name, p.code, p.amount, p.interval, p.is_active, p.is_archived,
		p.created_at, p.updated_at`

// ListByAthlete implements billing.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) ListByAthlete(ctx context.Context, athleteID string) ([]billing.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.athlete_id = $1
		ORDER BY s.created_at DESC
	`, subscriptionColumns, planJoinColumns)

	rows, err := q.Query(ctx, query, athleteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	return collectSubscriptions(rows)
}

// ListBillable implements billing.SubscriptionRepository. Only ACTIVE
// auto-renewing subscriptions on live recurring plans whose period has
// elapsed are returned; ONCE plans never bill again.
func (r *subscriptionRepositoryImpl) ListBillable(ctx context.Context, cutoff time.Time) ([]billing.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.status = 'ACTIVE'
		  AND s.auto_renew = TRUE
		  AND s.cancel_at_period_end = FALSE
		  AND s.current_period_end <= $1
		  AND (s.end_date IS NULL OR s.end_date > $1)
		  AND p.is_active = TRUE
		  AND p.is_archived = FALSE
		  AND p.interval <> 'ONCE'
		ORDER BY s.current_period_end
	`, subscriptionColumns, planJoinColumns)

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list billable subscriptions: %w", err)
	}
	defer rows.Close()

	return collectSubscriptions(rows)
}

func collectSubscriptions(rows pgx.Rows) ([]billing.Subscription, error) {
	var subs []billing.Subscription
	for rows.Next() {
		var s billing.Subscription
		if err := scanSubscriptionWithPlan(rows, &s); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

// HasActiveForPlan implements billing.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) HasActiveForPlan(ctx context.Context, athleteID, planID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM subscriptions
			WHERE athlete_id = $1 AND plan_id = $2 AND status = 'ACTIVE'
		)
	`, athleteID, planID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// AdvancePeriod implements billing.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) AdvancePeriod(ctx context.Context, id string, newStart, newEnd time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subscriptions
		SET current_period_start = $1, current_period_end = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := q.Exec(ctx, query, newStart, newEnd, id)
	return err
}

// UpdateStatus implements billing.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) UpdateStatus(ctx context.Context, id string, status billing.SubscriptionStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE subscriptions SET status = $1, updated_at = NOW() WHERE id = $2`

	_, err := q.Exec(ctx, query, status, id)
	return err
}

// SetCancelAtPeriodEnd implements billing.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) SetCancelAtPeriodEnd(ctx context.Context, id string, cancel bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE subscriptions SET cancel_at_period_end = $1, updated_at = NOW() WHERE id = $2`

	_, err := q.Exec(ctx, query, cancel, id)
	return err
}
