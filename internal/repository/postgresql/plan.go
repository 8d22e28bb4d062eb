package postgresql

import (
	"context"
	"fmt"

	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type planRepositoryImpl struct {
	db *database.DB
}

func NewPlanRepository(db *database.DB) billing.PlanRepository {
	return &planRepositoryImpl{db: db}
}

const planColumns = `id, name, code, amount, interval, is_active, is_archived, created_at, updated_at`

func scanPlan(row pgx.Row, p *billing.Plan) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Code,
		&p.Amount,
		&p.Interval,
		&p.IsActive,
		&p.IsArchived,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// Create implements billing.PlanRepository.
func (r *planRepositoryImpl) Create(ctx context.Context, p billing.Plan) (billing.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO plans (name, code, amount, interval, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, planColumns)

	var created billing.Plan
	err := scanPlan(q.QueryRow(ctx, query,
		p.Name,
		p.Code,
		p.Amount,
		p.Interval,
		p.IsActive,
	), &created)
	if err != nil {
		return billing.Plan{}, err
	}

	return created, nil
}

// GetByID implements billing.PlanRepository.
func (r *planRepositoryImpl) GetByID(ctx context.Context, id string) (billing.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM plans WHERE id = $1`, planColumns)

	var found billing.Plan
	if err := scanPlan(q.QueryRow(ctx, query, id), &found); err != nil {
		return billing.Plan{}, err
	}

	return found, nil
}

// GetByCode implements billing.PlanRepository. Archived plans are excluded,
// their codes are free for reuse.
func (r *planRepositoryImpl) GetByCode(ctx context.Context, code string) (billing.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM plans WHERE code = $1 AND is_archived = FALSE`, planColumns)

	var found billing.Plan
	if err := scanPlan(q.QueryRow(ctx, query, code), &found); err != nil {
		return billing.Plan{}, err
	}

	return found, nil
}

// List implements billing.PlanRepository.
func (r *planRepositoryImpl) List(ctx context.Context, includeArchived bool) ([]billing.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM plans`, planColumns)
	if !includeArchived {
		query += ` WHERE is_archived = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []billing.Plan
	for rows.Next() {
		var p billing.Plan
		if err := scanPlan(rows, &p); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// CodeExists implements billing.PlanRepository.
func (r *planRepositoryImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM plans WHERE code = $1 AND is_archived = FALSE)`, code).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements billing.PlanRepository.
func (r *planRepositoryImpl) Update(ctx context.Context, p billing.Plan) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE plans
		SET name = $1, code = $2, amount = $3, interval = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := q.Exec(ctx, query,
		p.Name,
		p.Code,
		p.Amount,
		p.Interval,
		p.IsActive,
		p.ID,
	)
	return err
}

// Archive implements billing.PlanRepository.
func (r *planRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE plans SET is_archived = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1`

	_, err := q.Exec(ctx, query, id)
	return err
}
