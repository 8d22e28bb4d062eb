package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type couponRepositoryImpl struct {
	db *database.DB
}

func NewCouponRepository(db *database.DB) billing.CouponRepository {
	return &couponRepositoryImpl{db: db}
}

const couponColumns = `id, code, discount_type, value, usage_limit, times_used, is_active,
		is_voided, starts_at, expires_at, created_at, updated_at`

func scanCoupon(row pgx.Row, c *billing.Coupon) error {
	return row.Scan(
		&c.ID,
		&c.Code,
		&c.DiscountType,
		&c.Value,
		&c.UsageLimit,
		&c.TimesUsed,
		&c.IsActive,
		&c.IsVoided,
		&c.StartsAt,
		&c.ExpiresAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// Create implements billing.CouponRepository.
func (r *couponRepositoryImpl) Create(ctx context.Context, c billing.Coupon) (billing.Coupon, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO coupons (code, discount_type, value, usage_limit, is_active, starts_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, couponColumns)

	var created billing.Coupon
	err := scanCoupon(q.QueryRow(ctx, query,
		c.Code,
		c.DiscountType,
		c.Value,
		c.UsageLimit,
		c.IsActive,
		c.StartsAt,
		c.ExpiresAt,
	), &created)
	if err != nil {
		return billing.Coupon{}, err
	}

	return created, nil
}

// GetByCode implements billing.CouponRepository.
func (r *couponRepositoryImpl) GetByCode(ctx context.Context, code string) (billing.Coupon, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM coupons WHERE code = $1`, couponColumns)

	var found billing.Coupon
	if err := scanCoupon(q.QueryRow(ctx, query, code), &found); err != nil {
		return billing.Coupon{}, err
	}

	return found, nil
}

// List implements billing.CouponRepository.
func (r *couponRepositoryImpl) List(ctx context.Context) ([]billing.Coupon, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM coupons ORDER BY created_at DESC`, couponColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer rows.Close()

	var coupons []billing.Coupon
	for rows.Next() {
		var c billing.Coupon
		if err := scanCoupon(rows, &c); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coupons, nil
}

// CodeExists implements billing.CouponRepository.
func (r *couponRepositoryImpl) CodeExists(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM coupons WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Void implements billing.CouponRepository.
func (r *couponRepositoryImpl) Void(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE coupons SET is_voided = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1`

	_, err := q.Exec(ctx, query, id)
	return err
}

// TryIncrementUsage implements billing.CouponRepository. The WHERE clause
// re-checks every redemption condition so concurrent redemptions can never
// push times_used past usage_limit; zero rows affected means the caller lost
// the race or the coupon became unusable.
func (r *couponRepositoryImpl) TryIncrementUsage(ctx context.Context, id string, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE coupons
		SET times_used = times_used + 1, updated_at = NOW()
		WHERE id = $1
		  AND is_active = TRUE
		  AND is_voided = FALSE
		  AND (starts_at IS NULL OR starts_at <= $2)
		  AND (expires_at IS NULL OR expires_at >= $2)
		  AND (usage_limit IS NULL OR times_used < usage_limit)
	`

	tag, err := q.Exec(ctx, query, id, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
