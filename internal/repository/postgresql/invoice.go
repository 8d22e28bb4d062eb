package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) billing.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `id, invoice_number, athlete_id, subscription_id, type, amount_due,
		amount_paid, discount, status, coupon_id, billing_cycle, period_start, period_end,
		due_date, next_billing_date, created_at, updated_at`

func scanInvoice(row pgx.Row, inv *billing.Invoice) error {
	return row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.AthleteID,
		&inv.SubscriptionID,
		&inv.Type,
		&inv.AmountDue,
		&inv.AmountPaid,
		&inv.Discount,
		&inv.Status,
		&inv.CouponID,
		&inv.BillingCycle,
		&inv.PeriodStart,
		&inv.PeriodEnd,
		&inv.DueDate,
		&inv.NextBillingDate,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
}

// Create implements billing.InvoiceRepository.
func (r *invoiceRepositoryImpl) Create(ctx context.Context, inv billing.Invoice) (billing.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO invoices (
			invoice_number, athlete_id, subscription_id, type, amount_due, amount_paid,
			discount, status, coupon_id, billing_cycle, period_start, period_end,
			due_date, next_billing_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING %s
	`, invoiceColumns)

	var created billing.Invoice
	err := scanInvoice(q.QueryRow(ctx, query,
		inv.InvoiceNumber,
		inv.AthleteID,
		inv.SubscriptionID,
		inv.Type,
		inv.AmountDue,
		inv.AmountPaid,
		inv.Discount,
		inv.Status,
		inv.CouponID,
		inv.BillingCycle,
		inv.PeriodStart,
		inv.PeriodEnd,
		inv.DueDate,
		inv.NextBillingDate,
	), &created)
	if err != nil {
		return billing.Invoice{}, err
	}

	return created, nil
}

// GetByID implements billing.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id string) (billing.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE id = $1`, invoiceColumns)

	var found billing.Invoice
	if err := scanInvoice(q.QueryRow(ctx, query, id), &found); err != nil {
		return billing.Invoice{}, err
	}

	return found, nil
}

// GetByNumber implements billing.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetByNumber(ctx context.Context, invoiceNumber string) (billing.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE invoice_number = $1`, invoiceColumns)

	var found billing.Invoice
	if err := scanInvoice(q.QueryRow(ctx, query, invoiceNumber), &found); err != nil {
		return billing.Invoice{}, err
	}

	return found, nil
}

// ExistsForCycle implements billing.InvoiceRepository. This is the duplicate
// guard for cycle runs; CANCELED invoices do not release the slot.
func (r *invoiceRepositoryImpl) ExistsForCycle(ctx context.Context, subscriptionID, cycleKey string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM invoices
			WHERE subscription_id = $1 AND billing_cycle = $2
		)
	`, subscriptionID, cycleKey).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CountWithNumberPrefix implements billing.InvoiceRepository. Runs inside the
// creating transaction; the unique index on invoice_number backstops races.
func (r *invoiceRepositoryImpl) CountWithNumberPrefix(ctx context.Context, prefix string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE invoice_number LIKE $1`, prefix).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// List implements billing.InvoiceRepository.
func (r *invoiceRepositoryImpl) List(ctx context.Context, filter billing.InvoiceFilter) ([]billing.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.AthleteID != nil && *filter.AthleteID != "" {
		conditions = append(conditions, fmt.Sprintf("athlete_id = $%d", argIdx))
		args = append(args, *filter.AthleteID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM invoices WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []billing.Invoice
	for rows.Next() {
		var inv billing.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// ApplyDiscount implements billing.InvoiceRepository.
func (r *invoiceRepositoryImpl) ApplyDiscount(ctx context.Context, id string, discount decimal.Decimal, couponID string, status billing.InvoiceStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET discount = $1, coupon_id = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := q.Exec(ctx, query, discount, couponID, status, id)
	return err
}

// RecordPayment implements billing.InvoiceRepository.
func (r *invoiceRepositoryImpl) RecordPayment(ctx context.Context, id string, amountPaid decimal.Decimal, status billing.InvoiceStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET amount_paid = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := q.Exec(ctx, query, amountPaid, status, id)
	return err
}

// UpdateStatus implements billing.InvoiceRepository.
func (r *invoiceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status billing.InvoiceStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE invoices SET status = $1, updated_at = NOW() WHERE id = $2`

	_, err := q.Exec(ctx, query, status, id)
	return err
}
