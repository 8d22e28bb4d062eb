package postgresql

import (
	"context"
	"fmt"

	"github.com/goalline/academy-backend-go/internal/domain/expense"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.Repository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `id, category, description, amount, incurred_on, recorded_by, created_at, updated_at`

func scanExpense(row pgx.Row, e *expense.Expense) error {
	return row.Scan(
		&e.ID,
		&e.Category,
		&e.Description,
		&e.Amount,
		&e.IncurredOn,
		&e.RecordedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// Create implements expense.Repository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO expenses (category, description, amount, incurred_on, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, expenseColumns)

	var created expense.Expense
	err := scanExpense(q.QueryRow(ctx, query,
		e.Category,
		e.Description,
		e.Amount,
		e.IncurredOn,
		e.RecordedBy,
	), &created)
	if err != nil {
		return expense.Expense{}, err
	}

	return created, nil
}

// GetByID implements expense.Repository.
func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE id = $1`, expenseColumns)

	var found expense.Expense
	if err := scanExpense(q.QueryRow(ctx, query, id), &found); err != nil {
		return expense.Expense{}, err
	}

	return found, nil
}

// List implements expense.Repository.
func (r *expenseRepositoryImpl) List(ctx context.Context, year int, month int) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM expenses
		WHERE EXTRACT(YEAR FROM incurred_on) = $1
		  AND EXTRACT(MONTH FROM incurred_on) = $2
		ORDER BY incurred_on DESC
	`, expenseColumns)

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := scanExpense(rows, &e); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

// Delete implements expense.Repository.
func (r *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	return err
}

// MonthlyTotals implements expense.Repository.
func (r *expenseRepositoryImpl) MonthlyTotals(ctx context.Context, year int, month int) ([]expense.MonthlyTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE EXTRACT(YEAR FROM incurred_on) = $1
		  AND EXTRACT(MONTH FROM incurred_on) = $2
		GROUP BY category
		ORDER BY category
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	defer rows.Close()

	var totals []expense.MonthlyTotal
	for rows.Next() {
		var t expense.MonthlyTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
