package expense

import (
	"context"
	"fmt"

	"github.com/goalline/academy-backend-go/internal/domain/expense"
	"github.com/goalline/academy-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type ExpenseServiceImpl struct {
	expense.Repository
}

func NewExpenseService(expenseRepository expense.Repository) expense.Service {
	return &ExpenseServiceImpl{Repository: expenseRepository}
}

// Create implements expense.Service.
func (s *ExpenseServiceImpl) Create(ctx context.Context, recordedByUserID string, req expense.CreateExpenseRequest) (expense.Expense, error) {
	if err := req.Validate(); err != nil {
		return expense.Expense{}, err
	}

	incurredOn, _ := validator.IsValidDate(req.IncurredOn)

	created, err := s.Repository.Create(ctx, expense.Expense{
		Category:    expense.Category(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
		IncurredOn:  incurredOn,
		RecordedBy:  recordedByUserID,
	})
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

// GetByID implements expense.Service.
func (s *ExpenseServiceImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}
	return found, nil
}

// List implements expense.Service.
func (s *ExpenseServiceImpl) List(ctx context.Context, year int, month int) ([]expense.Expense, error) {
	expenses, err := s.Repository.List(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// Delete implements expense.Service.
func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// MonthlyTotals implements expense.Service.
func (s *ExpenseServiceImpl) MonthlyTotals(ctx context.Context, year int, month int) ([]expense.MonthlyTotal, error) {
	totals, err := s.Repository.MonthlyTotals(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	return totals, nil
}
