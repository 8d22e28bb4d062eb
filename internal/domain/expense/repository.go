package expense

import "context"

type Repository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, year int, month int) ([]Expense, error)
	Delete(ctx context.Context, id string) error
	MonthlyTotals(ctx context.Context, year int, month int) ([]MonthlyTotal, error)
}

type Service interface {
	Create(ctx context.Context, recordedByUserID string, req CreateExpenseRequest) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, year int, month int) ([]Expense, error)
	Delete(ctx context.Context, id string) error
	MonthlyTotals(ctx context.Context, year int, month int) ([]MonthlyTotal, error)
}
