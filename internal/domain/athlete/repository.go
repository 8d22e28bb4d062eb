package athlete

import "context"

type Repository interface {
	Create(ctx context.Context, a Athlete) (Athlete, error)
	GetByID(ctx context.Context, id string) (Athlete, error)
	GetByCode(ctx context.Context, code string) (Athlete, error)
	List(ctx context.Context, filter Filter) ([]Athlete, int64, error)
	Update(ctx context.Context, a Athlete) error
	SoftDelete(ctx context.Context, id string) error
	// Count includes soft-deleted rows so generated codes are never reused.
	Count(ctx context.Context) (int, error)
	GuardianEmailExists(ctx context.Context, email string) (bool, error)
}

type Service interface {
	Create(ctx context.Context, req CreateAthleteRequest) (Athlete, error)
	GetByID(ctx context.Context, id string) (Athlete, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Update(ctx context.Context, id string, req UpdateAthleteRequest) (Athlete, error)
	Delete(ctx context.Context, id string) error
}
