package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByUserID(ctx context.Context, userID string) (Staff, error)
	List(ctx context.Context, coachesOnly bool) ([]Staff, error)
	Update(ctx context.Context, s Staff) error
	SoftDelete(ctx context.Context, id string) error
}

type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, coachesOnly bool) ([]Staff, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (Staff, error)
	Delete(ctx context.Context, id string) error
}
