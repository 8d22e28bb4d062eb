package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	Summary(ctx context.Context, now time.Time) (Summary, error)
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}
