package batch

import (
	"context"
	"time"
)

type Service interface {
	CreateBatch(ctx context.Context, req CreateBatchRequest) (CreateBatchResponse, error)
	GetBatch(ctx context.Context, id string) (Batch, error)
	ListBatches(ctx context.Context, page, limit int) ([]Batch, int64, error)
	DeleteBatch(ctx context.Context, id string) error

	ListSessions(ctx context.Context, filter SessionFilter) ([]TrainingSession, int64, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, req UpdateSessionStatusRequest) error
	// CompletePastSessions is the cron entry that rolls elapsed SCHEDULED
	// sessions to COMPLETED.
	CompletePastSessions(ctx context.Context, now time.Time) (int64, error)
}
