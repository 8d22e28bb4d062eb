package batch

import (
	"context"
	"time"
)

type BatchRepository interface {
	Create(ctx context.Context, b Batch) (Batch, error)
	GetByID(ctx context.Context, id string) (Batch, error)
	List(ctx context.Context, page, limit int) ([]Batch, int64, error)
	SoftDelete(ctx context.Context, id string) error
}

type ScheduleRuleRepository interface {
	CreateBulk(ctx context.Context, rules []ScheduleRule) error
	ListByBatch(ctx context.Context, batchID string) ([]ScheduleRule, error)
}

type TrainingSessionRepository interface {
	CreateBulk(ctx context.Context, sessions []TrainingSession) (int, error)
	GetByID(ctx context.Context, id string) (TrainingSession, error)
	List(ctx context.Context, filter SessionFilter) ([]TrainingSession, int64, error)
	UpdateStatus(ctx context.Context, id string, status SessionStatus) error
	// CompletePastScheduled rolls SCHEDULED sessions whose end time has
	// passed to COMPLETED and returns how many rows changed.
	CompletePastScheduled(ctx context.Context, now time.Time) (int64, error)
}
