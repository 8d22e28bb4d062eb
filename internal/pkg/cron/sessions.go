package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/batch"
)

// SessionJobs contains training-session cron jobs
type SessionJobs struct {
	batchService batch.Service
}

// NewSessionJobs creates training-session cron jobs
func NewSessionJobs(batchService batch.Service) *SessionJobs {
	return &SessionJobs{
		batchService: batchService,
	}
}

// RegisterJobs registers all training-session cron jobs
func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("complete_past_sessions", 1*time.Hour, j.CompletePastSessions)
}

// CompletePastSessions marks SCHEDULED sessions whose end time has passed as COMPLETED.
func (j *SessionJobs) CompletePastSessions(ctx context.Context) error {
	completed, err := j.batchService.CompletePastSessions(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if completed > 0 {
		slog.Info("Cron: Completed past training sessions", "count", completed)
	}
	return nil
}
