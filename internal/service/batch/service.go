package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/batch"
	"github.com/goalline/academy-backend-go/internal/domain/staff"
	"github.com/goalline/academy-backend-go/internal/domain/user"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/goalline/academy-backend-go/internal/pkg/validator"
	"github.com/goalline/academy-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type BatchServiceImpl struct {
	db *database.DB
	batch.BatchRepository
	batch.ScheduleRuleRepository
	batch.TrainingSessionRepository
	staffRepository staff.Repository
}

func NewBatchService(
	db *database.DB,
	batchRepository batch.BatchRepository,
	scheduleRuleRepository batch.ScheduleRuleRepository,
	trainingSessionRepository batch.TrainingSessionRepository,
	staffRepository staff.Repository,
) batch.Service {
	return &BatchServiceImpl{
		db:                        db,
		BatchRepository:           batchRepository,
		ScheduleRuleRepository:    scheduleRuleRepository,
		TrainingSessionRepository: trainingSessionRepository,
		staffRepository:           staffRepository,
	}
}

// CreateBatch implements batch.Service. Batch, rules and every expanded
// session are written in one transaction so a failed expansion leaves
// nothing behind.
func (s *BatchServiceImpl) CreateBatch(ctx context.Context, req batch.CreateBatchRequest) (batch.CreateBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return batch.CreateBatchResponse{}, err
	}

	coach, err := s.staffRepository.GetByID(ctx, req.CoachID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return batch.CreateBatchResponse{}, staff.ErrStaffNotFound
		}
		return batch.CreateBatchResponse{}, fmt.Errorf("failed to get coach: %w", err)
	}
	if coach.Role != user.RoleCoach {
		return batch.CreateBatchResponse{}, staff.ErrNotACoach
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	var resp batch.CreateBatchResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.BatchRepository.Create(txCtx, batch.Batch{
			Name:        req.Name,
			Description: req.Description,
			StartDate:   startDate,
			EndDate:     endDate,
			LocationID:  req.LocationID,
			CoachID:     req.CoachID,
		})
		if err != nil {
			return fmt.Errorf("failed to create batch: %w", err)
		}

		rules := make([]batch.ScheduleRule, 0, len(req.Sessions))
		for _, in := range req.Rules() {
			rules = append(rules, batch.ScheduleRule{
				BatchID:   created.ID,
				Days:      in.Days,
				StartTime: in.StartTime,
				EndTime:   in.EndTime,
			})
		}
		if err := s.ScheduleRuleRepository.CreateBulk(txCtx, rules); err != nil {
			return fmt.Errorf("failed to create schedule rules: %w", err)
		}

		sessions, err := batch.ExpandSchedule(created.ID, created.Name, created.LocationID, created.CoachID, startDate, endDate, req.Rules())
		if err != nil {
			return err
		}

		createdCount, err := s.TrainingSessionRepository.CreateBulk(txCtx, sessions)
		if err != nil {
			return fmt.Errorf("failed to create training sessions: %w", err)
		}

		created.Rules = rules
		resp = batch.CreateBatchResponse{
			Batch:           created,
			SessionsCreated: createdCount,
		}
		return nil
	})
	if err != nil {
		return batch.CreateBatchResponse{}, err
	}

	return resp, nil
}

// GetBatch implements batch.Service.
func (s *BatchServiceImpl) GetBatch(ctx context.Context, id string) (batch.Batch, error) {
	found, err := s.BatchRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return batch.Batch{}, batch.ErrBatchNotFound
		}
		return batch.Batch{}, fmt.Errorf("failed to get batch: %w", err)
	}

	rules, err := s.ScheduleRuleRepository.ListByBatch(ctx, id)
	if err != nil {
		return batch.Batch{}, fmt.Errorf("failed to list schedule rules: %w", err)
	}
	found.Rules = rules

	return found, nil
}

// ListBatches implements batch.Service.
func (s *BatchServiceImpl) ListBatches(ctx context.Context, page, limit int) ([]batch.Batch, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	batches, total, err := s.BatchRepository.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list batches: %w", err)
	}
	return batches, total, nil
}

// DeleteBatch implements batch.Service.
func (s *BatchServiceImpl) DeleteBatch(ctx context.Context, id string) error {
	if _, err := s.BatchRepository.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return batch.ErrBatchNotFound
		}
		return fmt.Errorf("failed to get batch: %w", err)
	}

	if err := s.BatchRepository.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	return nil
}

// ListSessions implements batch.Service.
func (s *BatchServiceImpl) ListSessions(ctx context.Context, filter batch.SessionFilter) ([]batch.TrainingSession, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	sessions, total, err := s.TrainingSessionRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

// UpdateSessionStatus implements batch.Service. Completed and cancelled
// sessions are terminal.
func (s *BatchServiceImpl) UpdateSessionStatus(ctx context.Context, sessionID string, req batch.UpdateSessionStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	session, err := s.TrainingSessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return batch.ErrSessionNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if session.Status == batch.SessionCompleted || session.Status == batch.SessionCancelled {
		return batch.ErrInvalidStatusChange
	}

	if err := s.TrainingSessionRepository.UpdateStatus(ctx, sessionID, batch.SessionStatus(req.Status)); err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// CompletePastSessions implements batch.Service.
func (s *BatchServiceImpl) CompletePastSessions(ctx context.Context, now time.Time) (int64, error) {
	completed, err := s.TrainingSessionRepository.CompletePastScheduled(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past sessions: %w", err)
	}
	return completed, nil
}
