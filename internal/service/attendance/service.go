package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/attendance"
	"github.com/goalline/academy-backend-go/internal/domain/batch"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/goalline/academy-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	sessionRepository batch.TrainingSessionRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.Repository,
	sessionRepository batch.TrainingSessionRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:                db,
		Repository:        attendanceRepository,
		sessionRepository: sessionRepository,
	}
}

// Mark implements attendance.Service. The whole sheet is written in one
// transaction; re-marking an athlete overwrites the earlier record.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, sessionID, markedByUserID string, req attendance.MarkRequest) ([]attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, batch.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session.Status == batch.SessionCancelled {
		return nil, attendance.ErrSessionNotStarted
	}

	now := time.Now().UTC()

	var records []attendance.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, entry := range req.Entries {
			rec, err := s.Repository.Upsert(txCtx, attendance.Record{
				SessionID:  sessionID,
				AthleteID:  entry.AthleteID,
				Status:     attendance.Status(entry.Status),
				Note:       entry.Note,
				MarkedByID: markedByUserID,
				MarkedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("failed to mark attendance for athlete %s: %w", entry.AthleteID, err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ListBySession implements attendance.Service.
func (s *AttendanceServiceImpl) ListBySession(ctx context.Context, sessionID string) ([]attendance.Record, error) {
	records, err := s.Repository.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// ListByAthlete implements attendance.Service.
func (s *AttendanceServiceImpl) ListByAthlete(ctx context.Context, athleteID string) ([]attendance.Record, error) {
	records, err := s.Repository.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// SummaryForAthlete implements attendance.Service.
func (s *AttendanceServiceImpl) SummaryForAthlete(ctx context.Context, athleteID string) (attendance.Summary, error) {
	summary, err := s.Repository.SummaryForAthlete(ctx, athleteID)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}
	return summary, nil
}
