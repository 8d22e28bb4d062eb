package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/batch"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type trainingSessionRepositoryImpl struct {
	db *database.DB
}

func NewTrainingSessionRepository(db *database.DB) batch.TrainingSessionRepository {
	return &trainingSessionRepositoryImpl{db: db}
}

const sessionColumns = `id, batch_id, name, description, starts_at, duration_minutes,
		location_id, coach_id, status, created_at, updated_at`

func scanSession(row pgx.Row, s *batch.TrainingSession) error {
	return row.Scan(
		&s.ID,
		&s.BatchID,
		&s.Name,
		&s.Description,
		&s.StartsAt,
		&s.DurationMinutes,
		&s.LocationID,
		&s.CoachID,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

// CreateBulk implements batch.TrainingSessionRepository. Conflicting
// (batch_id, starts_at) pairs are skipped so re-expansion stays idempotent.
func (r *trainingSessionRepositoryImpl) CreateBulk(ctx context.Context, sessions []batch.TrainingSession) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO training_sessions (
			batch_id, name, description, starts_at, duration_minutes,
			location_id, coach_id, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (batch_id, starts_at) DO NOTHING
	`

	created := 0
	for _, s := range sessions {
		tag, err := q.Exec(ctx, query,
			s.BatchID,
			s.Name,
			s.Description,
			s.StartsAt,
			s.DurationMinutes,
			s.LocationID,
			s.CoachID,
			s.Status,
		)
		if err != nil {
			return created, fmt.Errorf("failed to create training session: %w", err)
		}
		created += int(tag.RowsAffected())
	}

	return created, nil
}

// GetByID implements batch.TrainingSessionRepository.
func (r *trainingSessionRepositoryImpl) GetByID(ctx context.Context, id string) (batch.TrainingSession, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM training_sessions WHERE id = $1`, sessionColumns)

	var found batch.TrainingSession
	if err := scanSession(q.QueryRow(ctx, query, id), &found); err != nil {
		return batch.TrainingSession{}, err
	}

	return found, nil
}

// List implements batch.TrainingSessionRepository.
func (r *trainingSessionRepositoryImpl) List(ctx context.Context, filter batch.SessionFilter) ([]batch.TrainingSession, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.BatchID != nil && *filter.BatchID != "" {
		conditions = append(conditions, fmt.Sprintf("batch_id = $%d", argIdx))
		args = append(args, *filter.BatchID)
		argIdx++
	}
	if filter.From != nil && *filter.From != "" {
		conditions = append(conditions, fmt.Sprintf("starts_at >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil && *filter.To != "" {
		// Inclusive end date
		conditions = append(conditions, fmt.Sprintf("starts_at < ($%d::date + INTERVAL '1 day')", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM training_sessions WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count training sessions: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM training_sessions
		WHERE %s
		ORDER BY starts_at
		LIMIT $%d OFFSET $%d
	`, sessionColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list training sessions: %w", err)
	}
	defer rows.Close()

	var sessions []batch.TrainingSession
	for rows.Next() {
		var s batch.TrainingSession
		if err := scanSession(rows, &s); err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// UpdateStatus implements batch.TrainingSessionRepository.
func (r *trainingSessionRepositoryImpl) UpdateStatus(ctx context.Context, id string, status batch.SessionStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE training_sessions SET status = $1, updated_at = NOW() WHERE id = $2`

	_, err := q.Exec(ctx, query, status, id)
	return err
}

// CompletePastScheduled implements batch.TrainingSessionRepository.
func (r *trainingSessionRepositoryImpl) CompletePastScheduled(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE training_sessions
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND starts_at + (duration_minutes || ' minutes')::interval <= $3
	`

	tag, err := q.Exec(ctx, query, batch.SessionCompleted, batch.SessionScheduled, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
