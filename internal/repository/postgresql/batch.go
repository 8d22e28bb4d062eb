package postgresql

import (
	"context"
	"fmt"

	"github.com/goalline/academy-backend-go/internal/domain/batch"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
)

type batchRepositoryImpl struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) batch.BatchRepository {
	return &batchRepositoryImpl{db: db}
}

// Create implements batch.BatchRepository.
func (r *batchRepositoryImpl) Create(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO batches (name, description, start_date, end_date, location_id, coach_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, start_date, end_date, location_id, coach_id,
				  created_at, updated_at, deleted_at
	`

	var created batch.Batch
	err := q.QueryRow(ctx, query,
		b.Name,
		b.Description,
		b.StartDate,
		b.EndDate,
		b.LocationID,
		b.CoachID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.StartDate,
		&created.EndDate,
		&created.LocationID,
		&created.CoachID,
		&created.CreatedAt,
		&created.UpdatedAt,
		&created.DeletedAt,
	)
	if err != nil {
		return batch.Batch{}, err
	}

	return created, nil
}

// GetByID implements batch.BatchRepository.
func (r *batchRepositoryImpl) GetByID(ctx context.Context, id string) (batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, start_date, end_date, location_id, coach_id,
			   created_at, updated_at, deleted_at
		FROM batches
		WHERE id = $1 AND deleted_at IS NULL
	`

	var found batch.Batch
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.Description,
		&found.StartDate,
		&found.EndDate,
		&found.LocationID,
		&found.CoachID,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.DeletedAt,
	)
	if err != nil {
		return batch.Batch{}, err
	}

	return found, nil
}

// List implements batch.BatchRepository.
func (r *batchRepositoryImpl) List(ctx context.Context, page, limit int) ([]batch.Batch, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM batches WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count batches: %w", err)
	}

	offset := (page - 1) * limit
	query := `
		SELECT id, name, description, start_date, end_date, location_id, coach_id,
			   created_at, updated_at, deleted_at
		FROM batches
		WHERE deleted_at IS NULL
		ORDER BY start_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []batch.Batch
	for rows.Next() {
		var b batch.Batch
		err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Description,
			&b.StartDate,
			&b.EndDate,
			&b.LocationID,
			&b.CoachID,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.DeletedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		batches = append(batches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

// SoftDelete implements batch.BatchRepository.
func (r *batchRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE batches SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	_, err := q.Exec(ctx, query, id)
	return err
}

type scheduleRuleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRuleRepository(db *database.DB) batch.ScheduleRuleRepository {
	return &scheduleRuleRepositoryImpl{db: db}
}

// CreateBulk implements batch.ScheduleRuleRepository.
func (r *scheduleRuleRepositoryImpl) CreateBulk(ctx context.Context, rules []batch.ScheduleRule) error {
	if len(rules) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_rules (batch_id, days, start_time, end_time)
		VALUES ($1, $2, $3, $4)
	`

	for _, rule := range rules {
		days := make([]string, len(rule.Days))
		for i, d := range rule.Days {
			days[i] = string(d)
		}
		if _, err := q.Exec(ctx, query, rule.BatchID, days, rule.StartTime, rule.EndTime); err != nil {
			return fmt.Errorf("failed to create schedule rule: %w", err)
		}
	}

	return nil
}

// ListByBatch implements batch.ScheduleRuleRepository.
func (r *scheduleRuleRepositoryImpl) ListByBatch(ctx context.Context, batchID string) ([]batch.ScheduleRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, batch_id, days, start_time, end_time, created_at
		FROM schedule_rules
		WHERE batch_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule rules: %w", err)
	}
	defer rows.Close()

	var rules []batch.ScheduleRule
	for rows.Next() {
		var rule batch.ScheduleRule
		var days []string
		err := rows.Scan(
			&rule.ID,
			&rule.BatchID,
			&days,
			&rule.StartTime,
			&rule.EndTime,
			&rule.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		rule.Days = make([]batch.Weekday, len(days))
		for i, d := range days {
			rule.Days[i] = batch.Weekday(d)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
