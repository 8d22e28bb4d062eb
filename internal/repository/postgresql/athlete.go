package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/goalline/academy-backend-go/internal/domain/athlete"
	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type athleteRepositoryImpl struct {
	db *database.DB
}

func NewAthleteRepository(db *database.DB) athlete.Repository {
	return &athleteRepositoryImpl{db: db}
}

// NewAthleteContactReader exposes the guardian contact lookup used by
// billing notifications.
func NewAthleteContactReader(db *database.DB) billing.AthleteContactReader {
	return &athleteRepositoryImpl{db: db}
}

const athleteColumns = `id, code, first_name, last_name, date_of_birth, position, guardian_name,
		guardian_email, guardian_phone, status, batch_id, joined_at, created_at, updated_at, deleted_at`

func scanAthlete(row pgx.Row, a *athlete.Athlete) error {
	return row.Scan(
		&a.ID,
		&a.Code,
		&a.FirstName,
		&a.LastName,
		&a.DateOfBirth,
		&a.Position,
		&a.GuardianName,
		&a.GuardianEmail,
		&a.GuardianPhone,
		&a.Status,
		&a.BatchID,
		&a.JoinedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	)
}

// Create implements athlete.Repository.
func (r *athleteRepositoryImpl) Create(ctx context.Context, a athlete.Athlete) (athlete.Athlete, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO athletes (
			code, first_name, last_name, date_of_birth, position, guardian_name,
			guardian_email, guardian_phone, status, batch_id, joined_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, athleteColumns)

	var created athlete.Athlete
	err := scanAthlete(q.QueryRow(ctx, query,
		a.Code,
		a.FirstName,
		a.LastName,
		a.DateOfBirth,
		a.Position,
		a.GuardianName,
		a.GuardianEmail,
		a.GuardianPhone,
		a.Status,
		a.BatchID,
		a.JoinedAt,
	), &created)
	if err != nil {
		return athlete.Athlete{}, err
	}

	return created, nil
}

// GetByID implements athlete.Repository.
func (r *athleteRepositoryImpl) GetByID(ctx context.Context, id string) (athlete.Athlete, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM athletes WHERE id = $1 AND deleted_at IS NULL`, athleteColumns)

	var found athlete.Athlete
	if err := scanAthlete(q.QueryRow(ctx, query, id), &found); err != nil {
		return athlete.Athlete{}, err
	}

	return found, nil
}

// GetByCode implements athlete.Repository.
func (r *athleteRepositoryImpl) GetByCode(ctx context.Context, code string) (athlete.Athlete, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM athletes WHERE code = $1 AND deleted_at IS NULL`, athleteColumns)

	var found athlete.Athlete
	if err := scanAthlete(q.QueryRow(ctx, query, code), &found); err != nil {
		return athlete.Athlete{}, err
	}

	return found, nil
}

// List implements athlete.Repository.
func (r *athleteRepositoryImpl) List(ctx context.Context, filter athlete.Filter) ([]athlete.Athlete, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE conditions
	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR code ILIKE $%d OR guardian_name ILIKE $%d)", argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.BatchID != nil && *filter.BatchID != "" {
		conditions = append(conditions, fmt.Sprintf("batch_id = $%d", argIdx))
		args = append(args, *filter.BatchID)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM athletes WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count athletes: %w", err)
	}

	// Main query with pagination
	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM athletes
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, athleteColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list athletes: %w", err)
	}
	defer rows.Close()

	var athletes []athlete.Athlete
	for rows.Next() {
		var a athlete.Athlete
		if err := scanAthlete(rows, &a); err != nil {
			return nil, 0, err
		}
		athletes = append(athletes, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return athletes, total, nil
}

// Update implements athlete.Repository.
func (r *athleteRepositoryImpl) Update(ctx context.Context, a athlete.Athlete) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE athletes
		SET first_name = $1, last_name = $2, position = $3, guardian_name = $4,
			guardian_email = $5, guardian_phone = $6, status = $7, batch_id = $8,
			updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`

	_, err := q.Exec(ctx, query,
		a.FirstName,
		a.LastName,
		a.Position,
		a.GuardianName,
		a.GuardianEmail,
		a.GuardianPhone,
		a.Status,
		a.BatchID,
		a.ID,
	)
	return err
}

// SoftDelete implements athlete.Repository.
func (r *athleteRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE athletes SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	_, err := q.Exec(ctx, query, id)
	return err
}

// Count implements athlete.Repository. Soft-deleted rows are included so the
// generated code sequence never reuses a number.
func (r *athleteRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM athletes`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GuardianEmailExists implements athlete.Repository.
func (r *athleteRepositoryImpl) GuardianEmailExists(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM athletes WHERE guardian_email = $1 AND deleted_at IS NULL)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetContact implements billing.AthleteContactReader.
func (r *athleteRepositoryImpl) GetContact(ctx context.Context, athleteID string) (string, string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT guardian_name, guardian_email
		FROM athletes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var name, email string
	if err := q.QueryRow(ctx, query, athleteID).Scan(&name, &email); err != nil {
		return "", "", err
	}
	return name, email, nil
}

var _ billing.AthleteContactReader = (*athleteRepositoryImpl)(nil)
