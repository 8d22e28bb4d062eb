package postgresql

import (
	"context"
	"fmt"

	"github.com/goalline/academy-backend-go/internal/domain/staff"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, user_id, first_name, last_name, email, phone, role, specialization,
		is_active, created_at, updated_at, deleted_at`

func scanStaff(row pgx.Row, s *staff.Staff) error {
	return row.Scan(
		&s.ID,
		&s.UserID,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Role,
		&s.Specialization,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.DeletedAt,
	)
}

// Create implements staff.Repository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO staff (user_id, first_name, last_name, email, phone, role, specialization, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, staffColumns)

	var created staff.Staff
	err := scanStaff(q.QueryRow(ctx, query,
		s.UserID,
		s.FirstName,
		s.LastName,
		s.Email,
		s.Phone,
		s.Role,
		s.Specialization,
		s.IsActive,
	), &created)
	if err != nil {
		return staff.Staff{}, err
	}

	return created, nil
}

// GetByID implements staff.Repository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM staff WHERE id = $1 AND deleted_at IS NULL`, staffColumns)

	var found staff.Staff
	if err := scanStaff(q.QueryRow(ctx, query, id), &found); err != nil {
		return staff.Staff{}, err
	}

	return found, nil
}

// GetByUserID implements staff.Repository.
func (r *staffRepositoryImpl) GetByUserID(ctx context.Context, userID string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM staff WHERE user_id = $1 AND deleted_at IS NULL`, staffColumns)

	var found staff.Staff
	if err := scanStaff(q.QueryRow(ctx, query, userID), &found); err != nil {
		return staff.Staff{}, err
	}

	return found, nil
}

// List implements staff.Repository.
func (r *staffRepositoryImpl) List(ctx context.Context, coachesOnly bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM staff WHERE deleted_at IS NULL`, staffColumns)
	args := []interface{}{}
	if coachesOnly {
		query += ` AND role = $1`
		args = append(args, "COACH")
	}
	query += ` ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var s staff.Staff
		if err := scanStaff(rows, &s); err != nil {
			return nil, err
		}
		members = append(members, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Update implements staff.Repository.
func (r *staffRepositoryImpl) Update(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET first_name = $1, last_name = $2, phone = $3, specialization = $4,
			is_active = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	_, err := q.Exec(ctx, query,
		s.FirstName,
		s.LastName,
		s.Phone,
		s.Specialization,
		s.IsActive,
		s.ID,
	)
	return err
}

// SoftDelete implements staff.Repository.
func (r *staffRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE staff SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	_, err := q.Exec(ctx, query, id)
	return err
}
