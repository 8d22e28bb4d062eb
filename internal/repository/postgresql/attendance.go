package postgresql

import (
	"context"
	"fmt"

	"github.com/goalline/academy-backend-go/internal/domain/attendance"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, session_id, athlete_id, status, note, marked_by_id, marked_at,
		created_at, updated_at`

func scanAttendance(row pgx.Row, rec *attendance.Record) error {
	return row.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.AthleteID,
		&rec.Status,
		&rec.Note,
		&rec.MarkedByID,
		&rec.MarkedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
}

// Upsert implements attendance.Repository. A second mark for the same
// (session, athlete) overwrites the first.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendance_records (session_id, athlete_id, status, note, marked_by_id, marked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id, athlete_id) DO UPDATE
		SET status = EXCLUDED.status,
			note = EXCLUDED.note,
			marked_by_id = EXCLUDED.marked_by_id,
			marked_at = EXCLUDED.marked_at,
			updated_at = NOW()
		RETURNING %s
	`, attendanceColumns)

	var saved attendance.Record
	err := scanAttendance(q.QueryRow(ctx, query,
		rec.SessionID,
		rec.AthleteID,
		rec.Status,
		rec.Note,
		rec.MarkedByID,
		rec.MarkedAt,
	), &saved)
	if err != nil {
		return attendance.Record{}, err
	}

	return saved, nil
}

// ListBySession implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListBySession(ctx context.Context, sessionID string) ([]attendance.Record, error) {
	return r.list(ctx, `session_id = $1`, sessionID)
}

// ListByAthlete implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByAthlete(ctx context.Context, athleteID string) ([]attendance.Record, error) {
	return r.list(ctx, `athlete_id = $1`, athleteID)
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, where string, arg interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records
		WHERE %s
		ORDER BY marked_at DESC
	`, attendanceColumns, where)

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := scanAttendance(rows, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// SummaryForAthlete implements attendance.Repository.
func (r *attendanceRepositoryImpl) SummaryForAthlete(ctx context.Context, athleteID string) (attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT'),
			COUNT(*) FILTER (WHERE status = 'ABSENT'),
			COUNT(*) FILTER (WHERE status = 'LATE'),
			COUNT(*) FILTER (WHERE status = 'EXCUSED'),
			COUNT(*)
		FROM attendance_records
		WHERE athlete_id = $1
	`

	summary := attendance.Summary{AthleteID: athleteID}
	err := q.QueryRow(ctx, query, athleteID).Scan(
		&summary.Present,
		&summary.Absent,
		&summary.Late,
		&summary.Excused,
		&summary.Total,
	)
	if err != nil {
		return attendance.Summary{}, err
	}

	return summary, nil
}
