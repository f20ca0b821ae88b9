package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
)

// AttendanceRepository handles database operations for attendance rows.
// The unique key on (student, subject, date) is declared NULLS NOT DISTINCT
// so subject-less rows still upsert instead of piling up duplicates.
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert records attendance for one student on one date. An existing row for
// the same (student, subject, date) key is overwritten in place.
func (r *AttendanceRepository) Upsert(ctx context.Context, a *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, class_id, subject_id, attendance_date, status, reason, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_id, subject_id, attendance_date)
		DO UPDATE SET status = EXCLUDED.status, reason = EXCLUDED.reason, recorded_by = EXCLUDED.recorded_by
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		a.StudentID, a.ClassID, a.SubjectID, a.Date, a.Status, a.Reason, a.RecordedBy).
		Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("error upserting attendance: %w", err)
	}

	return nil
}

// ListByStudent retrieves a student's attendance newest-first, optionally
// restricted to one subject, with subject names attached.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64, subjectID *int64) ([]*models.Attendance, error) {
	builder := r.sb.Select("a.id", "a.student_id", "a.class_id", "a.subject_id",
		"a.attendance_date", "a.status", "a.reason", "a.recorded_by", "a.created_at",
		"COALESCE(s.name, '')").
		From("attendance a").
		LeftJoin("subjects s ON s.id = a.subject_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.attendance_date DESC")

	if subjectID != nil {
		builder = builder.Where(squirrel.Eq{"a.subject_id": *subjectID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ClassID, &a.SubjectID,
			&a.Date, &a.Status, &a.Reason, &a.RecordedBy, &a.CreatedAt, &a.SubjectName); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	return records, rows.Err()
}

// Recent retrieves the n newest attendance rows for a student, newest first.
func (r *AttendanceRepository) Recent(ctx context.Context, studentID int64, n int) ([]*models.Attendance, error) {
	sql, args, err := r.sb.Select("a.id", "a.student_id", "a.class_id", "a.subject_id",
		"a.attendance_date", "a.status", "a.reason", "a.recorded_by", "a.created_at",
		"COALESCE(s.name, '')").
		From("attendance a").
		LeftJoin("subjects s ON s.id = a.subject_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.attendance_date DESC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ClassID, &a.SubjectID,
			&a.Date, &a.Status, &a.Reason, &a.RecordedBy, &a.CreatedAt,
			&a.SubjectName); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	return records, rows.Err()
}

// StatusCounts returns the total and present row counts for one student
// across all subjects.
func (r *AttendanceRepository) StatusCounts(ctx context.Context, studentID int64) (total, present int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $2)
		FROM attendance
		WHERE student_id = $1`,
		studentID, models.AttendancePresent).Scan(&total, &present)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting attendance: %w", err)
	}
	return total, present, nil
}

// GlobalStatusCounts returns the all-time Present and Absent row counts
// across every student. Leave rows are in neither bucket.
func (r *AttendanceRepository) GlobalStatusCounts(ctx context.Context) (present, absent int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE status = $1), COUNT(*) FILTER (WHERE status = $2)
		FROM attendance`,
		models.AttendancePresent, models.AttendanceAbsent).Scan(&present, &absent)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting global attendance: %w", err)
	}
	return present, absent, nil
}
