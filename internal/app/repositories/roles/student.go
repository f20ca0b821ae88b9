package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/db"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/dberrors"
	"github.com/rahulj/sdms/internal/pkg/logger"
)

const studentColumns = "id, student_uid, name, date_of_birth, gender, email, phone, address, class_id, admission_date, created_at"

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository scoped to the given transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx, sb: r.sb}
}

// ListUIDs returns a fresh snapshot of every student display id in use
func (r *StudentRepository) ListUIDs(ctx context.Context) ([]string, error) {
	return listUIDs(ctx, r.db, "students", "student_uid")
}

// Create inserts a new student row. A duplicate display id surfaces as
// ErrDisplayIDExists so the caller can re-run the allocation.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_uid", "name", "date_of_birth", "gender", "email", "phone", "address", "class_id", "admission_date").
		Values(student.StudentUID, student.Name, student.DateOfBirth, student.Gender, student.Email,
			student.Phone, student.Address, student.ClassID, student.AdmissionDate).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_uid_key") {
			logger.Warn().Str("studentUid", student.StudentUID).Msg("Lost display id allocation race")
			return apperrors.ErrDisplayIDExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("studentUid", student.StudentUID).Msg("Student created")
	return nil
}

// GetByUID retrieves a student by display id
func (r *StudentRepository) GetByUID(ctx context.Context, uid string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"student_uid": uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var s models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.StudentUID, &s.Name, &s.DateOfBirth, &s.Gender, &s.Email,
		&s.Phone, &s.Address, &s.ClassID, &s.AdmissionDate, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &s, nil
}

// GetAll retrieves all students ordered by display id
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		OrderBy("student_uid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID, &s.StudentUID, &s.Name, &s.DateOfBirth, &s.Gender, &s.Email,
			&s.Phone, &s.Address, &s.ClassID, &s.AdmissionDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, &s)
	}

	return students, rows.Err()
}

// Update persists profile field changes for an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("email", student.Email).
		Set("phone", student.Phone).
		Set("address", student.Address).
		Set("class_id", student.ClassID).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student row by internal id
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CountDistinctByClasses counts students whose current class is in classIDs.
// Students are rows, so one student in several of the classes counts once.
func (r *StudentRepository) CountDistinctByClasses(ctx context.Context, classIDs []int64) (int64, error) {
	if len(classIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT id) FROM students WHERE class_id = ANY($1)`,
		classIDs).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by classes: %w", err)
	}

	return count, nil
}

// EnrollmentByMonth groups students by admission month, chronologically.
// Months without admissions produce no bucket. Students without an admission
// date are excluded.
func (r *StudentRepository) EnrollmentByMonth(ctx context.Context) ([]MonthCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(admission_date, 'YYYY-MM') AS month, COUNT(*)
		FROM students
		WHERE admission_date IS NOT NULL
		GROUP BY month
		ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("error grouping admissions by month: %w", err)
	}
	defer rows.Close()

	var buckets []MonthCount
	for rows.Next() {
		var b MonthCount
		if err := rows.Scan(&b.Month, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}
