package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

// Create creates a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (name, academic_year, class_teacher_id, room_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		class.Name, class.AcademicYear, class.ClassTeacherID, class.RoomNumber).
		Scan(&class.ID, &class.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	query := `
		SELECT id, name, academic_year, class_teacher_id, room_number, created_at
		FROM classes
		WHERE id = $1
	`

	var class models.Class
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.AcademicYear,
		&class.ClassTeacherID,
		&class.RoomNumber,
		&class.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return &class, nil
}

// GetAll retrieves all classes
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	query := `
		SELECT id, name, academic_year, class_teacher_id, room_number, created_at
		FROM classes
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var class models.Class
		if err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.AcademicYear,
			&class.ClassTeacherID,
			&class.RoomNumber,
			&class.CreatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	return classes, rows.Err()
}

// Exists checks whether a class row exists
func (r *ClassRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class existence: %w", err)
	}
	return exists, nil
}

// HasReferences checks whether any table still points at this class.
// Deleting a referenced class is rejected rather than cascaded.
func (r *ClassRepository) HasReferences(ctx context.Context, id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE class_id = $1)
		    OR EXISTS(SELECT 1 FROM attendance WHERE class_id = $1)
		    OR EXISTS(SELECT 1 FROM marks WHERE class_id = $1)
		    OR EXISTS(SELECT 1 FROM subject_allocations WHERE class_id = $1)
		    OR EXISTS(SELECT 1 FROM timetable WHERE class_id = $1)`,
		id).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("error checking class references: %w", err)
	}
	return has, nil
}

// Delete deletes a class by ID. Callers must run the reference guard first.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}
