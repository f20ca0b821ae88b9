package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
)

// AllocationRepository handles database operations for subject allocations.
// The table carries no uniqueness constraint on (class, subject); reporting
// reads allocations in insertion order and lets the first pair win.
type AllocationRepository struct {
	db *pgxpool.Pool
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{
		db: db,
	}
}

// Create creates a new (class, subject, teacher) allocation
func (r *AllocationRepository) Create(ctx context.Context, allocation *models.SubjectAllocation) error {
	query := `
		INSERT INTO subject_allocations (class_id, subject_id, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		allocation.ClassID, allocation.SubjectID, allocation.TeacherID).
		Scan(&allocation.ID, &allocation.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating allocation: %w", err)
	}

	return nil
}

// GetByTeacher retrieves a teacher's allocations in insertion order, with
// class and subject names attached for report labels.
func (r *AllocationRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.SubjectAllocation, error) {
	query := `
		SELECT a.id, a.class_id, a.subject_id, a.teacher_id, a.created_at,
		       c.name, s.name
		FROM subject_allocations a
		JOIN classes c ON c.id = a.class_id
		JOIN subjects s ON s.id = a.subject_id
		WHERE a.teacher_id = $1
		ORDER BY a.id
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []*models.SubjectAllocation
	for rows.Next() {
		var a models.SubjectAllocation
		var className, subjectName string
		if err := rows.Scan(&a.ID, &a.ClassID, &a.SubjectID, &a.TeacherID, &a.CreatedAt,
			&className, &subjectName); err != nil {
			return nil, err
		}
		a.Class = &models.Class{ID: a.ClassID, Name: className}
		a.Subject = &models.Subject{ID: a.SubjectID, Name: subjectName}
		allocations = append(allocations, &a)
	}

	return allocations, rows.Err()
}

// GetAll retrieves all allocations in insertion order
func (r *AllocationRepository) GetAll(ctx context.Context) ([]*models.SubjectAllocation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, class_id, subject_id, teacher_id, created_at
		FROM subject_allocations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []*models.SubjectAllocation
	for rows.Next() {
		var a models.SubjectAllocation
		if err := rows.Scan(&a.ID, &a.ClassID, &a.SubjectID, &a.TeacherID, &a.CreatedAt); err != nil {
			return nil, err
		}
		allocations = append(allocations, &a)
	}

	return allocations, rows.Err()
}

// Delete removes an allocation by ID
func (r *AllocationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subject_allocations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting allocation: %w", err)
	}
	return nil
}
