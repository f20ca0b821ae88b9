package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/dberrors"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Create creates a new subject. A duplicate code is a retryable conflict.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, department_id, credits)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		subject.Name, subject.Code, subject.DepartmentID, subject.Credits).
		Scan(&subject.ID, &subject.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_code_key") {
			return apperrors.ErrSubjectCodeExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, department_id, credits, created_at
		FROM subjects WHERE id = $1`, id).Scan(
		&subject.ID, &subject.Name, &subject.Code, &subject.DepartmentID, &subject.Credits, &subject.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetByName retrieves a subject by exact name; first row in id order wins
// when names collide.
func (r *SubjectRepository) GetByName(ctx context.Context, name string) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.QueryRow(ctx, `
		SELECT id, name, code, department_id, credits, created_at
		FROM subjects WHERE name = $1 ORDER BY id LIMIT 1`, name).Scan(
		&subject.ID, &subject.Name, &subject.Code, &subject.DepartmentID, &subject.Credits, &subject.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject by name: %w", err)
	}

	return &subject, nil
}

// GetAll retrieves all subjects
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, code, department_id, credits, created_at
		FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID, &subject.Name, &subject.Code, &subject.DepartmentID,
			&subject.Credits, &subject.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	return subjects, rows.Err()
}

// Exists checks whether a subject row exists
func (r *SubjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

// HasReferences checks whether ledger or association rows still point at
// this subject.
func (r *SubjectRepository) HasReferences(ctx context.Context, id int64) (bool, error) {
	var has bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM attendance WHERE subject_id = $1)
		    OR EXISTS(SELECT 1 FROM marks WHERE subject_id = $1)
		    OR EXISTS(SELECT 1 FROM subject_allocations WHERE subject_id = $1)
		    OR EXISTS(SELECT 1 FROM timetable WHERE subject_id = $1)`,
		id).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("error checking subject references: %w", err)
	}
	return has, nil
}

// Delete deletes a subject by ID. Callers must run the reference guard first.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}
