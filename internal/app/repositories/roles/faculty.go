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

const facultyColumns = "id, faculty_uid, name, date_of_birth, gender, email, phone, address, department_id, joining_date, qualification, created_at"

// FacultyRepository handles faculty profile database operations
type FacultyRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository scoped to the given transaction
func (r *FacultyRepository) WithTx(tx pgx.Tx) *FacultyRepository {
	return &FacultyRepository{db: tx, sb: r.sb}
}

// ListUIDs returns a fresh snapshot of every faculty display id in use
func (r *FacultyRepository) ListUIDs(ctx context.Context) ([]string, error) {
	return listUIDs(ctx, r.db, "faculty", "faculty_uid")
}

// Create inserts a new faculty row
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Insert("faculty").
		Columns("faculty_uid", "name", "date_of_birth", "gender", "email", "phone", "address", "department_id", "joining_date", "qualification").
		Values(faculty.FacultyUID, faculty.Name, faculty.DateOfBirth, faculty.Gender, faculty.Email,
			faculty.Phone, faculty.Address, faculty.DepartmentID, faculty.JoiningDate, faculty.Qualification).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_faculty_uid_key") {
			logger.Warn().Str("facultyUid", faculty.FacultyUID).Msg("Lost display id allocation race")
			return apperrors.ErrDisplayIDExists
		}
		if dberrors.IsDuplicateConstraintError(err, "faculty_email_key") {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error creating faculty: %w", err)
	}

	logger.Info().Str("facultyUid", faculty.FacultyUID).Msg("Faculty member created")
	return nil
}

// GetByUID retrieves a faculty member by display id
func (r *FacultyRepository) GetByUID(ctx context.Context, uid string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns).
		From("faculty").
		Where(squirrel.Eq{"faculty_uid": uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	var f models.Faculty
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&f.ID, &f.FacultyUID, &f.Name, &f.DateOfBirth, &f.Gender, &f.Email,
		&f.Phone, &f.Address, &f.DepartmentID, &f.JoiningDate, &f.Qualification, &f.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return &f, nil
}

// GetByID retrieves a faculty member by internal id
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	var f models.Faculty
	err := r.db.QueryRow(ctx, `
		SELECT `+facultyColumns+` FROM faculty WHERE id = $1`, id).Scan(
		&f.ID, &f.FacultyUID, &f.Name, &f.DateOfBirth, &f.Gender, &f.Email,
		&f.Phone, &f.Address, &f.DepartmentID, &f.JoiningDate, &f.Qualification, &f.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return &f, nil
}

// GetAll retrieves all faculty members ordered by display id
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	rows, err := r.db.Query(ctx, `SELECT `+facultyColumns+` FROM faculty ORDER BY faculty_uid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.Faculty
	for rows.Next() {
		var f models.Faculty
		if err := rows.Scan(
			&f.ID, &f.FacultyUID, &f.Name, &f.DateOfBirth, &f.Gender, &f.Email,
			&f.Phone, &f.Address, &f.DepartmentID, &f.JoiningDate, &f.Qualification, &f.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, &f)
	}

	return members, rows.Err()
}

// Update persists profile field changes for an existing faculty member
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculty").
		Set("name", faculty.Name).
		Set("email", faculty.Email).
		Set("phone", faculty.Phone).
		Set("address", faculty.Address).
		Set("department_id", faculty.DepartmentID).
		Set("qualification", faculty.Qualification).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_email_key") {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete removes a faculty row by internal id
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Count returns the total number of faculty members
func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculty`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting faculty: %w", err)
	}
	return count, nil
}
