package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/db"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/dberrors"
)

// AdminRepository handles admin profile database operations
type AdminRepository struct {
	db db.Querier
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository scoped to the given transaction
func (r *AdminRepository) WithTx(tx pgx.Tx) *AdminRepository {
	return &AdminRepository{db: tx}
}

// ListUIDs returns a fresh snapshot of every admin display id in use
func (r *AdminRepository) ListUIDs(ctx context.Context) ([]string, error) {
	return listUIDs(ctx, r.db, "admins", "admin_uid")
}

// Create inserts a new admin row
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (admin_uid, name, username, role, dob, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		admin.AdminUID, admin.Name, admin.Username, admin.Role, admin.DOB, admin.Email).
		Scan(&admin.ID, &admin.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_admin_uid_key") {
			return apperrors.ErrDisplayIDExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByUID retrieves an admin by display id
func (r *AdminRepository) GetByUID(ctx context.Context, uid string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRow(ctx, `
		SELECT id, admin_uid, name, username, role, dob, email, created_at
		FROM admins WHERE admin_uid = $1`, uid).Scan(
		&a.ID, &a.AdminUID, &a.Name, &a.Username, &a.Role, &a.DOB, &a.Email, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &a, nil
}

// GetAll retrieves admin profiles. The bootstrap super admin is not listed.
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, admin_uid, name, username, role, dob, email, created_at
		FROM admins WHERE role != $1 ORDER BY admin_uid`, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.AdminUID, &a.Name, &a.Username, &a.Role, &a.DOB, &a.Email, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, &a)
	}

	return admins, rows.Err()
}

// Update rewrites the mutable columns of an admin row
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE admins SET name = $2, username = $3, dob = $4, email = $5
		WHERE id = $1`,
		admin.ID, admin.Name, admin.Username, admin.DOB, admin.Email)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_username_key") {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error updating admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// Delete removes an admin row by internal id
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
