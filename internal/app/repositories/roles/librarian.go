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

const librarianColumns = "id, librarian_uid, name, date_of_birth, gender, email, phone, address, joining_date, created_at"

// LibrarianRepository handles librarian profile database operations
type LibrarianRepository struct {
	db db.Querier
}

// NewLibrarianRepository creates a new LibrarianRepository
func NewLibrarianRepository(db *pgxpool.Pool) *LibrarianRepository {
	return &LibrarianRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository scoped to the given transaction
func (r *LibrarianRepository) WithTx(tx pgx.Tx) *LibrarianRepository {
	return &LibrarianRepository{db: tx}
}

// ListUIDs returns a fresh snapshot of every librarian display id in use
func (r *LibrarianRepository) ListUIDs(ctx context.Context) ([]string, error) {
	return listUIDs(ctx, r.db, "librarians", "librarian_uid")
}

// Create inserts a new librarian row
func (r *LibrarianRepository) Create(ctx context.Context, librarian *models.Librarian) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO librarians (librarian_uid, name, date_of_birth, gender, email, phone, address, joining_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		librarian.LibrarianUID, librarian.Name, librarian.DateOfBirth, librarian.Gender,
		librarian.Email, librarian.Phone, librarian.Address, librarian.JoiningDate).
		Scan(&librarian.ID, &librarian.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "librarians_librarian_uid_key") {
			return apperrors.ErrDisplayIDExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error creating librarian: %w", err)
	}

	return nil
}

// GetByUID retrieves a librarian by display id
func (r *LibrarianRepository) GetByUID(ctx context.Context, uid string) (*models.Librarian, error) {
	var l models.Librarian
	err := r.db.QueryRow(ctx, `
		SELECT `+librarianColumns+` FROM librarians WHERE librarian_uid = $1`, uid).Scan(
		&l.ID, &l.LibrarianUID, &l.Name, &l.DateOfBirth, &l.Gender, &l.Email,
		&l.Phone, &l.Address, &l.JoiningDate, &l.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLibrarianNotFound
		}
		return nil, fmt.Errorf("error retrieving librarian: %w", err)
	}

	return &l, nil
}

// GetAll retrieves all librarians ordered by display id
func (r *LibrarianRepository) GetAll(ctx context.Context) ([]*models.Librarian, error) {
	rows, err := r.db.Query(ctx, `SELECT `+librarianColumns+` FROM librarians ORDER BY librarian_uid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var librarians []*models.Librarian
	for rows.Next() {
		var l models.Librarian
		if err := rows.Scan(
			&l.ID, &l.LibrarianUID, &l.Name, &l.DateOfBirth, &l.Gender, &l.Email,
			&l.Phone, &l.Address, &l.JoiningDate, &l.CreatedAt); err != nil {
			return nil, err
		}
		librarians = append(librarians, &l)
	}

	return librarians, rows.Err()
}

// Update rewrites the mutable columns of a librarian row
func (r *LibrarianRepository) Update(ctx context.Context, librarian *models.Librarian) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE librarians SET name = $2, email = $3, phone = $4, address = $5
		WHERE id = $1`,
		librarian.ID, librarian.Name, librarian.Email, librarian.Phone, librarian.Address)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "librarians_email_key") {
			return apperrors.ErrEmailExists
		}
		return fmt.Errorf("error updating librarian: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLibrarianNotFound
	}

	return nil
}

// Delete removes a librarian row by internal id
func (r *LibrarianRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM librarians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting librarian: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLibrarianNotFound
	}
	return nil
}
