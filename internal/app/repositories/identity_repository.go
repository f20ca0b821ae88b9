package repositories

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

// IdentityRepository maintains the identity directory: the single table
// resolving a contact address to (role, canonical id). The directory is a
// materialized index kept in lockstep with every profile write, not a cache
// recomputed on demand.
type IdentityRepository struct {
	db db.Querier
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository scoped to the given transaction,
// so directory writes commit or roll back together with the profile write.
func (r *IdentityRepository) WithTx(tx pgx.Tx) *IdentityRepository {
	return &IdentityRepository{db: tx}
}

// Upsert inserts or replaces the directory row for a contact address. The
// unique constraint on contact_address makes this idempotent under retry.
func (r *IdentityRepository) Upsert(ctx context.Context, address string, role models.Role, canonicalID string) error {
	query := `
		INSERT INTO identities (contact_address, role, canonical_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (contact_address)
		DO UPDATE SET role = EXCLUDED.role, canonical_id = EXCLUDED.canonical_id
	`

	if _, err := r.db.Exec(ctx, query, address, role, canonicalID); err != nil {
		return fmt.Errorf("error upserting identity for %s: %w", address, err)
	}

	return nil
}

// GetByAddress resolves a contact address to its directory row
func (r *IdentityRepository) GetByAddress(ctx context.Context, address string) (*models.IdentityRecord, error) {
	query := `
		SELECT id, contact_address, role, canonical_id, created_at
		FROM identities
		WHERE contact_address = $1
	`

	var rec models.IdentityRecord
	err := r.db.QueryRow(ctx, query, address).Scan(
		&rec.ID,
		&rec.ContactAddress,
		&rec.Role,
		&rec.CanonicalID,
		&rec.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("error resolving identity: %w", err)
	}

	return &rec, nil
}

// Reassign migrates a directory row to a new contact address. The old
// address stops resolving in the same statement the new one starts.
func (r *IdentityRepository) Reassign(ctx context.Context, oldAddress, newAddress string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE identities SET contact_address = $2 WHERE contact_address = $1`,
		oldAddress, newAddress)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// The target address already resolves to another profile.
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error reassigning identity %s -> %s: %w", oldAddress, newAddress, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrIdentityNotFound
	}

	return nil
}

// DeleteByAddress removes the directory row for a contact address. Missing
// rows are not an error: profiles without an address never had one.
func (r *IdentityRepository) DeleteByAddress(ctx context.Context, address string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM identities WHERE contact_address = $1`, address); err != nil {
		return fmt.Errorf("error deleting identity: %w", err)
	}
	return nil
}
