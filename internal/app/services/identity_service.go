package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
)

// IdentityService maintains the identity directory: the single mapping from
// a contact address to a role and the display id of its profile. Addresses
// are normalized to lower case before every read and write, so lookups are
// case-insensitive no matter how the address was captured.
type IdentityService struct {
	identityRepo *repositories.IdentityRepository
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(identityRepo *repositories.IdentityRepository) *IdentityService {
	return &IdentityService{
		identityRepo: identityRepo,
	}
}

// withTx returns a copy of the service whose directory writes run inside
// the given transaction. The roster service uses it to keep a profile write
// and its directory entry in one atomic unit.
func (s *IdentityService) withTx(tx pgx.Tx) *IdentityService {
	return &IdentityService{identityRepo: s.identityRepo.WithTx(tx)}
}

// NormalizeAddress canonicalizes a contact address for directory use.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Resolve answers who a contact address belongs to.
func (s *IdentityService) Resolve(ctx context.Context, address string) (*models.IdentityRecord, error) {
	address = NormalizeAddress(address)
	if address == "" {
		return nil, apperrors.ErrEmptyAddress
	}
	return s.identityRepo.GetByAddress(ctx, address)
}

// Link points an address at a role and display id. Linking an address that
// is already in the directory overwrites the old entry; the directory holds
// at most one row per address.
func (s *IdentityService) Link(ctx context.Context, address string, role models.Role, canonicalID string) error {
	address = NormalizeAddress(address)
	if address == "" {
		// Profiles without a contact address simply have no directory entry.
		return nil
	}
	return s.identityRepo.Upsert(ctx, address, role, canonicalID)
}

// Reassign moves a directory entry from one address to another, keeping the
// role and display id. Used when a profile's contact address changes.
func (s *IdentityService) Reassign(ctx context.Context, oldAddress, newAddress string) error {
	oldAddress = NormalizeAddress(oldAddress)
	newAddress = NormalizeAddress(newAddress)
	if oldAddress == newAddress {
		return nil
	}
	if oldAddress == "" {
		return apperrors.ErrEmptyAddress
	}
	if newAddress == "" {
		// Address removed: the profile drops out of the directory.
		return s.identityRepo.DeleteByAddress(ctx, oldAddress)
	}
	return s.identityRepo.Reassign(ctx, oldAddress, newAddress)
}

// Unlink removes an address from the directory. Removing an address that is
// not present is not an error.
func (s *IdentityService) Unlink(ctx context.Context, address string) error {
	address = NormalizeAddress(address)
	if address == "" {
		return nil
	}
	return s.identityRepo.DeleteByAddress(ctx, address)
}
