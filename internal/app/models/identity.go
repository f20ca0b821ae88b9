package models

import "time"

// IdentityRecord is one row of the identity directory: the single table that
// resolves a contact address to a role and the display id of its profile.
// Addresses are stored lower-cased; there is at most one row per address.
type IdentityRecord struct {
	ID             int64     `json:"id" db:"id"`
	ContactAddress string    `json:"contactAddress" db:"contact_address"`
	Role           Role      `json:"role" db:"role"`
	CanonicalID    string    `json:"canonicalId" db:"canonical_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
