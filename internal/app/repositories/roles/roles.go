// Package roles holds the per-variant role-entity repositories (admins,
// faculty, students, librarians). Each variant owns its table and its own
// display-id sequence; the repositories expose id snapshots so the allocator
// can be re-run against fresh state on every create.
package roles

import (
	"context"
	"fmt"

	"github.com/rahulj/sdms/internal/db"
)

// MonthCount is one bucket of the admission-month grouping used by
// enrollment reporting.
type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// listUIDs reads the full set of display ids currently present in a role
// table. Creation flows must call this immediately before allocating; the
// unique constraint on the uid column backstops any interleaving.
func listUIDs(ctx context.Context, db db.Querier, table, column string) ([]string, error) {
	rows, err := db.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s`, column, table))
	if err != nil {
		return nil, fmt.Errorf("error listing %s display ids: %w", table, err)
	}
	defer rows.Close()

	var uids []string
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		uids = append(uids, uid)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return uids, nil
}
