// Package idgen allocates the human-readable display identifiers used by
// role entities (F_001, S_042, ...). It is deliberately stateless: the caller
// supplies a fresh snapshot of the identifiers already in use and the
// database's uniqueness constraint on the display-id column is the final
// arbiter under concurrent allocation.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Next returns the next display identifier for the given prefix based on the
// set of identifiers currently in use. Entries that do not match the
// "<prefix>_<digits>" shape are ignored. The numeric part is zero-padded to
// three digits and grows naturally beyond 999.
func Next(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		rest, ok := strings.CutPrefix(id, prefix+"_")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s_%03d", prefix, max+1)
}
