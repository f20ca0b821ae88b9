package idgen

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{name: "empty set starts at 1", prefix: "F", existing: nil, want: "F_001"},
		{name: "increments max", prefix: "F", existing: []string{"F_001", "F_002"}, want: "F_003"},
		{name: "gaps are not refilled", prefix: "S", existing: []string{"S_001", "S_007"}, want: "S_008"},
		{name: "malformed entries ignored", prefix: "S", existing: []string{"S_xyz", "junk", "S_", "S_002"}, want: "S_003"},
		{name: "only malformed entries", prefix: "A", existing: []string{"A_abc", "F_004"}, want: "A_001"},
		{name: "foreign prefixes ignored", prefix: "L", existing: []string{"F_900", "L_003"}, want: "L_004"},
		{name: "grows past three digits", prefix: "S", existing: []string{"S_999"}, want: "S_1000"},
		{name: "keeps growing", prefix: "S", existing: []string{"S_1000"}, want: "S_1001"},
		{name: "word prefix", prefix: "LIB", existing: []string{"LIB_010"}, want: "LIB_011"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.prefix, tt.existing); got != tt.want {
				t.Errorf("Next(%q, %v) = %q, want %q", tt.prefix, tt.existing, got, tt.want)
			}
		})
	}
}

// Repeated allocation against the ids produced so far must yield a strictly
// increasing, gap-free sequence.
func TestNextSequence(t *testing.T) {
	var existing []string
	want := []string{"L_001", "L_002", "L_003", "L_004", "L_005"}
	for i, w := range want {
		got := Next("L", existing)
		if got != w {
			t.Fatalf("allocation %d: got %q, want %q", i, got, w)
		}
		existing = append(existing, got)
	}
}
