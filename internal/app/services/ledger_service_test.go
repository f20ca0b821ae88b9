package services

import (
	"testing"
)

func TestCoerceMark(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "85", 85},
		{"decimal", "72.5", 72.5},
		{"surrounding spaces", "  90 ", 90},
		{"unparseable text", "absent", 0},
		{"empty", "", 0},
		{"negative kept as-is", "-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceMark(tt.raw); got != tt.want {
				t.Errorf("coerceMark(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]string{
		"S_010": "Present",
		"S_002": "Absent",
		"S_001": "Present",
	}

	keys := sortedKeys(m)

	want := []string{"S_001", "S_002", "S_010"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
