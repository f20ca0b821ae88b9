package services

import (
	"testing"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"already canonical", "jane@example.com", "jane@example.com"},
		{"mixed case folded", "Jane@Example.COM", "jane@example.com"},
		{"spaces trimmed", "  jane@example.com ", "jane@example.com"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAddress(tt.address); got != tt.want {
				t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.address, got, tt.want)
			}
		})
	}
}
