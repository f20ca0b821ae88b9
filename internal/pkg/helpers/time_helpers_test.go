package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *time.Time
	}{
		{name: "empty is absent", input: "", want: nil},
		{name: "garbage is absent", input: "01/01/2000", want: nil},
		{name: "valid date", input: "2024-06-15", want: timePtr(2024, time.June, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && !got.Equal(*tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	if _, ok := ParseClock("09:30"); !ok {
		t.Error("ParseClock(09:30) should parse")
	}
	if _, ok := ParseClock("9 am"); ok {
		t.Error("ParseClock(9 am) should not parse")
	}
}

func timePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
