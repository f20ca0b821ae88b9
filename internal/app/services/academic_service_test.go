package services

import (
	"testing"
)

func strp(s string) *string { return &s }

func TestValidateSlotTimes(t *testing.T) {
	tests := []struct {
		name    string
		start   *string
		end     *string
		wantErr bool
	}{
		{"both absent", nil, nil, false},
		{"valid slot", strp("09:00"), strp("09:45"), false},
		{"start only", strp("09:00"), nil, true},
		{"end only", nil, strp("09:45"), true},
		{"start after end", strp("10:00"), strp("09:45"), true},
		{"start equals end", strp("09:00"), strp("09:00"), true},
		{"malformed start", strp("9am"), strp("09:45"), true},
		{"malformed end", strp("09:00"), strp("later"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlotTimes(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSlotTimes(%v, %v) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}
