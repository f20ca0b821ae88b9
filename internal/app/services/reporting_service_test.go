package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/repositories/roles"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		whole int64
		want  float64
	}{
		{"three quarters", 3, 4, 75.0},
		{"no rows", 0, 0, 0},
		{"all present", 10, 10, 100.0},
		{"rounds to one decimal", 1, 3, 33.3},
		{"rounds up", 2, 3, 66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentage(tt.part, tt.whole); got != tt.want {
				t.Errorf("percentage(%d, %d) = %v, want %v", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 66.7, round1(66.666))
	assert.Equal(t, 0.0, round1(0))
	assert.Equal(t, 42.0, round1(42.04))
	assert.Equal(t, 42.1, round1(42.05))
}

func TestRecentStrip(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}
	// Repository order: newest first.
	rows := []*models.Attendance{
		{Date: day(12), Status: models.AttendancePresent, SubjectName: "Math"},
		{Date: day(11), Status: models.AttendanceAbsent, SubjectName: "Math"},
		{Date: day(10), Status: models.AttendanceLeave, SubjectName: "Physics"},
	}

	strip := recentStrip(rows)

	assert.Len(t, strip, 3)
	assert.Equal(t, "2026-03-10", strip[0].Date)
	assert.Equal(t, "Leave", strip[0].Status)
	assert.Equal(t, "2026-03-12", strip[2].Date)
	assert.Equal(t, "Math", strip[2].Subject)
}

func TestRecentStripEmpty(t *testing.T) {
	strip := recentStrip(nil)
	assert.NotNil(t, strip)
	assert.Empty(t, strip)
}

func TestDedupeClassSubject(t *testing.T) {
	allocations := []*models.SubjectAllocation{
		{ID: 1, ClassID: 1, SubjectID: 10, TeacherID: 5},
		{ID: 2, ClassID: 1, SubjectID: 10, TeacherID: 6}, // duplicate pair
		{ID: 3, ClassID: 2, SubjectID: 10, TeacherID: 5},
		{ID: 4, ClassID: 1, SubjectID: 11, TeacherID: 5},
	}

	got := dedupeClassSubject(allocations)

	assert.Len(t, got, 3)
	// First row of each pair wins, insertion order preserved.
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(4), got[2].ID)
}

func TestCumulativeGrowth(t *testing.T) {
	byMonth := []roles.MonthCount{
		{Month: "2026-01", Count: 3},
		{Month: "2026-02", Count: 2},
		{Month: "2026-04", Count: 1}, // March absent: no admissions
	}

	points := cumulativeGrowth(byMonth)

	assert.Len(t, points, 3)
	assert.Equal(t, "Jan", points[0].Month)
	assert.Equal(t, int64(3), points[0].Count)
	assert.Equal(t, "Feb", points[1].Month)
	assert.Equal(t, int64(5), points[1].Count)
	assert.Equal(t, "Apr", points[2].Month)
	assert.Equal(t, int64(6), points[2].Count)
}

func TestCumulativeGrowthEmpty(t *testing.T) {
	assert.Empty(t, cumulativeGrowth(nil))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Dec", monthLabel("2025-12"))
	assert.Equal(t, "garbage", monthLabel("garbage"))
}
