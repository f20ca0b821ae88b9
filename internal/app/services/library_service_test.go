package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/config"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFineFor(t *testing.T) {
	due := date(2026, 8, 27)
	today := date(2026, 8, 30)

	tests := []struct {
		name    string
		dueDate *time.Time
		asOf    time.Time
		perDay  float64
		want    float64
	}{
		{"three days late", &due, today, 5, 15},
		{"due today", &due, due, 5, 0},
		{"not yet due", &due, date(2026, 8, 20), 5, 0},
		{"no due date", nil, today, 5, 0},
		{"different rate", &due, today, 2.5, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fineFor(tt.dueDate, tt.asOf, tt.perDay); got != tt.want {
				t.Errorf("fineFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReportingFineForStatusGate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Library.FinePerDay = 5
	svc := &ReportingService{cfg: cfg}

	due := date(2026, 8, 20)
	asOf := date(2026, 8, 30)

	issued := &models.BookIssue{Status: models.IssueIssued, DueDate: &due}
	assert.Equal(t, 50.0, svc.FineFor(issued, asOf))

	// The nightly sweep changes the status, not the arithmetic: a loan
	// flagged Overdue keeps accruing exactly as an Issued one does.
	overdue := &models.BookIssue{Status: models.IssueOverdue, DueDate: &due}
	assert.Equal(t, 50.0, svc.FineFor(overdue, asOf))

	// Returned loans are settled at return time and stop accruing.
	returned := &models.BookIssue{Status: models.IssueReturned, DueDate: &due}
	assert.Equal(t, 0.0, svc.FineFor(returned, asOf))
}
