package services

import (
	"context"
	"math"
	"time"

	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/app/repositories/roles"
	"github.com/rahulj/sdms/internal/config"
)

// recentStripLen is how many of the newest attendance rows the student
// summary shows, returned oldest first.
const recentStripLen = 7

// ReportingService is the read side of the engine: per-role dashboard
// summaries computed from ledger and roster state on every call. Reports are
// all-or-nothing; any failed read aborts the whole summary.
type ReportingService struct {
	cfg            *config.Config
	studentRepo    *roles.StudentRepository
	facultyRepo    *roles.FacultyRepository
	attendanceRepo *repositories.AttendanceRepository
	markRepo       *repositories.MarkRepository
	allocationRepo *repositories.AllocationRepository
	feeRepo        *repositories.FeeRepository
	libraryRepo    *repositories.LibraryRepository
	now            func() time.Time
}

// NewReportingService creates a new reporting service instance
func NewReportingService(
	cfg *config.Config,
	studentRepo *roles.StudentRepository,
	facultyRepo *roles.FacultyRepository,
	attendanceRepo *repositories.AttendanceRepository,
	markRepo *repositories.MarkRepository,
	allocationRepo *repositories.AllocationRepository,
	feeRepo *repositories.FeeRepository,
	libraryRepo *repositories.LibraryRepository,
) *ReportingService {
	return &ReportingService{
		cfg:            cfg,
		studentRepo:    studentRepo,
		facultyRepo:    facultyRepo,
		attendanceRepo: attendanceRepo,
		markRepo:       markRepo,
		allocationRepo: allocationRepo,
		feeRepo:        feeRepo,
		libraryRepo:    libraryRepo,
		now:            time.Now,
	}
}

// StudentStats summarizes one student: overall attendance percentage (Leave
// days count against it), average marks, exam count and the recent
// attendance strip.
func (s *ReportingService) StudentStats(ctx context.Context, studentUID string) (*dto.StudentStatsResponse, error) {
	student, err := s.studentRepo.GetByUID(ctx, studentUID)
	if err != nil {
		return nil, err
	}

	total, present, err := s.attendanceRepo.StatusCounts(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	examCount, avgMarks, err := s.markRepo.StudentAggregates(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.attendanceRepo.Recent(ctx, student.ID, recentStripLen)
	if err != nil {
		return nil, err
	}

	return &dto.StudentStatsResponse{
		AttendancePercentage: percentage(present, total),
		AverageMarks:         round1(avgMarks),
		TotalExams:           examCount,
		RecentAttendance:     recentStrip(recent),
	}, nil
}

// FacultyStats summarizes one teacher's allocations: how many, how many
// distinct students they reach, and the average marks per (class, subject)
// pair taught.
func (s *ReportingService) FacultyStats(ctx context.Context, facultyUID string) (*dto.FacultyStatsResponse, error) {
	faculty, err := s.facultyRepo.GetByUID(ctx, facultyUID)
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.GetByTeacher(ctx, faculty.ID)
	if err != nil {
		return nil, err
	}

	classIDs := make([]int64, 0, len(allocations))
	seen := make(map[int64]bool)
	for _, a := range allocations {
		if !seen[a.ClassID] {
			seen[a.ClassID] = true
			classIDs = append(classIDs, a.ClassID)
		}
	}

	var totalStudents int64
	if len(classIDs) > 0 {
		totalStudents, err = s.studentRepo.CountDistinctByClasses(ctx, classIDs)
		if err != nil {
			return nil, err
		}
	}

	performance := make([]dto.ClassPerformanceEntry, 0, len(allocations))
	for _, a := range dedupeClassSubject(allocations) {
		avg, err := s.markRepo.ClassSubjectAverage(ctx, a.ClassID, a.SubjectID)
		if err != nil {
			return nil, err
		}
		entry := dto.ClassPerformanceEntry{AverageMarks: round1(avg)}
		if a.Class != nil {
			entry.ClassName = a.Class.Name
		}
		if a.Subject != nil {
			entry.SubjectName = a.Subject.Name
		}
		performance = append(performance, entry)
	}

	return &dto.FacultyStatsResponse{
		ClassesCount:     len(allocations),
		TotalStudents:    totalStudents,
		ClassPerformance: performance,
	}, nil
}

// AdminStats is the school-wide summary. The global attendance rate is
// present over present-plus-absent: Leave days are neutral here, unlike the
// per-student percentage.
func (s *ReportingService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalFaculty, err := s.facultyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	present, absent, err := s.attendanceRepo.GlobalStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	byMonth, err := s.studentRepo.EnrollmentByMonth(ctx)
	if err != nil {
		return nil, err
	}
	pendingFees, err := s.feeRepo.PendingTotal(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalStudents:          totalStudents,
		TotalFaculty:           totalFaculty,
		AttendanceRate:         percentage(present, present+absent),
		AttendanceDistribution: []int64{present, absent},
		EnrollmentGrowth:       cumulativeGrowth(byMonth),
		PendingFees:            pendingFees,
	}, nil
}

// LibrarianStats is the library summary: catalog size, loans out, loans past
// due and the fines accrued on them.
func (s *ReportingService) LibrarianStats(ctx context.Context) (*dto.LibrarianStatsResponse, error) {
	totalBooks, err := s.libraryRepo.CountBooks(ctx)
	if err != nil {
		return nil, err
	}
	issues, err := s.libraryRepo.ListIssues(ctx, nil)
	if err != nil {
		return nil, err
	}

	today := s.now()
	stats := &dto.LibrarianStatsResponse{TotalBooks: totalBooks}
	for _, issue := range issues {
		switch issue.Status {
		case models.IssueIssued:
			stats.ActiveIssues++
		case models.IssueOverdue:
			stats.OverdueIssues++
		}
		stats.OutstandingFines += s.FineFor(issue, today)
	}
	return stats, nil
}

// FineFor is the single fine rule: a loan still out past its due date
// accrues the configured per-day rate for each whole day late, whether or
// not the nightly sweep has flagged it Overdue yet. Returned loans are
// settled; their fine was persisted at return time and stops growing.
func (s *ReportingService) FineFor(issue *models.BookIssue, asOf time.Time) float64 {
	if issue.Status == models.IssueReturned {
		return 0
	}
	return fineFor(issue.DueDate, asOf, s.cfg.Library.FinePerDay)
}

// round1 rounds to one decimal place, the precision every dashboard figure
// is reported at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percentage is round1(part/whole x 100), zero when there is nothing to
// measure.
func percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

// recentStrip converts newest-first attendance rows into the oldest-first
// strip the dashboard renders.
func recentStrip(rows []*models.Attendance) []dto.RecentAttendanceEntry {
	strip := make([]dto.RecentAttendanceEntry, len(rows))
	for i, row := range rows {
		strip[len(rows)-1-i] = dto.RecentAttendanceEntry{
			Date:    row.Date.Format("2006-01-02"),
			Status:  string(row.Status),
			Subject: row.SubjectName,
		}
	}
	return strip
}

// dedupeClassSubject keeps the first allocation per (class, subject) pair in
// insertion order; duplicate pairs would double-count a class average.
func dedupeClassSubject(allocations []*models.SubjectAllocation) []*models.SubjectAllocation {
	type pair struct{ class, subject int64 }
	seen := make(map[pair]bool)
	out := make([]*models.SubjectAllocation, 0, len(allocations))
	for _, a := range allocations {
		p := pair{a.ClassID, a.SubjectID}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, a)
	}
	return out
}

// cumulativeGrowth turns per-month admission counts, already in month order,
// into a running total labeled with short month names. Months with no
// admissions are simply absent.
func cumulativeGrowth(byMonth []roles.MonthCount) []dto.GrowthPoint {
	points := make([]dto.GrowthPoint, 0, len(byMonth))
	var running int64
	for _, mc := range byMonth {
		running += int64(mc.Count)
		points = append(points, dto.GrowthPoint{
			Month: monthLabel(mc.Month),
			Count: running,
		})
	}
	return points
}

// monthLabel turns an YYYY-MM key into its short month name. An unparseable
// key is passed through untouched.
func monthLabel(yyyymm string) string {
	t, err := time.Parse("2006-01", yyyymm)
	if err != nil {
		return yyyymm
	}
	return t.Format("Jan")
}
