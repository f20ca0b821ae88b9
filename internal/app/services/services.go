// Package services holds the business layer:
//   - IdentityService: the contact-address directory
//   - RosterService: role-entity profiles and their display ids
//   - AcademicService: classes, subjects, allocations, timetable
//   - LedgerService: attendance, marks and fee writes
//   - LibraryService: catalog and loans
//   - ReportingService: per-role dashboard summaries
package services

import (
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/config"
	"github.com/rahulj/sdms/internal/db"
)

// Services holds all the service instances
type Services struct {
	IdentityService  *IdentityService
	RosterService    *RosterService
	AcademicService  *AcademicService
	LedgerService    *LedgerService
	LibraryService   *LibraryService
	ReportingService *ReportingService
}

// NewServices initializes all services on top of the repositories
func NewServices(cfg *config.Config, database *db.PostgresDB, repos *repositories.Repositories) *Services {
	identity := NewIdentityService(repos.IdentityRepository)
	return &Services{
		IdentityService: identity,
		RosterService: NewRosterService(
			database,
			identity,
			repos.AdminRepository,
			repos.FacultyRepository,
			repos.StudentRepository,
			repos.LibrarianRepository,
			repos.DepartmentRepository,
			repos.ClassRepository,
		),
		AcademicService: NewAcademicService(
			repos.ClassRepository,
			repos.SubjectRepository,
			repos.DepartmentRepository,
			repos.AllocationRepository,
			repos.TimetableRepository,
			repos.FacultyRepository,
		),
		LedgerService: NewLedgerService(
			cfg,
			repos.StudentRepository,
			repos.FacultyRepository,
			repos.SubjectRepository,
			repos.AttendanceRepository,
			repos.MarkRepository,
			repos.FeeRepository,
		),
		LibraryService: NewLibraryService(
			cfg,
			repos.LibraryRepository,
			repos.StudentRepository,
			repos.LibrarianRepository,
		),
		ReportingService: NewReportingService(
			cfg,
			repos.StudentRepository,
			repos.FacultyRepository,
			repos.AttendanceRepository,
			repos.MarkRepository,
			repos.AllocationRepository,
			repos.FeeRepository,
			repos.LibraryRepository,
		),
	}
}
