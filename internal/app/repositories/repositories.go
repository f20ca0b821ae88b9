package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulj/sdms/internal/app/repositories/roles"
)

// Repositories holds all the repository instances
type Repositories struct {
	IdentityRepository   *IdentityRepository
	AdminRepository      *roles.AdminRepository
	FacultyRepository    *roles.FacultyRepository
	StudentRepository    *roles.StudentRepository
	LibrarianRepository  *roles.LibrarianRepository
	DepartmentRepository *DepartmentRepository
	ClassRepository      *ClassRepository
	SubjectRepository    *SubjectRepository
	AllocationRepository *AllocationRepository
	TimetableRepository  *TimetableRepository
	AttendanceRepository *AttendanceRepository
	MarkRepository       *MarkRepository
	FeeRepository        *FeeRepository
	LibraryRepository    *LibraryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		IdentityRepository:   NewIdentityRepository(db),
		AdminRepository:      roles.NewAdminRepository(db),
		FacultyRepository:    roles.NewFacultyRepository(db),
		StudentRepository:    roles.NewStudentRepository(db),
		LibrarianRepository:  roles.NewLibrarianRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		ClassRepository:      NewClassRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		AllocationRepository: NewAllocationRepository(db),
		TimetableRepository:  NewTimetableRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		MarkRepository:       NewMarkRepository(db),
		FeeRepository:        NewFeeRepository(db),
		LibraryRepository:    NewLibraryRepository(db),
	}
}
