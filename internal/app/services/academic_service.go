package services

import (
	"context"

	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/app/repositories/roles"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/helpers"
)

// AcademicService manages the association layer: classes, subjects, the
// teacher-subject-class allocations and the informational timetable.
type AcademicService struct {
	classRepo      *repositories.ClassRepository
	subjectRepo    *repositories.SubjectRepository
	deptRepo       *repositories.DepartmentRepository
	allocationRepo *repositories.AllocationRepository
	timetableRepo  *repositories.TimetableRepository
	facultyRepo    *roles.FacultyRepository
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(
	classRepo *repositories.ClassRepository,
	subjectRepo *repositories.SubjectRepository,
	deptRepo *repositories.DepartmentRepository,
	allocationRepo *repositories.AllocationRepository,
	timetableRepo *repositories.TimetableRepository,
	facultyRepo *roles.FacultyRepository,
) *AcademicService {
	return &AcademicService{
		classRepo:      classRepo,
		subjectRepo:    subjectRepo,
		deptRepo:       deptRepo,
		allocationRepo: allocationRepo,
		timetableRepo:  timetableRepo,
		facultyRepo:    facultyRepo,
	}
}

// CreateClass creates a class. A class teacher, when given, must exist.
func (s *AcademicService) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error) {
	if req.ClassTeacherID != nil {
		if _, err := s.facultyRepo.GetByID(ctx, *req.ClassTeacherID); err != nil {
			return nil, err
		}
	}

	class := &models.Class{
		Name:           req.Name,
		AcademicYear:   req.AcademicYear,
		ClassTeacherID: req.ClassTeacherID,
		RoomNumber:     req.RoomNumber,
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetClass retrieves a class by ID.
func (s *AcademicService) GetClass(ctx context.Context, id int64) (*models.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// ListClasses retrieves all classes.
func (s *AcademicService) ListClasses(ctx context.Context) ([]*models.Class, error) {
	return s.classRepo.GetAll(ctx)
}

// DeleteClass removes a class. A class that is still referenced by students,
// ledger rows, allocations or timetable slots is not deletable.
func (s *AcademicService) DeleteClass(ctx context.Context, id int64) error {
	ok, err := s.classRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrClassNotFound
	}
	referenced, err := s.classRepo.HasReferences(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperrors.ErrClassHasRelations
	}
	return s.classRepo.Delete(ctx, id)
}

// CreateSubject creates a subject. The code, when given, must be unique.
func (s *AcademicService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if req.DepartmentID != nil {
		ok, err := s.deptRepo.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrDepartmentNotFound
		}
	}

	subject := &models.Subject{
		Name:         req.Name,
		Code:         req.Code,
		DepartmentID: req.DepartmentID,
		Credits:      req.Credits,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// GetSubject retrieves a subject by ID.
func (s *AcademicService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// ListSubjects retrieves all subjects.
func (s *AcademicService) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

// DeleteSubject removes a subject unless ledger rows, allocations or
// timetable slots still reference it.
func (s *AcademicService) DeleteSubject(ctx context.Context, id int64) error {
	ok, err := s.subjectRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrSubjectNotFound
	}
	referenced, err := s.subjectRepo.HasReferences(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperrors.ErrSubjectHasRelations
	}
	return s.subjectRepo.Delete(ctx, id)
}

// CreateDepartment creates a department.
func (s *AcademicService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{
		Name:          req.Name,
		HeadFacultyID: req.HeadFacultyID,
		Building:      req.Building,
	}
	if err := s.deptRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// ListDepartments retrieves all departments.
func (s *AcademicService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.deptRepo.GetAll(ctx)
}

// CreateAllocation assigns a teacher to a subject in a class. All three ends
// must exist. Duplicate (class, subject) pairs are allowed; reporting takes
// the first row in insertion order.
func (s *AcademicService) CreateAllocation(ctx context.Context, req *dto.CreateAllocationRequest) (*models.SubjectAllocation, error) {
	if ok, err := s.classRepo.Exists(ctx, req.ClassID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	if ok, err := s.subjectRepo.Exists(ctx, req.SubjectID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	if _, err := s.facultyRepo.GetByID(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	allocation := &models.SubjectAllocation{
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		TeacherID: req.TeacherID,
	}
	if err := s.allocationRepo.Create(ctx, allocation); err != nil {
		return nil, err
	}
	return allocation, nil
}

// ListAllocations retrieves all allocations with class and subject names.
func (s *AcademicService) ListAllocations(ctx context.Context) ([]*models.SubjectAllocation, error) {
	return s.allocationRepo.GetAll(ctx)
}

// DeleteAllocation removes one allocation row.
func (s *AcademicService) DeleteAllocation(ctx context.Context, id int64) error {
	return s.allocationRepo.Delete(ctx, id)
}

// CreateTimetableEntry records one schedule slot. Slot times must parse as
// HH:MM with start before end; the period number, when given, is positive.
func (s *AcademicService) CreateTimetableEntry(ctx context.Context, req *dto.CreateTimetableRequest) (*models.Timetable, error) {
	if ok, err := s.classRepo.Exists(ctx, req.ClassID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	if ok, err := s.subjectRepo.Exists(ctx, req.SubjectID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	if req.PeriodNumber != nil && *req.PeriodNumber <= 0 {
		return nil, apperrors.NewValidationError("period number must be positive")
	}
	if err := validateSlotTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	entry := &models.Timetable{
		ClassID:      req.ClassID,
		SubjectID:    req.SubjectID,
		DayOfWeek:    req.DayOfWeek,
		PeriodNumber: req.PeriodNumber,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		RoomNumber:   req.RoomNumber,
	}
	if err := s.timetableRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetTimetable retrieves the schedule slots of one class.
func (s *AcademicService) GetTimetable(ctx context.Context, classID int64) ([]*models.Timetable, error) {
	ok, err := s.classRepo.Exists(ctx, classID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	return s.timetableRepo.GetByClass(ctx, classID)
}

func validateSlotTimes(start, end *string) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return apperrors.NewValidationError("start and end time must be given together")
	}
	startClock, ok := helpers.ParseClock(*start)
	if !ok {
		return apperrors.NewValidationError("start time must be HH:MM")
	}
	endClock, ok := helpers.ParseClock(*end)
	if !ok {
		return apperrors.NewValidationError("end time must be HH:MM")
	}
	if !startClock.Before(endClock) {
		return apperrors.NewValidationError("start time must be before end time")
	}
	return nil
}
