package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/app/repositories/roles"
	"github.com/rahulj/sdms/internal/db"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/helpers"
	"github.com/rahulj/sdms/internal/pkg/idgen"
	"github.com/rahulj/sdms/internal/pkg/logger"
)

// allocRetries bounds how often a create is retried when two writers race
// for the same display id. The unique constraint on the uid column detects
// the collision; the retry re-reads the uid list and picks the next number.
const allocRetries = 3

// RosterService manages the role-entity profiles (admins, faculty, students,
// librarians) together with their identity directory entries. Every profile
// write and its directory write run in one transaction, so a profile with a
// contact address always has a matching directory row and a deleted profile
// never leaves a stale one.
type RosterService struct {
	database      *db.PostgresDB
	identity      *IdentityService
	adminRepo     *roles.AdminRepository
	facultyRepo   *roles.FacultyRepository
	studentRepo   *roles.StudentRepository
	librarianRepo *roles.LibrarianRepository
	deptRepo      *repositories.DepartmentRepository
	classRepo     *repositories.ClassRepository
}

// NewRosterService creates a new roster service instance
func NewRosterService(
	database *db.PostgresDB,
	identity *IdentityService,
	adminRepo *roles.AdminRepository,
	facultyRepo *roles.FacultyRepository,
	studentRepo *roles.StudentRepository,
	librarianRepo *roles.LibrarianRepository,
	deptRepo *repositories.DepartmentRepository,
	classRepo *repositories.ClassRepository,
) *RosterService {
	return &RosterService{
		database:      database,
		identity:      identity,
		adminRepo:     adminRepo,
		facultyRepo:   facultyRepo,
		studentRepo:   studentRepo,
		librarianRepo: librarianRepo,
		deptRepo:      deptRepo,
		classRepo:     classRepo,
	}
}

// withAllocatedUID runs create with freshly allocated display ids until it
// succeeds or the retry budget is spent. listUIDs is re-invoked on every
// attempt so a racing writer's id is visible to the next allocation.
func withAllocatedUID(ctx context.Context, prefix string,
	listUIDs func(context.Context) ([]string, error),
	create func(uid string) error) (string, error) {

	var lastErr error
	for attempt := 0; attempt < allocRetries; attempt++ {
		existing, err := listUIDs(ctx)
		if err != nil {
			return "", err
		}
		uid := idgen.Next(prefix, existing)
		err = create(uid)
		if err == nil {
			return uid, nil
		}
		if !errors.Is(err, apperrors.ErrDisplayIDExists) {
			return "", err
		}
		logger.Warn().Str("uid", uid).Msg("Display id taken by concurrent create, retrying")
		lastErr = err
	}
	return "", lastErr
}

// CreateAdmin creates an admin profile and links its email in the directory.
func (s *RosterService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	admin := &models.Admin{
		Name:     req.Name,
		Username: req.Username,
		Role:     models.RoleAdmin,
		DOB:      helpers.ParseDate(req.DOB),
		Email:    NormalizeAddress(req.Email),
	}

	_, err := withAllocatedUID(ctx, models.PrefixAdmin, s.adminRepo.ListUIDs, func(uid string) error {
		admin.AdminUID = uid
		return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if err := s.adminRepo.WithTx(tx).Create(ctx, admin); err != nil {
				return err
			}
			return s.identity.withTx(tx).Link(ctx, admin.Email, models.RoleAdmin, uid)
		})
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// GetAdmin retrieves an admin profile by display id.
func (s *RosterService) GetAdmin(ctx context.Context, uid string) (*models.Admin, error) {
	return s.adminRepo.GetByUID(ctx, uid)
}

// ListAdmins retrieves all admin profiles except the bootstrap super admin.
func (s *RosterService) ListAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.adminRepo.GetAll(ctx)
}

// DeleteAdmin removes an admin profile and its directory entry.
func (s *RosterService) DeleteAdmin(ctx context.Context, uid string) error {
	admin, err := s.adminRepo.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if admin.Role == models.RoleSuperAdmin {
		return apperrors.NewValidationError("the bootstrap super admin cannot be deleted")
	}
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.adminRepo.WithTx(tx).Delete(ctx, admin.ID); err != nil {
			return err
		}
		return s.identity.withTx(tx).Unlink(ctx, admin.Email)
	})
}

// UpdateAdmin applies a partial update to an admin profile. A changed email
// moves the directory entry to the new address.
func (s *RosterService) UpdateAdmin(ctx context.Context, uid string, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	oldEmail := admin.Email
	if req.Name != nil {
		admin.Name = *req.Name
	}
	if req.Username != nil {
		admin.Username = *req.Username
	}
	if req.Email != nil {
		admin.Email = NormalizeAddress(*req.Email)
	}

	if err := s.reassignOnUpdate(ctx, oldEmail, admin.Email, func(tx pgx.Tx) error {
		return s.adminRepo.WithTx(tx).Update(ctx, admin)
	}); err != nil {
		return nil, err
	}
	return admin, nil
}

// reassignOnUpdate runs a profile update inside a transaction, migrating the
// directory entry when the contact address changed. A profile whose old
// address was never in the directory is tolerated; its new address is simply
// linked the next time it resolves through a create.
func (s *RosterService) reassignOnUpdate(ctx context.Context, oldEmail, newEmail string, update func(tx pgx.Tx) error) error {
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := update(tx); err != nil {
			return err
		}
		if newEmail != oldEmail {
			if err := s.identity.withTx(tx).Reassign(ctx, oldEmail, newEmail); err != nil && !errors.Is(err, apperrors.ErrIdentityNotFound) {
				return err
			}
		}
		return nil
	})
}

// CreateFaculty creates a faculty profile and links its email.
func (s *RosterService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if req.DepartmentID != nil {
		ok, err := s.deptRepo.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrDepartmentNotFound
		}
	}

	faculty := &models.Faculty{
		Name:          req.Name,
		DateOfBirth:   helpers.ParseDate(req.DateOfBirth),
		Gender:        req.Gender,
		Email:         NormalizeAddress(req.Email),
		Phone:         req.Phone,
		Address:       req.Address,
		DepartmentID:  req.DepartmentID,
		JoiningDate:   helpers.ParseDate(req.JoiningDate),
		Qualification: req.Qualification,
	}

	_, err := withAllocatedUID(ctx, models.PrefixFaculty, s.facultyRepo.ListUIDs, func(uid string) error {
		faculty.FacultyUID = uid
		return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if err := s.facultyRepo.WithTx(tx).Create(ctx, faculty); err != nil {
				return err
			}
			return s.identity.withTx(tx).Link(ctx, faculty.Email, models.RoleFaculty, uid)
		})
	})
	if err != nil {
		return nil, err
	}
	return faculty, nil
}

// GetFaculty retrieves a faculty profile by display id.
func (s *RosterService) GetFaculty(ctx context.Context, uid string) (*models.Faculty, error) {
	return s.facultyRepo.GetByUID(ctx, uid)
}

// ListFaculty retrieves all faculty profiles.
func (s *RosterService) ListFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}

// UpdateFaculty applies a partial update to a faculty profile. A changed
// email moves the directory entry to the new address.
func (s *RosterService) UpdateFaculty(ctx context.Context, uid string, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	oldEmail := faculty.Email
	if req.Name != nil {
		faculty.Name = *req.Name
	}
	if req.Email != nil {
		faculty.Email = NormalizeAddress(*req.Email)
	}
	if req.Phone != nil {
		faculty.Phone = req.Phone
	}
	if req.Address != nil {
		faculty.Address = req.Address
	}
	if req.DepartmentID != nil {
		ok, err := s.deptRepo.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrDepartmentNotFound
		}
		faculty.DepartmentID = req.DepartmentID
	}
	if req.Qualification != nil {
		faculty.Qualification = req.Qualification
	}

	if err := s.reassignOnUpdate(ctx, oldEmail, faculty.Email, func(tx pgx.Tx) error {
		return s.facultyRepo.WithTx(tx).Update(ctx, faculty)
	}); err != nil {
		return nil, err
	}
	return faculty, nil
}

// DeleteFaculty removes a faculty profile and its directory entry.
func (s *RosterService) DeleteFaculty(ctx context.Context, uid string) error {
	faculty, err := s.facultyRepo.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.facultyRepo.WithTx(tx).Delete(ctx, faculty.ID); err != nil {
			return err
		}
		return s.identity.withTx(tx).Unlink(ctx, faculty.Email)
	})
}

// CreateStudent creates a student profile and links its email.
func (s *RosterService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if req.ClassID != nil {
		ok, err := s.classRepo.Exists(ctx, *req.ClassID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrClassNotFound
		}
	}

	student := &models.Student{
		Name:          req.Name,
		DateOfBirth:   helpers.ParseDate(req.DateOfBirth),
		Gender:        req.Gender,
		Email:         NormalizeAddress(req.Email),
		Phone:         req.Phone,
		Address:       req.Address,
		ClassID:       req.ClassID,
		AdmissionDate: helpers.ParseDate(req.AdmissionDate),
	}

	_, err := withAllocatedUID(ctx, models.PrefixStudent, s.studentRepo.ListUIDs, func(uid string) error {
		student.StudentUID = uid
		return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if err := s.studentRepo.WithTx(tx).Create(ctx, student); err != nil {
				return err
			}
			return s.identity.withTx(tx).Link(ctx, student.Email, models.RoleStudent, uid)
		})
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudent retrieves a student profile by display id.
func (s *RosterService) GetStudent(ctx context.Context, uid string) (*models.Student, error) {
	return s.studentRepo.GetByUID(ctx, uid)
}

// ListStudents retrieves all student profiles.
func (s *RosterService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// UpdateStudent applies a partial update to a student profile.
func (s *RosterService) UpdateStudent(ctx context.Context, uid string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	oldEmail := student.Email
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = NormalizeAddress(*req.Email)
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.ClassID != nil {
		ok, err := s.classRepo.Exists(ctx, *req.ClassID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrClassNotFound
		}
		student.ClassID = req.ClassID
	}

	if err := s.reassignOnUpdate(ctx, oldEmail, student.Email, func(tx pgx.Tx) error {
		return s.studentRepo.WithTx(tx).Update(ctx, student)
	}); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student profile and its directory entry.
func (s *RosterService) DeleteStudent(ctx context.Context, uid string) error {
	student, err := s.studentRepo.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.studentRepo.WithTx(tx).Delete(ctx, student.ID); err != nil {
			return err
		}
		return s.identity.withTx(tx).Unlink(ctx, student.Email)
	})
}

// CreateLibrarian creates a librarian profile and links its email.
func (s *RosterService) CreateLibrarian(ctx context.Context, req *dto.CreateLibrarianRequest) (*models.Librarian, error) {
	librarian := &models.Librarian{
		Name:        req.Name,
		DateOfBirth: helpers.ParseDate(req.DateOfBirth),
		Gender:      req.Gender,
		Email:       NormalizeAddress(req.Email),
		Phone:       req.Phone,
		Address:     req.Address,
		JoiningDate: helpers.ParseDate(req.JoiningDate),
	}

	_, err := withAllocatedUID(ctx, models.PrefixLibrarian, s.librarianRepo.ListUIDs, func(uid string) error {
		librarian.LibrarianUID = uid
		return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if err := s.librarianRepo.WithTx(tx).Create(ctx, librarian); err != nil {
				return err
			}
			return s.identity.withTx(tx).Link(ctx, librarian.Email, models.RoleLibrarian, uid)
		})
	})
	if err != nil {
		return nil, err
	}
	return librarian, nil
}

// GetLibrarian retrieves a librarian profile by display id.
func (s *RosterService) GetLibrarian(ctx context.Context, uid string) (*models.Librarian, error) {
	return s.librarianRepo.GetByUID(ctx, uid)
}

// ListLibrarians retrieves all librarian profiles.
func (s *RosterService) ListLibrarians(ctx context.Context) ([]*models.Librarian, error) {
	return s.librarianRepo.GetAll(ctx)
}

// DeleteLibrarian removes a librarian profile and its directory entry.
func (s *RosterService) DeleteLibrarian(ctx context.Context, uid string) error {
	librarian, err := s.librarianRepo.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.librarianRepo.WithTx(tx).Delete(ctx, librarian.ID); err != nil {
			return err
		}
		return s.identity.withTx(tx).Unlink(ctx, librarian.Email)
	})
}

// UpdateLibrarian applies a partial update to a librarian profile. A changed
// email moves the directory entry to the new address.
func (s *RosterService) UpdateLibrarian(ctx context.Context, uid string, req *dto.UpdateLibrarianRequest) (*models.Librarian, error) {
	librarian, err := s.librarianRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	oldEmail := librarian.Email
	if req.Name != nil {
		librarian.Name = *req.Name
	}
	if req.Email != nil {
		librarian.Email = NormalizeAddress(*req.Email)
	}
	if req.Phone != nil {
		librarian.Phone = req.Phone
	}
	if req.Address != nil {
		librarian.Address = req.Address
	}

	if err := s.reassignOnUpdate(ctx, oldEmail, librarian.Email, func(tx pgx.Tx) error {
		return s.librarianRepo.WithTx(tx).Update(ctx, librarian)
	}); err != nil {
		return nil, err
	}
	return librarian, nil
}
