package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/app/repositories/roles"
	"github.com/rahulj/sdms/internal/config"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/helpers"
	"github.com/rahulj/sdms/internal/pkg/logger"
)

// LedgerService is the write side of the activity ledger: batch attendance
// and mark recording keyed by student display id, plus fee rows. Attendance
// and mark writes are upserts, so re-recording the same slot amends the row
// in place instead of duplicating it.
type LedgerService struct {
	cfg            *config.Config
	studentRepo    *roles.StudentRepository
	facultyRepo    *roles.FacultyRepository
	subjectRepo    *repositories.SubjectRepository
	attendanceRepo *repositories.AttendanceRepository
	markRepo       *repositories.MarkRepository
	feeRepo        *repositories.FeeRepository
}

// NewLedgerService creates a new ledger service instance
func NewLedgerService(
	cfg *config.Config,
	studentRepo *roles.StudentRepository,
	facultyRepo *roles.FacultyRepository,
	subjectRepo *repositories.SubjectRepository,
	attendanceRepo *repositories.AttendanceRepository,
	markRepo *repositories.MarkRepository,
	feeRepo *repositories.FeeRepository,
) *LedgerService {
	return &LedgerService{
		cfg:            cfg,
		studentRepo:    studentRepo,
		facultyRepo:    facultyRepo,
		subjectRepo:    subjectRepo,
		attendanceRepo: attendanceRepo,
		markRepo:       markRepo,
		feeRepo:        feeRepo,
	}
}

// BatchOutcome summarizes a batch ledger write: how many rows landed and
// which student display ids were skipped because no profile matched.
type BatchOutcome struct {
	Recorded int      `json:"recorded"`
	Skipped  []string `json:"skipped,omitempty"`
}

// resolveSubject looks a subject up by name, creating it when the ledger is
// configured to auto-create unknown subjects.
func (s *LedgerService) resolveSubject(ctx context.Context, name string) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("subject name is required")
	}

	subject, err := s.subjectRepo.GetByName(ctx, name)
	if err == nil {
		return subject, nil
	}
	if !errors.Is(err, apperrors.ErrSubjectNotFound) {
		return nil, err
	}
	if !s.cfg.Ledger.AutoCreateSubjects {
		return nil, apperrors.ErrSubjectNotFound
	}

	subject = &models.Subject{Name: name}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	logger.Info().Str("subject", name).Msg("Auto-created subject for ledger write")
	return subject, nil
}

// RecordAttendance upserts one attendance row per student in the batch. The
// student's class is captured at write time and never re-derived, so a later
// class change does not rewrite history. Unknown student ids are skipped and
// reported, not fatal.
func (s *LedgerService) RecordAttendance(ctx context.Context, req *dto.RecordAttendanceRequest) (*BatchOutcome, error) {
	date := helpers.ParseDate(req.Date)
	if date == nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}

	subject, err := s.resolveSubject(ctx, req.Subject)
	if err != nil {
		return nil, err
	}

	var recordedBy *int64
	if req.Recorder != "" {
		faculty, err := s.facultyRepo.GetByUID(ctx, req.Recorder)
		if err != nil {
			if !errors.Is(err, apperrors.ErrFacultyNotFound) {
				return nil, err
			}
			logger.Warn().Str("recorder", req.Recorder).Msg("Unknown recorder on attendance batch")
		} else {
			recordedBy = &faculty.ID
		}
	}

	outcome := &BatchOutcome{}
	for _, uid := range sortedKeys(req.StatusMap) {
		status := models.AttendanceStatus(req.StatusMap[uid])
		if !models.ValidAttendanceStatus(status) {
			return nil, apperrors.NewValidationError("unknown attendance status: " + string(status))
		}

		student, err := s.studentRepo.GetByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				outcome.Skipped = append(outcome.Skipped, uid)
				continue
			}
			return nil, err
		}

		row := &models.Attendance{
			StudentID:  student.ID,
			ClassID:    student.ClassID,
			SubjectID:  &subject.ID,
			Date:       *date,
			Status:     status,
			RecordedBy: recordedBy,
		}
		if err := s.attendanceRepo.Upsert(ctx, row); err != nil {
			return nil, err
		}
		outcome.Recorded++
	}
	return outcome, nil
}

// coerceMark turns a raw mark value into a number. The ledger accepts text
// here because callers batch marks as strings; anything unparseable lands as
// zero with a warning rather than failing the batch.
func coerceMark(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		logger.Warn().Str("raw", raw).Msg("Unparseable mark value, recording zero")
		return 0
	}
	return v
}

// RecordMarks upserts one mark row per student for one (subject, exam type)
// slot. Same skip semantics as attendance.
func (s *LedgerService) RecordMarks(ctx context.Context, req *dto.RecordMarksRequest) (*BatchOutcome, error) {
	examType := models.ExamType(req.ExamType)
	if !models.ValidExamType(examType) {
		return nil, apperrors.NewValidationError("unknown exam type: " + req.ExamType)
	}

	subject, err := s.resolveSubject(ctx, req.Subject)
	if err != nil {
		return nil, err
	}

	maxMarks := s.cfg.Ledger.DefaultMaxMarks
	if req.MaxMarks != nil {
		if *req.MaxMarks <= 0 {
			return nil, apperrors.NewValidationError("max marks must be positive")
		}
		maxMarks = *req.MaxMarks
	}
	examDate := helpers.ParseDate(req.ExamDate)

	outcome := &BatchOutcome{}
	for _, uid := range sortedKeys(req.MarksMap) {
		student, err := s.studentRepo.GetByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				outcome.Skipped = append(outcome.Skipped, uid)
				continue
			}
			return nil, err
		}

		row := &models.Mark{
			StudentID:     student.ID,
			SubjectID:     subject.ID,
			ClassID:       student.ClassID,
			ExamType:      examType,
			MarksObtained: coerceMark(req.MarksMap[uid]),
			MaxMarks:      maxMarks,
			ExamDate:      examDate,
		}
		if err := s.markRepo.Upsert(ctx, row); err != nil {
			return nil, err
		}
		outcome.Recorded++
	}
	return outcome, nil
}

// ListAttendance retrieves a student's attendance history, optionally
// filtered to one subject, newest first.
func (s *LedgerService) ListAttendance(ctx context.Context, studentUID string, subjectID *int64) ([]*models.Attendance, error) {
	student, err := s.studentRepo.GetByUID(ctx, studentUID)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByStudent(ctx, student.ID, subjectID)
}

// ListMarks retrieves a student's mark rows with subject names.
func (s *LedgerService) ListMarks(ctx context.Context, studentUID string) ([]*models.Mark, error) {
	student, err := s.studentRepo.GetByUID(ctx, studentUID)
	if err != nil {
		return nil, err
	}
	return s.markRepo.ListByStudent(ctx, student.ID)
}

// CreateFee opens a pending fee row against a student.
func (s *LedgerService) CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error) {
	student, err := s.studentRepo.GetByUID(ctx, req.StudentUID)
	if err != nil {
		return nil, err
	}

	fee := &models.Fee{
		StudentID: student.ID,
		FeeType:   models.FeeType(req.FeeType),
		Amount:    req.Amount,
		DueDate:   helpers.ParseDate(req.DueDate),
		Status:    models.FeePending,
	}
	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// ListFees retrieves all fee rows of one student.
func (s *LedgerService) ListFees(ctx context.Context, studentUID string) ([]*models.Fee, error) {
	student, err := s.studentRepo.GetByUID(ctx, studentUID)
	if err != nil {
		return nil, err
	}
	return s.feeRepo.ListByStudent(ctx, student.ID)
}

// PayFee settles a fee row. When the caller supplies no transaction id a
// fresh one is generated.
func (s *LedgerService) PayFee(ctx context.Context, feeID int64, req *dto.PayFeeRequest) (*models.Fee, error) {
	fee, err := s.feeRepo.GetByID(ctx, feeID)
	if err != nil {
		return nil, err
	}
	if fee.Status == models.FeePaid {
		return nil, apperrors.NewConflictError("fee is already paid")
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	if err := s.feeRepo.MarkPaid(ctx, feeID, models.PaymentMethod(req.PaymentMethod), transactionID); err != nil {
		return nil, err
	}
	return s.feeRepo.GetByID(ctx, feeID)
}

// sortedKeys gives batch writes a stable order regardless of map iteration.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
