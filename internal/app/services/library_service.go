package services

import (
	"context"
	"time"

	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/app/repositories/roles"
	"github.com/rahulj/sdms/internal/config"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/helpers"
	"github.com/rahulj/sdms/internal/pkg/logger"
)

// LibraryService manages the catalog and loans. A loan's fine while the book
// is out is never stored; it is derived from the due date on every read and
// only persisted when the book is returned.
type LibraryService struct {
	cfg           *config.Config
	libraryRepo   *repositories.LibraryRepository
	studentRepo   *roles.StudentRepository
	librarianRepo *roles.LibrarianRepository
	now           func() time.Time
}

// NewLibraryService creates a new library service instance
func NewLibraryService(
	cfg *config.Config,
	libraryRepo *repositories.LibraryRepository,
	studentRepo *roles.StudentRepository,
	librarianRepo *roles.LibrarianRepository,
) *LibraryService {
	return &LibraryService{
		cfg:           cfg,
		libraryRepo:   libraryRepo,
		studentRepo:   studentRepo,
		librarianRepo: librarianRepo,
		now:           time.Now,
	}
}

// AddBook adds a catalog entry.
func (s *LibraryService) AddBook(ctx context.Context, req *dto.CreateBookRequest) (*models.LibraryBook, error) {
	book := &models.LibraryBook{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Category:    req.Category,
		Publisher:   req.Publisher,
		PublishYear: req.PublishYear,
		TotalCopies: req.TotalCopies,
		ShelfNumber: req.ShelfNumber,
	}
	if err := s.libraryRepo.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// ListBooks retrieves the catalog.
func (s *LibraryService) ListBooks(ctx context.Context) ([]*models.LibraryBook, error) {
	return s.libraryRepo.ListBooks(ctx)
}

// IssueBook lends a book to a student. A missing due date defaults to the
// configured loan period from today.
func (s *LibraryService) IssueBook(ctx context.Context, req *dto.IssueBookRequest) (*models.BookIssue, error) {
	if _, err := s.libraryRepo.GetBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetByUID(ctx, req.StudentUID)
	if err != nil {
		return nil, err
	}

	var issuedBy *int64
	if req.IssuedBy != "" {
		librarian, err := s.librarianRepo.GetByUID(ctx, req.IssuedBy)
		if err != nil {
			return nil, err
		}
		issuedBy = &librarian.ID
	}

	issueDate := s.now()
	dueDate := helpers.ParseDate(req.DueDate)
	if dueDate == nil {
		d := issueDate.AddDate(0, 0, s.cfg.Library.LoanDays)
		dueDate = &d
	}

	issue := &models.BookIssue{
		BookID:    req.BookID,
		StudentID: student.ID,
		IssueDate: &issueDate,
		DueDate:   dueDate,
		Status:    models.IssueIssued,
		IssuedBy:  issuedBy,
	}
	if err := s.libraryRepo.CreateIssue(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// ListIssues retrieves loans, optionally for one student, with current fines
// filled in for loans that are still out.
func (s *LibraryService) ListIssues(ctx context.Context, studentUID string) ([]*models.BookIssue, error) {
	var studentID *int64
	if studentUID != "" {
		student, err := s.studentRepo.GetByUID(ctx, studentUID)
		if err != nil {
			return nil, err
		}
		studentID = &student.ID
	}

	issues, err := s.libraryRepo.ListIssues(ctx, studentID)
	if err != nil {
		return nil, err
	}
	today := s.now()
	for _, issue := range issues {
		// Loans still out accrue their fine at read time; the Overdue flag
		// set by the sweep only changes the status, never the arithmetic.
		if issue.Status != models.IssueReturned {
			fine := fineFor(issue.DueDate, today, s.cfg.Library.FinePerDay)
			issue.FineAmount = &fine
		}
	}
	return issues, nil
}

// ReturnBook closes a loan and persists the final fine.
func (s *LibraryService) ReturnBook(ctx context.Context, issueID int64) (*models.BookIssue, error) {
	issue, err := s.libraryRepo.GetIssueByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue.Status == models.IssueReturned {
		return nil, apperrors.NewConflictError("book is already returned")
	}

	returnDate := s.now()
	fine := fineFor(issue.DueDate, returnDate, s.cfg.Library.FinePerDay)
	if err := s.libraryRepo.UpdateReturn(ctx, issueID, returnDate, fine); err != nil {
		return nil, err
	}
	return s.libraryRepo.GetIssueByID(ctx, issueID)
}

// SweepOverdue flips past-due loans to Overdue. Run on the configured cron
// schedule.
func (s *LibraryService) SweepOverdue(ctx context.Context) {
	n, err := s.libraryRepo.MarkOverdue(ctx, s.now())
	if err != nil {
		logger.Error().Err(err).Msg("Overdue sweep failed")
		return
	}
	if n > 0 {
		logger.Info().Int64("count", n).Msg("Marked loans overdue")
	}
}

// fineFor computes the fine accrued on a loan: the per-day rate times whole
// days past the due date, never negative. A loan without a due date accrues
// nothing.
func fineFor(dueDate *time.Time, asOf time.Time, perDay float64) float64 {
	if dueDate == nil {
		return 0
	}
	days := int(asOf.Sub(*dueDate).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return float64(days) * perDay
}
