package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
)

// LibraryRepository handles database operations for books and loans
type LibraryRepository struct {
	db *pgxpool.Pool
}

// NewLibraryRepository creates a new library repository
func NewLibraryRepository(db *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{
		db: db,
	}
}

// CreateBook creates a new catalog entry
func (r *LibraryRepository) CreateBook(ctx context.Context, book *models.LibraryBook) error {
	query := `
		INSERT INTO library_books (title, author, isbn, category, publisher, publish_year, total_copies, shelf_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		book.Title, book.Author, book.ISBN, book.Category, book.Publisher,
		book.PublishYear, book.TotalCopies, book.ShelfNumber).
		Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating book: %w", err)
	}

	return nil
}

// GetBookByID retrieves a catalog entry by ID
func (r *LibraryRepository) GetBookByID(ctx context.Context, id int64) (*models.LibraryBook, error) {
	var book models.LibraryBook
	err := r.db.QueryRow(ctx, `
		SELECT id, title, author, isbn, category, publisher, publish_year, total_copies, shelf_number, created_at
		FROM library_books WHERE id = $1`, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.ISBN, &book.Category,
		&book.Publisher, &book.PublishYear, &book.TotalCopies, &book.ShelfNumber, &book.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("error retrieving book: %w", err)
	}

	return &book, nil
}

// ListBooks retrieves the whole catalog ordered by title
func (r *LibraryRepository) ListBooks(ctx context.Context) ([]*models.LibraryBook, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, author, isbn, category, publisher, publish_year, total_copies, shelf_number, created_at
		FROM library_books ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*models.LibraryBook
	for rows.Next() {
		var book models.LibraryBook
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Author, &book.ISBN, &book.Category,
			&book.Publisher, &book.PublishYear, &book.TotalCopies, &book.ShelfNumber, &book.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	return books, rows.Err()
}

// CreateIssue records a new loan
func (r *LibraryRepository) CreateIssue(ctx context.Context, issue *models.BookIssue) error {
	query := `
		INSERT INTO book_issues (book_id, student_id, issue_date, due_date, status, issued_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		issue.BookID, issue.StudentID, issue.IssueDate, issue.DueDate,
		issue.Status, issue.IssuedBy).
		Scan(&issue.ID, &issue.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating book issue: %w", err)
	}

	return nil
}

const issueSelect = `
	SELECT i.id, i.book_id, i.student_id, i.issue_date, i.due_date, i.return_date,
	       i.fine_amount, i.status, i.issued_by, i.created_at,
	       s.name, b.title
	FROM book_issues i
	JOIN students s ON s.id = i.student_id
	JOIN library_books b ON b.id = i.book_id
`

func scanIssue(row pgx.Row) (*models.BookIssue, error) {
	var issue models.BookIssue
	err := row.Scan(
		&issue.ID, &issue.BookID, &issue.StudentID, &issue.IssueDate, &issue.DueDate,
		&issue.ReturnDate, &issue.FineAmount, &issue.Status, &issue.IssuedBy, &issue.CreatedAt,
		&issue.StudentName, &issue.BookTitle)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetIssueByID retrieves one loan with its student and book names
func (r *LibraryRepository) GetIssueByID(ctx context.Context, id int64) (*models.BookIssue, error) {
	issue, err := scanIssue(r.db.QueryRow(ctx, issueSelect+" WHERE i.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("error retrieving book issue: %w", err)
	}
	return issue, nil
}

// ListIssues retrieves loans newest first, optionally limited to one student
func (r *LibraryRepository) ListIssues(ctx context.Context, studentID *int64) ([]*models.BookIssue, error) {
	query := issueSelect
	args := []interface{}{}
	if studentID != nil {
		query += " WHERE i.student_id = $1"
		args = append(args, *studentID)
	}
	query += " ORDER BY i.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []*models.BookIssue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

// UpdateReturn closes a loan, persisting the return date and the final fine
func (r *LibraryRepository) UpdateReturn(ctx context.Context, id int64, returnDate time.Time, fine float64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE book_issues
		SET status = $2, return_date = $3, fine_amount = $4
		WHERE id = $1`,
		id, models.IssueReturned, returnDate, fine)
	if err != nil {
		return fmt.Errorf("error updating book return: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrIssueNotFound
	}
	return nil
}

// MarkOverdue flips Issued loans whose due date has passed to Overdue.
// Returns the number of loans flipped.
func (r *LibraryRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE book_issues
		SET status = $2
		WHERE status = $1 AND due_date IS NOT NULL AND due_date < $3`,
		models.IssueIssued, models.IssueOverdue, asOf)
	if err != nil {
		return 0, fmt.Errorf("error marking overdue loans: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// CountIssued counts loans currently out (Issued or Overdue)
func (r *LibraryRepository) CountIssued(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM book_issues WHERE status != $1`,
		models.IssueReturned).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountBooks counts catalog entries
func (r *LibraryRepository) CountBooks(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM library_books`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
