package models

import "time"

// LibraryBook defines a book based on the 'library_books' table
type LibraryBook struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Author      *string   `json:"author,omitempty" db:"author"`
	ISBN        *string   `json:"isbn,omitempty" db:"isbn"`
	Category    *string   `json:"category,omitempty" db:"category"`
	Publisher   *string   `json:"publisher,omitempty" db:"publisher"`
	PublishYear *int      `json:"publishYear,omitempty" db:"publish_year"`
	TotalCopies *int      `json:"totalCopies,omitempty" db:"total_copies"`
	ShelfNumber *string   `json:"shelfNumber,omitempty" db:"shelf_number"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// BookIssue is one loan of one book to one student. While the loan is in the
// Issued state any fine is derived at read time from the due date; a durable
// fine amount is only written when the book comes back.
type BookIssue struct {
	ID         int64       `json:"id" db:"id"`
	BookID     int64       `json:"bookId" db:"book_id"`
	StudentID  int64       `json:"studentId" db:"student_id"`
	IssueDate  *time.Time  `json:"issueDate,omitempty" db:"issue_date"`
	DueDate    *time.Time  `json:"dueDate,omitempty" db:"due_date"`
	ReturnDate *time.Time  `json:"returnDate,omitempty" db:"return_date"`
	FineAmount *float64    `json:"fineAmount,omitempty" db:"fine_amount"`
	Status     IssueStatus `json:"status" db:"status"`
	IssuedBy   *int64      `json:"issuedBy,omitempty" db:"issued_by"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`

	StudentName string `json:"studentName,omitempty"`
	BookTitle   string `json:"bookTitle,omitempty"`
}
