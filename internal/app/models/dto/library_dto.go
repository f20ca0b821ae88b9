package dto

// CreateBookRequest adds a book to the library catalog
type CreateBookRequest struct {
	Title       string  `json:"title" binding:"required"`
	Author      *string `json:"author"`
	ISBN        *string `json:"isbn"`
	Category    *string `json:"category"`
	Publisher   *string `json:"publisher"`
	PublishYear *int    `json:"publishYear"`
	TotalCopies *int    `json:"totalCopies"`
	ShelfNumber *string `json:"shelfNumber"`
}

// IssueBookRequest lends a book to a student. When dueDate is omitted the
// configured loan period is applied.
type IssueBookRequest struct {
	BookID     int64  `json:"bookId" binding:"required"`
	StudentUID string `json:"studentUid" binding:"required"`
	DueDate    string `json:"dueDate"`
	IssuedBy   string `json:"issuedBy"` // Librarian display id, optional
}
