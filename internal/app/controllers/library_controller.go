package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/services"
	"github.com/rahulj/sdms/internal/middleware"
)

// LibraryController handles the catalog and loan endpoints.
type LibraryController struct {
	libraryService *services.LibraryService
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(libraryService *services.LibraryService) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

// AddBook adds a catalog entry
func (c *LibraryController) AddBook(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "book")
		return
	}
	book, err := c.libraryService.AddBook(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, book)
}

// ListBooks retrieves the catalog
func (c *LibraryController) ListBooks(ctx *gin.Context) {
	books, err := c.libraryService.ListBooks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, books)
}

// IssueBook lends a book to a student
func (c *LibraryController) IssueBook(ctx *gin.Context) {
	var req dto.IssueBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "issue")
		return
	}
	issue, err := c.libraryService.IssueBook(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, issue)
}

// ListIssues retrieves loans, optionally for the student given in the
// studentUid query parameter
func (c *LibraryController) ListIssues(ctx *gin.Context) {
	issues, err := c.libraryService.ListIssues(ctx, ctx.Query("studentUid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, issues)
}

// ReturnBook closes a loan
func (c *LibraryController) ReturnBook(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	issue, err := c.libraryService.ReturnBook(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, issue)
}
