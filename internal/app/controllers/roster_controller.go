package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/services"
	"github.com/rahulj/sdms/internal/middleware"
)

// RosterController handles the role-entity profile CRUD. Profiles are
// addressed by their display id, never the row id.
type RosterController struct {
	rosterService *services.RosterService
}

// NewRosterController creates a new RosterController
func NewRosterController(rosterService *services.RosterService) *RosterController {
	return &RosterController{
		rosterService: rosterService,
	}
}

// CreateAdmin handles admin profile creation
func (c *RosterController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "admin")
		return
	}
	admin, err := c.rosterService.CreateAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, admin)
}

// GetAdmin retrieves an admin profile by display id
func (c *RosterController) GetAdmin(ctx *gin.Context) {
	admin, err := c.rosterService.GetAdmin(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, admin)
}

// ListAdmins retrieves all admin profiles
func (c *RosterController) ListAdmins(ctx *gin.Context) {
	admins, err := c.rosterService.ListAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, admins)
}

// UpdateAdmin applies a partial admin profile update
func (c *RosterController) UpdateAdmin(ctx *gin.Context) {
	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "admin")
		return
	}
	admin, err := c.rosterService.UpdateAdmin(ctx, ctx.Param("uid"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, admin)
}

// DeleteAdmin removes an admin profile
func (c *RosterController) DeleteAdmin(ctx *gin.Context) {
	if err := c.rosterService.DeleteAdmin(ctx, ctx.Param("uid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Admin deleted"})
}

// CreateFaculty handles faculty profile creation
func (c *RosterController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "faculty")
		return
	}
	faculty, err := c.rosterService.CreateFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, faculty)
}

// GetFaculty retrieves a faculty profile by display id
func (c *RosterController) GetFaculty(ctx *gin.Context) {
	faculty, err := c.rosterService.GetFaculty(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, faculty)
}

// ListFaculty retrieves all faculty profiles
func (c *RosterController) ListFaculty(ctx *gin.Context) {
	faculty, err := c.rosterService.ListFaculty(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, faculty)
}

// UpdateFaculty applies a partial faculty profile update
func (c *RosterController) UpdateFaculty(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "faculty")
		return
	}
	faculty, err := c.rosterService.UpdateFaculty(ctx, ctx.Param("uid"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, faculty)
}

// DeleteFaculty removes a faculty profile
func (c *RosterController) DeleteFaculty(ctx *gin.Context) {
	if err := c.rosterService.DeleteFaculty(ctx, ctx.Param("uid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Faculty member deleted"})
}

// CreateStudent handles student profile creation
func (c *RosterController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "student")
		return
	}
	student, err := c.rosterService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, student)
}

// GetStudent retrieves a student profile by display id
func (c *RosterController) GetStudent(ctx *gin.Context) {
	student, err := c.rosterService.GetStudent(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, student)
}

// ListStudents retrieves all student profiles
func (c *RosterController) ListStudents(ctx *gin.Context) {
	students, err := c.rosterService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, students)
}

// UpdateStudent applies a partial student profile update
func (c *RosterController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "student")
		return
	}
	student, err := c.rosterService.UpdateStudent(ctx, ctx.Param("uid"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, student)
}

// DeleteStudent removes a student profile
func (c *RosterController) DeleteStudent(ctx *gin.Context) {
	if err := c.rosterService.DeleteStudent(ctx, ctx.Param("uid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Student deleted"})
}

// CreateLibrarian handles librarian profile creation
func (c *RosterController) CreateLibrarian(ctx *gin.Context) {
	var req dto.CreateLibrarianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "librarian")
		return
	}
	librarian, err := c.rosterService.CreateLibrarian(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, librarian)
}

// GetLibrarian retrieves a librarian profile by display id
func (c *RosterController) GetLibrarian(ctx *gin.Context) {
	librarian, err := c.rosterService.GetLibrarian(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, librarian)
}

// ListLibrarians retrieves all librarian profiles
func (c *RosterController) ListLibrarians(ctx *gin.Context) {
	librarians, err := c.rosterService.ListLibrarians(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, librarians)
}

// UpdateLibrarian applies a partial librarian profile update
func (c *RosterController) UpdateLibrarian(ctx *gin.Context) {
	var req dto.UpdateLibrarianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "librarian")
		return
	}
	librarian, err := c.rosterService.UpdateLibrarian(ctx, ctx.Param("uid"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, librarian)
}

// DeleteLibrarian removes a librarian profile
func (c *RosterController) DeleteLibrarian(ctx *gin.Context) {
	if err := c.rosterService.DeleteLibrarian(ctx, ctx.Param("uid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Librarian deleted"})
}
