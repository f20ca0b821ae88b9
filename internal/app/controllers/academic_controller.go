package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/services"
	"github.com/rahulj/sdms/internal/middleware"
)

// AcademicController handles classes, subjects, departments, allocations and
// the timetable.
type AcademicController struct {
	academicService *services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService *services.AcademicService) *AcademicController {
	return &AcademicController{
		academicService: academicService,
	}
}

// CreateClass handles class creation
func (c *AcademicController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "class")
		return
	}
	class, err := c.academicService.CreateClass(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, class)
}

// GetClass retrieves a class by ID
func (c *AcademicController) GetClass(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	class, err := c.academicService.GetClass(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, class)
}

// ListClasses retrieves all classes
func (c *AcademicController) ListClasses(ctx *gin.Context) {
	classes, err := c.academicService.ListClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, classes)
}

// DeleteClass removes a class without associated data
func (c *AcademicController) DeleteClass(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.academicService.DeleteClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Class deleted"})
}

// CreateSubject handles subject creation
func (c *AcademicController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "subject")
		return
	}
	subject, err := c.academicService.CreateSubject(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, subject)
}

// ListSubjects retrieves all subjects
func (c *AcademicController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.academicService.ListSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, subjects)
}

// DeleteSubject removes a subject without associated data
func (c *AcademicController) DeleteSubject(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.academicService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Subject deleted"})
}

// CreateDepartment handles department creation
func (c *AcademicController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "department")
		return
	}
	department, err := c.academicService.CreateDepartment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, department)
}

// ListDepartments retrieves all departments
func (c *AcademicController) ListDepartments(ctx *gin.Context) {
	departments, err := c.academicService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, departments)
}

// CreateAllocation assigns a teacher to a subject in a class
func (c *AcademicController) CreateAllocation(ctx *gin.Context) {
	var req dto.CreateAllocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "allocation")
		return
	}
	allocation, err := c.academicService.CreateAllocation(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, allocation)
}

// ListAllocations retrieves all allocations
func (c *AcademicController) ListAllocations(ctx *gin.Context) {
	allocations, err := c.academicService.ListAllocations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, allocations)
}

// DeleteAllocation removes one allocation
func (c *AcademicController) DeleteAllocation(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.academicService.DeleteAllocation(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Allocation deleted"})
}

// CreateTimetableEntry records one schedule slot
func (c *AcademicController) CreateTimetableEntry(ctx *gin.Context) {
	var req dto.CreateTimetableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "timetable")
		return
	}
	entry, err := c.academicService.CreateTimetableEntry(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, entry)
}

// GetTimetable retrieves the schedule of one class
func (c *AcademicController) GetTimetable(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	entries, err := c.academicService.GetTimetable(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, entries)
}
