package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/services"
	"github.com/rahulj/sdms/internal/middleware"
)

// ReportingController exposes the per-role dashboard summaries.
type ReportingController struct {
	reportingService *services.ReportingService
}

// NewReportingController creates a new ReportingController
func NewReportingController(reportingService *services.ReportingService) *ReportingController {
	return &ReportingController{
		reportingService: reportingService,
	}
}

// StudentStats returns one student's summary
func (c *ReportingController) StudentStats(ctx *gin.Context) {
	stats, err := c.reportingService.StudentStats(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, stats)
}

// FacultyStats returns one teacher's summary
func (c *ReportingController) FacultyStats(ctx *gin.Context) {
	stats, err := c.reportingService.FacultyStats(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, stats)
}

// AdminStats returns the school-wide summary
func (c *ReportingController) AdminStats(ctx *gin.Context) {
	stats, err := c.reportingService.AdminStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, stats)
}

// LibrarianStats returns the library summary
func (c *ReportingController) LibrarianStats(ctx *gin.Context) {
	stats, err := c.reportingService.LibrarianStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, stats)
}
