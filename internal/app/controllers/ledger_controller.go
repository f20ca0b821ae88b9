package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/services"
	"github.com/rahulj/sdms/internal/middleware"
)

// LedgerController handles attendance, marks and fee writes plus the ledger
// read endpoints.
type LedgerController struct {
	ledgerService *services.LedgerService
}

// NewLedgerController creates a new LedgerController
func NewLedgerController(ledgerService *services.LedgerService) *LedgerController {
	return &LedgerController{
		ledgerService: ledgerService,
	}
}

// RecordAttendance upserts a batch of attendance rows
func (c *LedgerController) RecordAttendance(ctx *gin.Context) {
	var req dto.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "attendance")
		return
	}
	outcome, err := c.ledgerService.RecordAttendance(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, outcome)
}

// RecordMarks upserts a batch of mark rows
func (c *LedgerController) RecordMarks(ctx *gin.Context) {
	var req dto.RecordMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "marks")
		return
	}
	outcome, err := c.ledgerService.RecordMarks(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, outcome)
}

// ListAttendance retrieves a student's attendance, optionally filtered by
// the subjectId query parameter
func (c *LedgerController) ListAttendance(ctx *gin.Context) {
	var subjectID *int64
	if raw := ctx.Query("subjectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subjectId parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		subjectID = &id
	}

	rows, err := c.ledgerService.ListAttendance(ctx, ctx.Param("uid"), subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, rows)
}

// ListMarks retrieves a student's mark rows
func (c *LedgerController) ListMarks(ctx *gin.Context) {
	rows, err := c.ledgerService.ListMarks(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, rows)
}

// CreateFee opens a pending fee row
func (c *LedgerController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "fee")
		return
	}
	fee, err := c.ledgerService.CreateFee(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, fee)
}

// ListFees retrieves a student's fee rows
func (c *LedgerController) ListFees(ctx *gin.Context) {
	fees, err := c.ledgerService.ListFees(ctx, ctx.Param("uid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, fees)
}

// PayFee settles a fee row
func (c *LedgerController) PayFee(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.PayFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "payment")
		return
	}
	fee, err := c.ledgerService.PayFee(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, fee)
}
