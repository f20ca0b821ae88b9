// Package controllers holds the thin HTTP layer. Controllers bind requests,
// delegate to the services and map errors through the central middleware;
// they hold no business rules of their own.
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/models/dto"
)

// Controllers holds all the controller instances
type Controllers struct {
	IdentityController  *IdentityController
	RosterController    *RosterController
	AcademicController  *AcademicController
	LedgerController    *LedgerController
	ReportingController *ReportingController
	LibraryController   *LibraryController
}

// respond writes the standard success envelope.
func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

// bindError writes a 400 for a request body that failed binding.
func bindError(ctx *gin.Context, err error, what string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+what+" data")
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// pathID parses a numeric :id style path parameter. Writes the 400 itself
// and reports ok=false when the value is not a number.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
