package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/services"
	"github.com/rahulj/sdms/internal/middleware"
)

// IdentityController exposes the identity directory. The resolve endpoint
// trusts that the caller verified the contact address out-of-band.
type IdentityController struct {
	identityService *services.IdentityService
}

// NewIdentityController creates a new IdentityController
func NewIdentityController(identityService *services.IdentityService) *IdentityController {
	return &IdentityController{
		identityService: identityService,
	}
}

// Resolve answers which role and display id a contact address maps to.
func (c *IdentityController) Resolve(ctx *gin.Context) {
	var req dto.ResolveIdentityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "identity")
		return
	}

	record, err := c.identityService.Resolve(ctx, req.ContactAddress)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.ResolveIdentityResponse{
		Role:        string(record.Role),
		CanonicalID: record.CanonicalID,
	})
}
