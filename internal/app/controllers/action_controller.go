package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/envisys/internal/app/auth"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/app/services"
	"github.com/yigit/envisys/internal/middleware"
)

// ActionController exposes the role capability checks
type ActionController struct {
	sessionService *services.SessionService
	authzService   *auth.AuthorizationService
}

// NewActionController creates a new ActionController
func NewActionController(sessionService *services.SessionService, authzService *auth.AuthorizationService) *ActionController {
	return &ActionController{
		sessionService: sessionService,
		authzService:   authzService,
	}
}

// GetCapabilities lists the gated actions of the session role
// @Summary Role capabilities
// @Description Lists the gated actions the session role may perform.
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CapabilitiesResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /capabilities [get]
func (c *ActionController) GetCapabilities(ctx *gin.Context) {
	snap, err := c.sessionService.Current(ctx.Request.Context(), mustSessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCapabilitiesResponse(snap.Session.Role)))
}

// PerformAction checks a gated action against the session role
// @Summary Authorize a gated action
// @Description Checks that the session role may perform the action. The action itself has no side effects.
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Param action path string true "Action" Enums(create-thesis, edit-thesis, create-group)
// @Success 200 {object} dto.APIResponse{data=dto.ActionResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Unknown action"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Role may not perform the action"
// @Router /actions/{action} [post]
func (c *ActionController) PerformAction(ctx *gin.Context) {
	snap, err := c.sessionService.Current(ctx.Request.Context(), mustSessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	role := snap.Session.Role
	action, err := c.authzService.AuthorizeAction(ctx.Request.Context(), role, ctx.Param("action"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ActionResponse{
		Action:  string(action),
		Role:    role.String(),
		Allowed: true,
	}))
}
