package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/app/services"
	"github.com/yigit/envisys/internal/middleware"
)

// NavigationController applies navigation transitions to a session
type NavigationController struct {
	sessionService *services.SessionService
	viewService    *services.ViewService
	logger         zerolog.Logger
}

// NewNavigationController creates a new NavigationController
func NewNavigationController(sessionService *services.SessionService, viewService *services.ViewService, logger zerolog.Logger) *NavigationController {
	return &NavigationController{
		sessionService: sessionService,
		viewService:    viewService,
		logger:         logger,
	}
}

// Navigate opens a page
// @Summary Navigate to a page
// @Description Moves the session to a page. Detail pages need the matching entity to still be selected.
// @Tags navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NavigateRequest true "Target page"
// @Success 200 {object} dto.APIResponse{data=dto.TransitionResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Unknown page"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "No entity selected"
// @Router /navigation/navigate [post]
func (c *NavigationController) Navigate(ctx *gin.Context) {
	req, ok := middleware.BindJSON[dto.NavigateRequest](ctx)
	if !ok {
		return
	}

	snap, err := c.sessionService.Navigate(ctx.Request.Context(), mustSessionID(ctx), req.Page)
	c.respond(ctx, snap, err)
}

// ViewThesis opens a thesis detail page
// @Summary View a thesis
// @Description Selects a thesis and opens its detail page. Ids missing from the catalog render a not-found payload.
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thesis ID"
// @Success 200 {object} dto.APIResponse{data=dto.TransitionResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /navigation/theses/{id} [post]
func (c *NavigationController) ViewThesis(ctx *gin.Context) {
	snap, err := c.sessionService.ViewThesisDetail(ctx.Request.Context(), mustSessionID(ctx), ctx.Param("id"))
	c.respond(ctx, snap, err)
}

// ViewGroup opens a group detail page
// @Summary View a group
// @Description Selects a group and opens its detail page. Ids missing from the catalog render a not-found payload.
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} dto.APIResponse{data=dto.TransitionResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /navigation/groups/{id} [post]
func (c *NavigationController) ViewGroup(ctx *gin.Context) {
	snap, err := c.sessionService.ViewGroupDetail(ctx.Request.Context(), mustSessionID(ctx), ctx.Param("id"))
	c.respond(ctx, snap, err)
}

// Back leaves a detail page
// @Summary Go back
// @Description Returns from a detail page to its list page and clears the selection. Does nothing elsewhere.
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TransitionResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /navigation/back [post]
func (c *NavigationController) Back(ctx *gin.Context) {
	snap, err := c.sessionService.Back(ctx.Request.Context(), mustSessionID(ctx))
	c.respond(ctx, snap, err)
}

func (c *NavigationController) respond(ctx *gin.Context, snap *services.Snapshot, err error) {
	if err != nil {
		c.logger.Debug().Err(err).Str("path", ctx.FullPath()).Msg("Navigation rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	view, ok := renderView(ctx, c.viewService, snap.View, services.ViewQuery{})
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TransitionResponse{
		State: dto.NewNavigationStateData(snap.State),
		View:  *view,
	}))
}
