package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/app/services"
	"github.com/yigit/envisys/internal/middleware"
	"github.com/yigit/envisys/internal/pkg/apperrors"
)

// ViewController resolves and renders the active view
type ViewController struct {
	sessionService *services.SessionService
	viewService    *services.ViewService
}

// NewViewController creates a new ViewController
func NewViewController(sessionService *services.SessionService, viewService *services.ViewService) *ViewController {
	return &ViewController{
		sessionService: sessionService,
		viewService:    viewService,
	}
}

// GetView renders the view the session is on
// @Summary Active view
// @Description Resolves the session's navigation state into a view and its page payload. Requests without a live session get the login view.
// @Tags view
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query for the thesis or group list"
// @Param status query string false "Thesis status filter"
// @Param adviser query string false "Thesis adviser filter"
// @Success 200 {object} dto.APIResponse{data=dto.ViewResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /view [get]
func (c *ViewController) GetView(ctx *gin.Context) {
	var query services.ViewQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid view filters"))
		return
	}

	view := navigation.NewRouter().View()
	if sessionID, ok := middleware.SessionID(ctx); ok {
		snap, err := c.sessionService.Current(ctx.Request.Context(), sessionID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		view = snap.View
	}

	resp, ok := renderView(ctx, c.viewService, view, query)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
