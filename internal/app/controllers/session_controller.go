package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/app/services"
	"github.com/yigit/envisys/internal/middleware"
)

// SessionController handles login, logout and session lookup
type SessionController struct {
	sessionService *services.SessionService
	viewService    *services.ViewService
	logger         zerolog.Logger
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService *services.SessionService, viewService *services.ViewService, logger zerolog.Logger) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		viewService:    viewService,
		logger:         logger,
	}
}

// Login opens a session under the chosen role
// @Summary Log in with a role
// @Description Opens a session under the chosen role and lands on the dashboard. No credentials are checked.
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Role to act under"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Unknown role"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /session/login [post]
func (c *SessionController) Login(ctx *gin.Context) {
	req, ok := middleware.BindJSON[dto.LoginRequest](ctx)
	if !ok {
		c.logger.Warn().Msg("Invalid login request payload")
		return
	}

	result, err := c.sessionService.Login(ctx.Request.Context(), req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view, ok := renderView(ctx, c.viewService, result.View, services.ViewQuery{})
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SessionResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		ExpiresIn: result.ExpiresIn,
		Session:   dto.NewSessionData(result.Session),
		View:      *view,
	}))
}

// Logout ends the current session
// @Summary Log out
// @Description Ends the session and returns the login view. The token stops working.
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LogoutResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /session/logout [post]
func (c *SessionController) Logout(ctx *gin.Context) {
	snap, err := c.sessionService.Logout(ctx.Request.Context(), mustSessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view, ok := renderView(ctx, c.viewService, snap.View, services.ViewQuery{})
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LogoutResponse{
		Session: dto.NewSessionData(snap.Session),
		View:    *view,
	}))
}

// GetSession returns the caller's session
// @Summary Current session
// @Description Returns the authentication flag and role. Callers without a live session get the signed-out defaults.
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionData}
// @Router /session [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	sessionID, ok := middleware.SessionID(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSessionData(navigation.NewRouter().Session())))
		return
	}

	snap, err := c.sessionService.Current(ctx.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSessionData(snap.Session)))
}
