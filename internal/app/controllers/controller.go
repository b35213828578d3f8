// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/app/services"
	"github.com/yigit/envisys/internal/middleware"
)

// renderView composes the payload of view, writing an error response and
// returning false when that fails
func renderView(ctx *gin.Context, views *services.ViewService, view navigation.ViewDescriptor, query services.ViewQuery) (*dto.ViewResponse, bool) {
	resp, err := views.Render(ctx.Request.Context(), view, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return resp, true
}

// mustSessionID returns the session attached by SessionRequired
func mustSessionID(ctx *gin.Context) string {
	id, _ := middleware.SessionID(ctx)
	return id
}
