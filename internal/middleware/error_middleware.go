package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/pkg/apperrors"
	"github.com/yigit/envisys/internal/pkg/logger"
)

// HandleAPIError maps an error to its status code and error response
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
	}
	c.JSON(status, dto.NewAPIError(detail))
}

func errorResponse(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}
	pick := func(fallback string) string {
		if message != "" {
			return message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidPage):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidPage, pick("Unknown page")).WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrInvalidRole):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidRole, pick("Unknown role")).WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrInvalidAction):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidAction, pick("Unknown action")).WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrMissingSelection):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeMissingSelection, pick("No entity selected for this page")).WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrUnauthorizedAction):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, pick("Action not permitted for this role")).WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, pick("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, pick("Invalid token"))
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, pick("Session has ended"))
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, pick("Authentication required"))
	case errors.Is(err, apperrors.ErrThesisNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, pick("Resource not found"))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, pick("Invalid request"))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
