package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/pkg/apperrors"
	"github.com/yigit/envisys/internal/pkg/auth"
)

// ContextKeySessionID is the gin context key holding the caller's session id
const ContextKeySessionID = "sessionID"

// SessionAuthenticator resolves a bearer token to a live session id
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// AuthMiddleware attaches the caller's session to the request
type AuthMiddleware struct {
	sessions SessionAuthenticator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions SessionAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// SessionRequired rejects requests without a live session
func (m *AuthMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := tokenFromRequest(c)
		if header == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAPIError(errorDetail))
			return
		}

		sessionID, err := m.authenticate(c, header)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired):
				code, details = dto.ErrorCodeExpiredToken, "Token has expired"
			case errors.Is(err, apperrors.ErrInvalidFormat):
				details = "Invalid token format"
			case errors.Is(err, apperrors.ErrSessionNotFound):
				code, details = dto.ErrorCodeSessionNotFound, "Session has ended"
			}

			errorDetail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAPIError(errorDetail))
			return
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// SessionOptional attaches the session when a valid token is present and
// otherwise lets the request through anonymously
func (m *AuthMiddleware) SessionOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := tokenFromRequest(c); header != "" {
			if sessionID, err := m.authenticate(c, header); err == nil {
				c.Set(ContextKeySessionID, sessionID)
			}
		}
		c.Next()
	}
}

// SessionID returns the session attached by the auth middleware
func SessionID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextKeySessionID)
	return id, id != ""
}

func (m *AuthMiddleware) authenticate(c *gin.Context, header string) (string, error) {
	token, err := auth.ExtractBearerToken(strings.Trim(header, "\"'"))
	if err != nil {
		return "", err
	}
	return m.sessions.Authenticate(c.Request.Context(), token)
}

// tokenFromRequest reads the Authorization header, falling back to the
// token query parameter used by the Swagger UI
func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return header
	}
	return c.Query("token")
}
