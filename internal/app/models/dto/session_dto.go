package dto

import "github.com/yigit/envisys/internal/app/navigation"

// LoginRequest selects the role a new session acts under
type LoginRequest struct {
	Role string `json:"role" binding:"required,role" example:"student"`
}

// SessionData describes the authentication state of a session
type SessionData struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	Role          string `json:"role" example:"student" enums:"student,adviser,panel,admin"`
}

// NewSessionData converts a router session for the wire
func NewSessionData(s navigation.Session) SessionData {
	return SessionData{
		Authenticated: s.Authenticated,
		Role:          s.Role.String(),
	}
}

// SessionResponse is returned by login. The token is a handle to the
// server-side session and must be sent as a bearer token afterwards.
type SessionResponse struct {
	Token     string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType string       `json:"tokenType" example:"Bearer"`
	ExpiresIn int          `json:"expiresIn" example:"28800"`
	Session   SessionData  `json:"session"`
	View      ViewResponse `json:"view"`
}

// LogoutResponse is returned by logout
type LogoutResponse struct {
	Session SessionData  `json:"session"`
	View    ViewResponse `json:"view"`
}
