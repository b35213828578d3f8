package auth

import (
	"context"

	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/pkg/logger"
)

// AuthorizationService checks gated actions against the session role
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// AuthorizeAction parses rawAction and checks that role may perform it.
// Unknown actions fail with ErrInvalidAction and denied ones with
// ErrUnauthorizedAction.
func (s *AuthorizationService) AuthorizeAction(ctx context.Context, role navigation.Role, rawAction string) (navigation.Action, error) {
	action, err := navigation.ParseAction(rawAction)
	if err != nil {
		return "", err
	}

	if err := navigation.Authorize(role, action); err != nil {
		logger.Warn().
			Str("role", role.String()).
			Str("action", string(action)).
			Msg("Action denied for role")
		return action, err
	}

	return action, nil
}

// Capabilities returns the gated actions role may perform
func (s *AuthorizationService) Capabilities(role navigation.Role) []navigation.Action {
	return navigation.Capabilities(role)
}
