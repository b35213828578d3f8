package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/app/repositories"
	"github.com/yigit/envisys/internal/pkg/apperrors"
	"github.com/yigit/envisys/internal/pkg/auth"
)

// SessionStore is the storage the session service needs
type SessionStore interface {
	Create(ctx context.Context, id string, router *navigation.Router) (*repositories.SessionEntry, error)
	Get(ctx context.Context, id string) (*repositories.SessionEntry, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	GenerateToken(sessionID, role string) (token string, expiresIn int, err error)
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// Snapshot is a consistent read of one session after a transition
type Snapshot struct {
	SessionID string
	Session   navigation.Session
	State     navigation.NavigationState
	View      navigation.ViewDescriptor
}

// LoginResult is a new session and the token that addresses it
type LoginResult struct {
	Token     string
	ExpiresIn int
	Snapshot
}

// SessionService owns session lifecycle and applies navigation transitions
type SessionService struct {
	sessions   SessionStore
	jwtService TokenIssuer
	logger     zerolog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions SessionStore, jwtService TokenIssuer, logger zerolog.Logger) *SessionService {
	return &SessionService{
		sessions:   sessions,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login opens a new session under rawRole and lands it on the dashboard
func (s *SessionService) Login(ctx context.Context, rawRole string) (*LoginResult, error) {
	role, err := navigation.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}

	router := navigation.NewRouter()
	if _, err := router.Login(role); err != nil {
		return nil, err
	}

	sessionID := auth.NewSessionID()
	if _, err := s.sessions.Create(ctx, sessionID, router); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, expiresIn, err := s.jwtService.GenerateToken(sessionID, role.String())
	if err != nil {
		if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
			s.logger.Warn().Err(delErr).
				Str("sessionID", sessionID).
				Msg("Failed to remove session after token error")
		}
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info().
		Str("sessionID", sessionID).
		Str("role", role.String()).
		Msg("Session opened")

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		Snapshot:  snapshotOf(sessionID, router),
	}, nil
}

// Authenticate resolves a session token to its live session id.
// Tokens whose session was logged out or swept fail with ErrSessionNotFound.
func (s *SessionService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return "", err
	}

	sessionID := claims.SessionID()
	if sessionID == "" {
		return "", fmt.Errorf("%w: token carries no session", apperrors.ErrTokenInvalid)
	}
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Logout ends the session. The router returns to the login page and the
// session entry is removed so its token stops working.
func (s *SessionService) Logout(ctx context.Context, sessionID string) (*Snapshot, error) {
	snap, err := s.apply(ctx, sessionID, "logout", false, func(r *navigation.Router) error {
		r.Logout()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, apperrors.ErrSessionNotFound) {
		return nil, err
	}

	s.logger.Info().Str("sessionID", sessionID).Msg("Session closed")
	return snap, nil
}

// Current returns the session without changing it
func (s *SessionService) Current(ctx context.Context, sessionID string) (*Snapshot, error) {
	return s.transition(ctx, sessionID, "", func(*navigation.Router) error { return nil })
}

// Navigate moves the session to rawPage
func (s *SessionService) Navigate(ctx context.Context, sessionID, rawPage string) (*Snapshot, error) {
	page, err := navigation.ParsePage(rawPage)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, sessionID, "navigate", func(r *navigation.Router) error {
		_, err := r.Navigate(page)
		return err
	})
}

// ViewThesisDetail selects a thesis and opens its detail page
func (s *SessionService) ViewThesisDetail(ctx context.Context, sessionID, thesisID string) (*Snapshot, error) {
	return s.transition(ctx, sessionID, "view-thesis", func(r *navigation.Router) error {
		_, err := r.ViewThesisDetail(thesisID)
		return err
	})
}

// ViewGroupDetail selects a group and opens its detail page
func (s *SessionService) ViewGroupDetail(ctx context.Context, sessionID, groupID string) (*Snapshot, error) {
	return s.transition(ctx, sessionID, "view-group", func(r *navigation.Router) error {
		_, err := r.ViewGroupDetail(groupID)
		return err
	})
}

// Back leaves a detail page for its list page
func (s *SessionService) Back(ctx context.Context, sessionID string) (*Snapshot, error) {
	return s.transition(ctx, sessionID, "back", func(r *navigation.Router) error {
		r.Back()
		return nil
	})
}

// transition applies fn to an authenticated session. A session that was
// logged out but not yet removed fails with ErrNotAuthenticated.
func (s *SessionService) transition(ctx context.Context, sessionID, name string, fn func(*navigation.Router) error) (*Snapshot, error) {
	return s.apply(ctx, sessionID, name, true, fn)
}

// apply runs fn on the session router under the session lock and reads the
// resulting snapshot before the lock is released
func (s *SessionService) apply(ctx context.Context, sessionID, name string, requireAuth bool, fn func(*navigation.Router) error) (*Snapshot, error) {
	entry, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	err = entry.Do(func(r *navigation.Router) error {
		if requireAuth && !r.Session().Authenticated {
			return apperrors.ErrNotAuthenticated
		}
		if err := fn(r); err != nil {
			return err
		}
		snap = snapshotOf(sessionID, r)
		return nil
	})
	if err != nil {
		s.logger.Debug().Err(err).
			Str("sessionID", sessionID).
			Str("transition", name).
			Msg("Transition rejected")
		return nil, err
	}

	if name != "" {
		s.logger.Debug().
			Str("sessionID", sessionID).
			Str("transition", name).
			Str("page", snap.State.Page.String()).
			Str("view", snap.View.Page.String()).
			Msg("Transition applied")
	}
	return &snap, nil
}

func snapshotOf(sessionID string, r *navigation.Router) Snapshot {
	return Snapshot{
		SessionID: sessionID,
		Session:   r.Session(),
		State:     r.State(),
		View:      r.View(),
	}
}
