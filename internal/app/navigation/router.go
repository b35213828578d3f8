// Package navigation holds the portal's view router: the session, the
// navigation state and the rules that turn them into the active view.
package navigation

import (
	"fmt"
	"strings"

	"github.com/yigit/envisys/internal/pkg/apperrors"
)

// Session is the authentication flag plus the active role
type Session struct {
	Authenticated bool `json:"authenticated"`
	Role          Role `json:"role"`
}

// NavigationState is the current page and the selected entity
type NavigationState struct {
	Page      Page
	Selection Selection
}

// Router owns one session and its navigation state.
// A Router is not safe for concurrent use; callers serialise transitions.
type Router struct {
	session Session
	state   NavigationState
}

// NewRouter returns a router in the unauthenticated state on the login page
func NewRouter() *Router {
	return &Router{
		session: Session{Role: RoleStudent},
		state:   NavigationState{Page: PageLogin},
	}
}

// Session returns the current session
func (r *Router) Session() Session {
	return r.session
}

// State returns the current navigation state
func (r *Router) State() NavigationState {
	return r.state
}

// Login authenticates the session under role and lands on the dashboard.
// There is no credential check; any valid role is accepted.
func (r *Router) Login(role Role) (Session, error) {
	if !role.Valid() {
		return r.session, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}
	r.session = Session{Authenticated: true, Role: role}
	r.state = NavigationState{Page: PageDashboard}
	return r.session, nil
}

// Logout drops the session back to unauthenticated on the login page
func (r *Router) Logout() Session {
	r.session = Session{Role: RoleStudent}
	r.state = NavigationState{Page: PageLogin}
	return r.session
}

// Navigate moves to page p. Detail pages are only reachable while the
// matching entity is still selected.
func (r *Router) Navigate(p Page) (NavigationState, error) {
	if !p.Valid() {
		return r.state, fmt.Errorf("%w: %q", apperrors.ErrInvalidPage, p)
	}
	if !r.state.Selection.satisfies(p) {
		return r.state, fmt.Errorf("%w: %s needs a selected %s", apperrors.ErrMissingSelection, p, kindFor(p))
	}
	r.state.Page = p
	return r.state, nil
}

// ViewThesisDetail selects thesis id and opens its detail page
func (r *Router) ViewThesisDetail(id string) (NavigationState, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return r.state, fmt.Errorf("%w: empty thesis id", apperrors.ErrMissingSelection)
	}
	r.state = NavigationState{Page: PageThesisDetail, Selection: ThesisSelection(id)}
	return r.state, nil
}

// ViewGroupDetail selects group id and opens its detail page
func (r *Router) ViewGroupDetail(id string) (NavigationState, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return r.state, fmt.Errorf("%w: empty group id", apperrors.ErrMissingSelection)
	}
	r.state = NavigationState{Page: PageGroupDetail, Selection: GroupSelection(id)}
	return r.state, nil
}

// Back leaves a detail page for its list page and clears the selection.
// On any other page it does nothing.
func (r *Router) Back() NavigationState {
	if !r.state.Page.IsDetail() {
		return r.state
	}
	r.state = NavigationState{Page: r.state.Page.ListPage()}
	return r.state
}

// View resolves the current state into the active view
func (r *Router) View() ViewDescriptor {
	return ResolveView(r.state, r.session)
}

func kindFor(p Page) SelectionKind {
	if p == PageGroupDetail {
		return SelectionGroup
	}
	return SelectionThesis
}
