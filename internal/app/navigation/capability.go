package navigation

import (
	"fmt"
	"strings"

	"github.com/yigit/envisys/internal/pkg/apperrors"
)

// Action is a role-gated operation offered by a page
type Action string

const (
	ActionCreateThesis Action = "create-thesis"
	ActionEditThesis   Action = "edit-thesis"
	ActionCreateGroup  Action = "create-group"
)

var actions = []Action{ActionCreateThesis, ActionEditThesis, ActionCreateGroup}

var actionRoles = map[Action][]Role{
	ActionCreateThesis: {RoleStudent, RoleAdmin},
	ActionEditThesis:   {RoleStudent, RoleAdmin},
	ActionCreateGroup:  {RoleAdmin, RoleAdviser},
}

// ParseAction converts a raw action name into an Action
func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := actionRoles[a]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAction, raw)
	}
	return a, nil
}

// Allowed reports whether role may perform action
func Allowed(role Role, action Action) bool {
	for _, r := range actionRoles[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize returns ErrUnauthorizedAction unless role may perform action
func Authorize(role Role, action Action) error {
	if _, ok := actionRoles[action]; !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidAction, action)
	}
	if !Allowed(role, action) {
		return fmt.Errorf("%w: %s cannot %s", apperrors.ErrUnauthorizedAction, role, action)
	}
	return nil
}

// Capabilities lists the actions role may perform
func Capabilities(role Role) []Action {
	var out []Action
	for _, a := range actions {
		if Allowed(role, a) {
			out = append(out, a)
		}
	}
	return out
}

// CanCreateThesis reports whether role sees the create-thesis action
func CanCreateThesis(role Role) bool { return Allowed(role, ActionCreateThesis) }

// CanEditThesis reports whether role sees the edit-thesis action
func CanEditThesis(role Role) bool { return Allowed(role, ActionEditThesis) }

// CanCreateGroup reports whether role sees the create-group action
func CanCreateGroup(role Role) bool { return Allowed(role, ActionCreateGroup) }
