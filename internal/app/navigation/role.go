package navigation

import (
	"fmt"
	"strings"

	"github.com/yigit/envisys/internal/pkg/apperrors"
)

// Role is the portal role a session acts under
type Role string

const (
	RoleStudent Role = "student"
	RoleAdviser Role = "adviser"
	RolePanel   Role = "panel"
	RoleAdmin   Role = "admin"
)

var roles = []Role{RoleStudent, RoleAdviser, RolePanel, RoleAdmin}

// Roles returns every role in display order
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// ParseRole converts a raw role name, case-insensitively, into a Role
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, raw)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdviser, RolePanel, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
