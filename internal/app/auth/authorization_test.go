package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/pkg/apperrors"
)

func TestAuthorizeAction(t *testing.T) {
	svc := NewAuthorizationService()
	ctx := context.Background()

	tests := []struct {
		name    string
		role    navigation.Role
		action  string
		want    navigation.Action
		wantErr error
	}{
		{"student creates thesis", navigation.RoleStudent, "create-thesis", navigation.ActionCreateThesis, nil},
		{"admin creates group", navigation.RoleAdmin, "create-group", navigation.ActionCreateGroup, nil},
		{"adviser creates group", navigation.RoleAdviser, "CREATE-GROUP", navigation.ActionCreateGroup, nil},
		{"panel cannot edit thesis", navigation.RolePanel, "edit-thesis", navigation.ActionEditThesis, apperrors.ErrUnauthorizedAction},
		{"student cannot create group", navigation.RoleStudent, "create-group", navigation.ActionCreateGroup, apperrors.ErrUnauthorizedAction},
		{"unknown action", navigation.RoleAdmin, "delete-thesis", "", apperrors.ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.AuthorizeAction(ctx, tt.role, tt.action)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapabilities(t *testing.T) {
	svc := NewAuthorizationService()

	assert.Empty(t, svc.Capabilities(navigation.RolePanel))
	assert.Equal(t,
		[]navigation.Action{navigation.ActionCreateThesis, navigation.ActionEditThesis, navigation.ActionCreateGroup},
		svc.Capabilities(navigation.RoleAdmin))
}
