package dto

import "github.com/yigit/envisys/internal/app/navigation"

// NavigateRequest asks the router to open a page
type NavigateRequest struct {
	Page string `json:"page" binding:"required,page" example:"groups"`
}

// NavigationStateData is the page and selection after a transition
type NavigationStateData struct {
	Page          string `json:"page" example:"thesis-detail"`
	SelectionKind string `json:"selectionKind" example:"thesis" enums:"none,thesis,group"`
	SelectionID   string `json:"selectionId,omitempty" example:"1"`
}

// NewNavigationStateData converts a navigation state for the wire
func NewNavigationStateData(s navigation.NavigationState) NavigationStateData {
	return NavigationStateData{
		Page:          s.Page.String(),
		SelectionKind: s.Selection.Kind().String(),
		SelectionID:   s.Selection.ID(),
	}
}

// TransitionResponse is returned by every navigation endpoint
type TransitionResponse struct {
	State NavigationStateData `json:"state"`
	View  ViewResponse        `json:"view"`
}

// CapabilitiesResponse lists the gated actions a role may perform
type CapabilitiesResponse struct {
	Role            string   `json:"role" example:"admin"`
	Actions         []string `json:"actions" example:"create-thesis,edit-thesis,create-group"`
	CanCreateThesis bool     `json:"canCreateThesis" example:"true"`
	CanEditThesis   bool     `json:"canEditThesis" example:"true"`
	CanCreateGroup  bool     `json:"canCreateGroup" example:"true"`
}

// NewCapabilitiesResponse builds the capability set of role
func NewCapabilitiesResponse(role navigation.Role) CapabilitiesResponse {
	actions := navigation.Capabilities(role)
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return CapabilitiesResponse{
		Role:            role.String(),
		Actions:         names,
		CanCreateThesis: navigation.CanCreateThesis(role),
		CanEditThesis:   navigation.CanEditThesis(role),
		CanCreateGroup:  navigation.CanCreateGroup(role),
	}
}

// ActionResponse confirms that a gated action is permitted
type ActionResponse struct {
	Action  string `json:"action" example:"create-group"`
	Role    string `json:"role" example:"admin"`
	Allowed bool   `json:"allowed" example:"true"`
}
