package navigation

// ViewDescriptor names the screen to render and the inputs its renderer gets
type ViewDescriptor struct {
	Page          Page
	Role          Role
	Authenticated bool
	ThesisID      string
	GroupID       string
	// Redirected is set when the requested page could not be shown as is
	Redirected bool
}

// ActiveMenu is the sidebar entry highlighted for this view
func (v ViewDescriptor) ActiveMenu() Page {
	return v.Page.ListPage()
}

// ResolveView maps a navigation state and session to the active view.
// Unauthenticated sessions always get the login view. A detail page
// without its selection falls back to the list page.
func ResolveView(state NavigationState, session Session) ViewDescriptor {
	if !session.Authenticated {
		return ViewDescriptor{Page: PageLogin, Role: session.Role}
	}

	view := ViewDescriptor{
		Page:          state.Page,
		Role:          session.Role,
		Authenticated: true,
	}

	switch state.Page {
	case PageThesisDetail:
		if id, ok := state.Selection.ThesisID(); ok {
			view.ThesisID = id
			return view
		}
		view.Page = PageThesis
		view.Redirected = true
	case PageGroupDetail:
		if id, ok := state.Selection.GroupID(); ok {
			view.GroupID = id
			return view
		}
		view.Page = PageGroups
		view.Redirected = true
	default:
		if !state.Page.Valid() {
			view.Page = PageDashboard
			view.Redirected = true
		}
	}
	return view
}
