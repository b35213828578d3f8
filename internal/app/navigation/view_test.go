package navigation

import "testing"

func TestResolveViewEveryPage(t *testing.T) {
	session := Session{Authenticated: true, Role: RoleAdmin}
	for _, p := range Pages() {
		t.Run(string(p), func(t *testing.T) {
			r := &Router{session: session, state: NavigationState{Page: PageDashboard}}
			var err error
			switch p {
			case PageThesisDetail:
				_, err = r.ViewThesisDetail("1")
			case PageGroupDetail:
				_, err = r.ViewGroupDetail("1")
			default:
				_, err = r.Navigate(p)
			}
			if err != nil {
				t.Fatalf("transition to %s: %v", p, err)
			}

			view := ResolveView(r.State(), session)
			if view.Page != p {
				t.Fatalf("ResolveView page = %s want %s", view.Page, p)
			}
			if view.Redirected {
				t.Errorf("ResolveView redirected for %s", p)
			}
		})
	}
}

func TestResolveViewUnauthenticatedAlwaysLogin(t *testing.T) {
	states := []NavigationState{
		{Page: PageDashboard},
		{Page: PageSettings},
		{Page: PageThesisDetail, Selection: ThesisSelection("9")},
		{Page: PageGroupDetail, Selection: GroupSelection("2")},
		{Page: Page("bogus")},
	}
	for _, role := range Roles() {
		for _, state := range states {
			view := ResolveView(state, Session{Role: role})
			if view.Page != PageLogin {
				t.Errorf("ResolveView(%v, unauthenticated %s) = %s want login", state.Page, role, view.Page)
			}
			if view.ThesisID != "" || view.GroupID != "" {
				t.Errorf("login view leaked selection for %v", state.Page)
			}
		}
	}
}

func TestResolveViewDetailWithoutSelectionRedirects(t *testing.T) {
	session := Session{Authenticated: true, Role: RoleStudent}
	tests := []struct {
		name  string
		state NavigationState
		want  Page
	}{
		{name: "thesis none", state: NavigationState{Page: PageThesisDetail}, want: PageThesis},
		{name: "thesis with group selected", state: NavigationState{Page: PageThesisDetail, Selection: GroupSelection("1")}, want: PageThesis},
		{name: "group none", state: NavigationState{Page: PageGroupDetail}, want: PageGroups},
		{name: "unknown page", state: NavigationState{Page: Page("x")}, want: PageDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ResolveView(tt.state, session)
			if view.Page != tt.want || !view.Redirected {
				t.Fatalf("ResolveView = %+v want redirect to %s", view, tt.want)
			}
		})
	}
}

func TestResolveViewListPageIgnoresSelection(t *testing.T) {
	state := NavigationState{Page: PageThesis, Selection: ThesisSelection("42")}
	view := ResolveView(state, Session{Authenticated: true, Role: RoleStudent})

	if view.Page != PageThesis || view.ThesisID != "" {
		t.Fatalf("ResolveView = %+v want thesis list without id", view)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw     string
		want    Page
		wantErr bool
	}{
		{raw: "dashboard", want: PageDashboard},
		{raw: " Google-Docs ", want: PageGoogleDocs},
		{raw: "thesis-detail", want: PageThesisDetail},
		{raw: "", wantErr: true},
		{raw: "admin", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePage(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePage(%q) err = %v wantErr %v", tt.raw, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePage(%q) = %q want %q", tt.raw, got, tt.want)
		}
	}
	if len(Pages()) != 11 {
		t.Errorf("Pages() has %d entries want 11", len(Pages()))
	}
}
