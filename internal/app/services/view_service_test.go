package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/app/repositories"
	"github.com/yigit/envisys/internal/seed"
)

func newTestViewService(t *testing.T) *ViewService {
	t.Helper()
	catalog, err := seed.LoadCatalog("", zerolog.Nop())
	require.NoError(t, err)
	return NewViewService(repositories.NewCatalogRepository(catalog), zerolog.Nop())
}

func signedIn(role navigation.Role, page navigation.Page) navigation.ViewDescriptor {
	return navigation.ViewDescriptor{Page: page, Role: role, Authenticated: true}
}

func TestViewService_Login(t *testing.T) {
	svc := newTestViewService(t)

	resp, err := svc.Render(context.Background(), navigation.ViewDescriptor{Page: navigation.PageLogin, Role: navigation.RoleStudent}, ViewQuery{})
	require.NoError(t, err)
	assert.Equal(t, "login", resp.Page)
	assert.False(t, resp.Authenticated)
	assert.Nil(t, resp.Chrome)

	content, ok := resp.Content.(dto.LoginContent)
	require.True(t, ok)
	require.Len(t, content.Roles, 4)
	assert.Equal(t, "student", content.Roles[0].Value)
}

func TestViewService_ChromeHighlightsListPage(t *testing.T) {
	svc := newTestViewService(t)

	view := signedIn(navigation.RoleAdviser, navigation.PageGroupDetail)
	view.GroupID = "2"
	resp, err := svc.Render(context.Background(), view, ViewQuery{})
	require.NoError(t, err)
	require.NotNil(t, resp.Chrome)

	var active []string
	for _, item := range resp.Chrome.Menu {
		if item.Active {
			active = append(active, item.Page)
		}
	}
	assert.Equal(t, []string{"groups"}, active)
	assert.Len(t, resp.Chrome.Menu, 7)
	assert.Equal(t, "blue", resp.Chrome.RoleBadge)
	assert.Equal(t, 3, resp.Chrome.UnreadCount)
}

func TestViewService_DashboardStatsFollowRole(t *testing.T) {
	svc := newTestViewService(t)

	for _, tt := range []struct {
		role  navigation.Role
		first string
	}{
		{navigation.RoleStudent, "My Thesis"},
		{navigation.RoleAdviser, "Advised Theses"},
		{navigation.RolePanel, "Assigned Theses"},
		{navigation.RoleAdmin, "Total Theses"},
	} {
		t.Run(tt.role.String(), func(t *testing.T) {
			resp, err := svc.Render(context.Background(), signedIn(tt.role, navigation.PageDashboard), ViewQuery{})
			require.NoError(t, err)
			content, ok := resp.Content.(*dto.DashboardContent)
			require.True(t, ok)
			require.NotEmpty(t, content.Stats)
			assert.Equal(t, tt.first, content.Stats[0].Label)
			assert.Len(t, content.RecentTheses, 3)
			assert.NotEmpty(t, content.Activity)
		})
	}
}

func TestViewService_ThesisListActions(t *testing.T) {
	svc := newTestViewService(t)

	tests := []struct {
		role      navigation.Role
		canCreate bool
	}{
		{navigation.RoleStudent, true},
		{navigation.RoleAdviser, false},
		{navigation.RolePanel, false},
		{navigation.RoleAdmin, true},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			resp, err := svc.Render(context.Background(), signedIn(tt.role, navigation.PageThesis), ViewQuery{})
			require.NoError(t, err)
			content, ok := resp.Content.(*dto.ThesisListContent)
			require.True(t, ok)
			assert.Equal(t, tt.canCreate, content.CanCreate)
			assert.Equal(t, tt.canCreate, content.CanEdit)
			assert.Len(t, content.Theses, 6)
		})
	}
}

func TestViewService_ThesisListFilters(t *testing.T) {
	svc := newTestViewService(t)
	view := signedIn(navigation.RoleAdmin, navigation.PageThesis)

	resp, err := svc.Render(context.Background(), view, ViewQuery{Status: "under review"})
	require.NoError(t, err)
	content := resp.Content.(*dto.ThesisListContent)
	require.Len(t, content.Theses, 2)
	assert.Equal(t, "Under Review", content.Theses[0].Status)
	assert.Len(t, content.Advisers, 6)

	resp, err = svc.Render(context.Background(), view, ViewQuery{Query: "coastal", Adviser: "Dr. David Park"})
	require.NoError(t, err)
	content = resp.Content.(*dto.ThesisListContent)
	require.Len(t, content.Theses, 1)
	assert.Equal(t, "6", content.Theses[0].ID)
	assert.Equal(t, "6 hours ago", content.Theses[0].LastUpdated)
}

func TestViewService_ThesisDetail(t *testing.T) {
	svc := newTestViewService(t)

	view := signedIn(navigation.RolePanel, navigation.PageThesisDetail)
	view.ThesisID = "1"
	resp, err := svc.Render(context.Background(), view, ViewQuery{})
	require.NoError(t, err)
	content := resp.Content.(*dto.ThesisDetailContent)
	assert.False(t, content.NotFound)
	assert.False(t, content.CanEdit)
	require.NotNil(t, content.Thesis)
	assert.Equal(t, "Rainforest Biodiversity Team", content.Thesis.GroupName)
	require.NotNil(t, content.Group)
	assert.Equal(t, "1", content.Group.ID)

	view.ThesisID = "42"
	resp, err = svc.Render(context.Background(), view, ViewQuery{})
	require.NoError(t, err)
	content = resp.Content.(*dto.ThesisDetailContent)
	assert.True(t, content.NotFound)
	assert.Equal(t, "42", content.ThesisID)
	assert.Nil(t, content.Thesis)
}

func TestViewService_Groups(t *testing.T) {
	svc := newTestViewService(t)

	resp, err := svc.Render(context.Background(), signedIn(navigation.RoleAdviser, navigation.PageGroups), ViewQuery{})
	require.NoError(t, err)
	list := resp.Content.(*dto.GroupListContent)
	assert.True(t, list.CanCreate)
	assert.Len(t, list.Groups, 6)

	resp, err = svc.Render(context.Background(), signedIn(navigation.RolePanel, navigation.PageGroups), ViewQuery{Query: "rainforest"})
	require.NoError(t, err)
	list = resp.Content.(*dto.GroupListContent)
	assert.False(t, list.CanCreate)
	require.Len(t, list.Groups, 1)
	assert.Equal(t, "1", list.Groups[0].ID)

	view := signedIn(navigation.RolePanel, navigation.PageGroupDetail)
	view.GroupID = "1"
	resp, err = svc.Render(context.Background(), view, ViewQuery{})
	require.NoError(t, err)
	detail := resp.Content.(*dto.GroupDetailContent)
	require.NotNil(t, detail.Group)
	require.NotNil(t, detail.Thesis)
	assert.Equal(t, "1", detail.Thesis.ID)
	assert.Len(t, detail.Documents, 2)

	view.GroupID = "99"
	resp, err = svc.Render(context.Background(), view, ViewQuery{})
	require.NoError(t, err)
	assert.True(t, resp.Content.(*dto.GroupDetailContent).NotFound)
}

func TestViewService_OtherPages(t *testing.T) {
	svc := newTestViewService(t)
	ctx := context.Background()

	resp, err := svc.Render(ctx, signedIn(navigation.RoleStudent, navigation.PageDocuments), ViewQuery{})
	require.NoError(t, err)
	assert.Len(t, resp.Content.(*dto.DocumentsContent).Documents, 6)

	resp, err = svc.Render(ctx, signedIn(navigation.RoleStudent, navigation.PageGoogleDocs), ViewQuery{})
	require.NoError(t, err)
	docs := resp.Content.(dto.GoogleDocsContent)
	assert.Equal(t, "Chapter 2: Literature Review", docs.Title)
	assert.Len(t, docs.Comments, 3)
	assert.Equal(t, "documents", resp.Chrome.Menu[3].Page)
	assert.False(t, resp.Chrome.Menu[3].Active)

	resp, err = svc.Render(ctx, signedIn(navigation.RoleStudent, navigation.PageSchedule), ViewQuery{})
	require.NoError(t, err)
	assert.Len(t, resp.Content.(dto.ScheduleContent).Defenses, 3)

	resp, err = svc.Render(ctx, signedIn(navigation.RoleStudent, navigation.PageNotifications), ViewQuery{})
	require.NoError(t, err)
	notes := resp.Content.(dto.NotificationsContent)
	assert.Len(t, notes.Notifications, 5)
	assert.Equal(t, 3, notes.UnreadCount)

	resp, err = svc.Render(ctx, signedIn(navigation.RolePanel, navigation.PageSettings), ViewQuery{})
	require.NoError(t, err)
	settings := resp.Content.(dto.SettingsContent)
	assert.Equal(t, "amber", settings.RoleBadge)
	assert.Empty(t, settings.Capabilities)
}
