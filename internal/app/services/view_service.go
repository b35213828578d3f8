package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/envisys/internal/app/models"
	"github.com/yigit/envisys/internal/app/models/dto"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/app/repositories"
	"github.com/yigit/envisys/internal/pkg/apperrors"
)

const recentThesesLimit = 3

// CatalogReader is the read side of the sample catalog
type CatalogReader interface {
	ListTheses(ctx context.Context, filter repositories.ThesisFilter) ([]models.Thesis, error)
	GetThesis(ctx context.Context, id string) (*models.Thesis, error)
	ListGroups(ctx context.Context, query string) ([]models.Group, error)
	GetGroup(ctx context.Context, id string) (*models.Group, error)
	ListDocuments(ctx context.Context, groupID string) ([]models.Document, error)
	ListDefenses(ctx context.Context) ([]models.Defense, error)
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	GetSharedDoc(ctx context.Context) (*models.SharedDoc, error)
	ListActivity(ctx context.Context) ([]models.Activity, error)
	DashboardStats(ctx context.Context, role string) ([]models.StatCard, error)
	GroupName(id string) string
}

// ViewQuery holds the list filters a client may pass with a view request
type ViewQuery struct {
	Query   string `form:"q" binding:"max=100"`
	Status  string `form:"status" binding:"max=50"`
	Adviser string `form:"adviser" binding:"max=100"`
}

// ViewService turns a resolved view into the payload its page renders
type ViewService struct {
	catalog CatalogReader
	logger  zerolog.Logger
}

// NewViewService creates a new ViewService
func NewViewService(catalog CatalogReader, logger zerolog.Logger) *ViewService {
	return &ViewService{
		catalog: catalog,
		logger:  logger,
	}
}

// Render builds the response for view. Signed-in views carry the sidebar
// and header chrome; the login view carries only the role picker.
func (s *ViewService) Render(ctx context.Context, view navigation.ViewDescriptor, query ViewQuery) (*dto.ViewResponse, error) {
	resp := &dto.ViewResponse{
		Page:          view.Page.String(),
		Role:          view.Role.String(),
		Authenticated: view.Authenticated,
		ThesisID:      view.ThesisID,
		GroupID:       view.GroupID,
		Redirected:    view.Redirected,
	}

	if view.Page == navigation.PageLogin {
		resp.Content = loginContent()
		return resp, nil
	}

	notifications, err := s.catalog.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	resp.Chrome = dto.NewChromeData(view, countUnread(notifications))

	content, err := s.content(ctx, view, query, notifications)
	if err != nil {
		s.logger.Error().Err(err).Str("page", view.Page.String()).Msg("Failed to compose page")
		return nil, err
	}
	resp.Content = content
	return resp, nil
}

func (s *ViewService) content(ctx context.Context, view navigation.ViewDescriptor, query ViewQuery, notifications []models.Notification) (interface{}, error) {
	switch view.Page {
	case navigation.PageDashboard:
		return s.dashboard(ctx, view.Role)
	case navigation.PageThesis:
		return s.thesisList(ctx, view.Role, query)
	case navigation.PageThesisDetail:
		return s.thesisDetail(ctx, view.Role, view.ThesisID)
	case navigation.PageGroups:
		return s.groupList(ctx, view.Role, query.Query)
	case navigation.PageGroupDetail:
		return s.groupDetail(ctx, view.GroupID)
	case navigation.PageDocuments:
		return s.documents(ctx)
	case navigation.PageGoogleDocs:
		doc, err := s.catalog.GetSharedDoc(ctx)
		if err != nil {
			return nil, err
		}
		return dto.NewGoogleDocsContent(*doc), nil
	case navigation.PageSchedule:
		defenses, err := s.catalog.ListDefenses(ctx)
		if err != nil {
			return nil, err
		}
		return dto.ScheduleContent{Defenses: defenses}, nil
	case navigation.PageNotifications:
		items := make([]dto.NotificationItem, 0, len(notifications))
		for _, n := range notifications {
			items = append(items, dto.NewNotificationItem(n))
		}
		return dto.NotificationsContent{Notifications: items, UnreadCount: countUnread(notifications)}, nil
	case navigation.PageSettings:
		return settingsContent(view.Role), nil
	default:
		return nil, fmt.Errorf("%w: no renderer for %q", apperrors.ErrInvalidPage, view.Page)
	}
}

func (s *ViewService) dashboard(ctx context.Context, role navigation.Role) (*dto.DashboardContent, error) {
	stats, err := s.catalog.DashboardStats(ctx, role.String())
	if err != nil {
		return nil, err
	}
	theses, err := s.catalog.ListTheses(ctx, repositories.ThesisFilter{})
	if err != nil {
		return nil, err
	}
	activity, err := s.catalog.ListActivity(ctx)
	if err != nil {
		return nil, err
	}
	defenses, err := s.catalog.ListDefenses(ctx)
	if err != nil {
		return nil, err
	}

	if len(theses) > recentThesesLimit {
		theses = theses[:recentThesesLimit]
	}
	content := &dto.DashboardContent{
		Stats:            stats,
		RecentTheses:     s.thesisSummaries(theses),
		Activity:         make([]dto.ActivityItem, 0, len(activity)),
		UpcomingDefenses: defenses,
	}
	for _, a := range activity {
		content.Activity = append(content.Activity, dto.NewActivityItem(a))
	}
	return content, nil
}

func (s *ViewService) thesisList(ctx context.Context, role navigation.Role, query ViewQuery) (*dto.ThesisListContent, error) {
	filter := repositories.ThesisFilter{
		Query:   query.Query,
		Status:  query.Status,
		Adviser: query.Adviser,
	}
	theses, err := s.catalog.ListTheses(ctx, filter)
	if err != nil {
		return nil, err
	}
	all, err := s.catalog.ListTheses(ctx, repositories.ThesisFilter{})
	if err != nil {
		return nil, err
	}

	return &dto.ThesisListContent{
		Theses: s.thesisSummaries(theses),
		Filter: dto.ThesisFilterData{
			Query:   query.Query,
			Status:  query.Status,
			Adviser: query.Adviser,
		},
		Statuses: []string{
			string(models.ThesisDraft),
			string(models.ThesisSubmitted),
			string(models.ThesisUnderReview),
			string(models.ThesisApproved),
			string(models.ThesisRejected),
		},
		Advisers:  advisersOf(all),
		CanCreate: navigation.CanCreateThesis(role),
		CanEdit:   navigation.CanEditThesis(role),
	}, nil
}

func (s *ViewService) thesisDetail(ctx context.Context, role navigation.Role, id string) (*dto.ThesisDetailContent, error) {
	content := &dto.ThesisDetailContent{
		ThesisID: id,
		CanEdit:  navigation.CanEditThesis(role),
	}

	thesis, err := s.catalog.GetThesis(ctx, id)
	if errors.Is(err, apperrors.ErrThesisNotFound) {
		content.NotFound = true
		return content, nil
	}
	if err != nil {
		return nil, err
	}

	content.Thesis = &dto.ThesisDetail{
		ThesisSummary: dto.NewThesisSummary(*thesis, s.catalog.GroupName(thesis.GroupID)),
		Abstract:      thesis.Abstract,
		Keywords:      thesis.Keywords,
	}
	if group, err := s.catalog.GetGroup(ctx, thesis.GroupID); err == nil {
		summary := dto.NewGroupSummary(*group)
		content.Group = &summary
	}
	return content, nil
}

func (s *ViewService) groupList(ctx context.Context, role navigation.Role, query string) (*dto.GroupListContent, error) {
	groups, err := s.catalog.ListGroups(ctx, query)
	if err != nil {
		return nil, err
	}
	content := &dto.GroupListContent{
		Groups:    make([]dto.GroupSummary, 0, len(groups)),
		Query:     query,
		CanCreate: navigation.CanCreateGroup(role),
	}
	for _, g := range groups {
		content.Groups = append(content.Groups, dto.NewGroupSummary(g))
	}
	return content, nil
}

func (s *ViewService) groupDetail(ctx context.Context, id string) (*dto.GroupDetailContent, error) {
	content := &dto.GroupDetailContent{GroupID: id}

	group, err := s.catalog.GetGroup(ctx, id)
	if errors.Is(err, apperrors.ErrGroupNotFound) {
		content.NotFound = true
		return content, nil
	}
	if err != nil {
		return nil, err
	}
	content.Group = group

	if thesis, err := s.catalog.GetThesis(ctx, group.ThesisID); err == nil {
		summary := dto.NewThesisSummary(*thesis, group.Name)
		content.Thesis = &summary
	}

	docs, err := s.catalog.ListDocuments(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	content.Documents = documentItems(docs)
	return content, nil
}

func (s *ViewService) documents(ctx context.Context) (*dto.DocumentsContent, error) {
	docs, err := s.catalog.ListDocuments(ctx, "")
	if err != nil {
		return nil, err
	}
	return &dto.DocumentsContent{Documents: documentItems(docs)}, nil
}

func (s *ViewService) thesisSummaries(theses []models.Thesis) []dto.ThesisSummary {
	out := make([]dto.ThesisSummary, 0, len(theses))
	for _, t := range theses {
		out = append(out, dto.NewThesisSummary(t, s.catalog.GroupName(t.GroupID)))
	}
	return out
}

func documentItems(docs []models.Document) []dto.DocumentItem {
	out := make([]dto.DocumentItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.NewDocumentItem(d))
	}
	return out
}

func loginContent() dto.LoginContent {
	labels := map[navigation.Role]string{
		navigation.RoleStudent: "Student",
		navigation.RoleAdviser: "Adviser",
		navigation.RolePanel:   "Panel Member",
		navigation.RoleAdmin:   "Administrator",
	}
	roles := navigation.Roles()
	options := make([]dto.RoleOption, 0, len(roles))
	for _, r := range roles {
		options = append(options, dto.RoleOption{Value: r.String(), Label: labels[r]})
	}
	return dto.LoginContent{Roles: options}
}

func settingsContent(role navigation.Role) dto.SettingsContent {
	actions := navigation.Capabilities(role)
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return dto.SettingsContent{
		Role:         role.String(),
		RoleBadge:    dto.RoleBadge(role),
		Capabilities: names,
	}
}

func advisersOf(theses []models.Thesis) []string {
	seen := make(map[string]bool, len(theses))
	var out []string
	for _, t := range theses {
		if t.Adviser == "" || seen[t.Adviser] {
			continue
		}
		seen[t.Adviser] = true
		out = append(out, t.Adviser)
	}
	return out
}

func countUnread(notifications []models.Notification) int {
	n := 0
	for _, item := range notifications {
		if item.Unread {
			n++
		}
	}
	return n
}
