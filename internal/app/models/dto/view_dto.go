package dto

import (
	"github.com/yigit/envisys/internal/app/models"
	"github.com/yigit/envisys/internal/app/navigation"
	"github.com/yigit/envisys/internal/pkg/helpers"
)

// ViewResponse is a resolved view plus the payload its renderer needs
type ViewResponse struct {
	Page          string      `json:"page" example:"dashboard"`
	Role          string      `json:"role" example:"student"`
	Authenticated bool        `json:"authenticated" example:"true"`
	ThesisID      string      `json:"thesisId,omitempty" example:"1"`
	GroupID       string      `json:"groupId,omitempty" example:"G-001"`
	Redirected    bool        `json:"redirected" example:"false"`
	Chrome        *ChromeData `json:"chrome,omitempty"`
	Content       interface{} `json:"content"`
}

// MenuItem is one sidebar entry
type MenuItem struct {
	Page   string `json:"page" example:"thesis"`
	Label  string `json:"label" example:"Thesis Management"`
	Icon   string `json:"icon" example:"file-text"`
	Active bool   `json:"active" example:"true"`
}

// ChromeData is the sidebar and header shown around every signed-in page
type ChromeData struct {
	Menu        []MenuItem `json:"menu"`
	Role        string     `json:"role" example:"adviser"`
	RoleBadge   string     `json:"roleBadge" example:"blue"`
	UnreadCount int        `json:"unreadCount" example:"3"`
}

var menu = []struct {
	page  navigation.Page
	label string
	icon  string
}{
	{navigation.PageDashboard, "Dashboard", "layout-dashboard"},
	{navigation.PageThesis, "Thesis Management", "file-text"},
	{navigation.PageGroups, "Groups", "users"},
	{navigation.PageDocuments, "Documents", "folder-open"},
	{navigation.PageSchedule, "Schedule", "calendar"},
	{navigation.PageNotifications, "Notifications", "bell"},
	{navigation.PageSettings, "Settings", "settings"},
}

// NewChromeData builds the sidebar for view with its active entry highlighted
func NewChromeData(view navigation.ViewDescriptor, unread int) *ChromeData {
	active := view.ActiveMenu()
	items := make([]MenuItem, 0, len(menu))
	for _, m := range menu {
		items = append(items, MenuItem{
			Page:   m.page.String(),
			Label:  m.label,
			Icon:   m.icon,
			Active: m.page == active,
		})
	}
	return &ChromeData{
		Menu:        items,
		Role:        view.Role.String(),
		RoleBadge:   RoleBadge(view.Role),
		UnreadCount: unread,
	}
}

// RoleBadge is the badge colour used for role in the header and settings
func RoleBadge(role navigation.Role) string {
	switch role {
	case navigation.RoleAdmin:
		return "purple"
	case navigation.RoleAdviser:
		return "blue"
	case navigation.RolePanel:
		return "amber"
	default:
		return "green"
	}
}

// RoleOption is a choice on the login screen
type RoleOption struct {
	Value string `json:"value" example:"student"`
	Label string `json:"label" example:"Student"`
}

// LoginContent is the payload of the login page
type LoginContent struct {
	Roles []RoleOption `json:"roles"`
}

// ThesisSummary is a thesis card
type ThesisSummary struct {
	ID          string `json:"id" example:"1"`
	Title       string `json:"title" example:"Microplastic Distribution in Laguna Lake"`
	GroupID     string `json:"groupId" example:"G-001"`
	GroupName   string `json:"groupName" example:"Team Aqua"`
	Adviser     string `json:"adviser" example:"Dr. Maria Santos"`
	Status      string `json:"status" example:"Under Review"`
	Progress    int    `json:"progress" example:"75"`
	LastUpdated string `json:"lastUpdated" example:"2 hours ago"`
}

// NewThesisSummary converts a thesis record into a card
func NewThesisSummary(t models.Thesis, groupName string) ThesisSummary {
	return ThesisSummary{
		ID:          t.ID,
		Title:       t.Title,
		GroupID:     t.GroupID,
		GroupName:   groupName,
		Adviser:     t.Adviser,
		Status:      string(t.Status),
		Progress:    t.Progress,
		LastUpdated: helpers.RelativeTime(t.UpdatedAgo),
	}
}

// ThesisDetail is a thesis card plus its abstract
type ThesisDetail struct {
	ThesisSummary
	Abstract string   `json:"abstract"`
	Keywords []string `json:"keywords"`
}

// ActivityItem is a dashboard feed entry
type ActivityItem struct {
	Type    string `json:"type" example:"submission"`
	Title   string `json:"title" example:"Chapter 3 submitted"`
	GroupID string `json:"groupId" example:"G-001"`
	Time    string `json:"time" example:"2 hours ago"`
}

// NewActivityItem converts an activity record
func NewActivityItem(a models.Activity) ActivityItem {
	return ActivityItem{
		Type:    a.Type,
		Title:   a.Title,
		GroupID: a.GroupID,
		Time:    helpers.RelativeTime(a.Ago),
	}
}

// DashboardContent is the payload of the dashboard
type DashboardContent struct {
	Stats            []models.StatCard `json:"stats"`
	RecentTheses     []ThesisSummary   `json:"recentTheses"`
	Activity         []ActivityItem    `json:"activity"`
	UpcomingDefenses []models.Defense  `json:"upcomingDefenses"`
}

// ThesisFilterData echoes the filters applied to the thesis list
type ThesisFilterData struct {
	Query   string `json:"query,omitempty" example:"lake"`
	Status  string `json:"status,omitempty" example:"Approved"`
	Adviser string `json:"adviser,omitempty" example:"Dr. Maria Santos"`
}

// ThesisListContent is the payload of the thesis management page
type ThesisListContent struct {
	Theses    []ThesisSummary  `json:"theses"`
	Filter    ThesisFilterData `json:"filter"`
	Statuses  []string         `json:"statuses"`
	Advisers  []string         `json:"advisers"`
	CanCreate bool             `json:"canCreate"`
	CanEdit   bool             `json:"canEdit"`
}

// ThesisDetailContent is the payload of the thesis detail page.
// NotFound is set when the selected id is not in the catalog.
type ThesisDetailContent struct {
	ThesisID string        `json:"thesisId" example:"1"`
	NotFound bool          `json:"notFound"`
	Thesis   *ThesisDetail `json:"thesis,omitempty"`
	Group    *GroupSummary `json:"group,omitempty"`
	CanEdit  bool          `json:"canEdit"`
}

// GroupSummary is a group card
type GroupSummary struct {
	ID          string   `json:"id" example:"G-001"`
	Name        string   `json:"name" example:"Team Aqua"`
	Status      string   `json:"status" example:"Active"`
	ThesisID    string   `json:"thesisId" example:"1"`
	Progress    int      `json:"progress" example:"75"`
	Adviser     string   `json:"adviser" example:"Dr. Maria Santos"`
	MemberCount int      `json:"memberCount" example:"4"`
	Avatars     []string `json:"avatars"`
}

// NewGroupSummary converts a group record into a card
func NewGroupSummary(g models.Group) GroupSummary {
	avatars := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		avatars = append(avatars, m.Avatar)
	}
	return GroupSummary{
		ID:          g.ID,
		Name:        g.Name,
		Status:      g.Status,
		ThesisID:    g.ThesisID,
		Progress:    g.Progress,
		Adviser:     g.Adviser.Name,
		MemberCount: len(g.Members),
		Avatars:     avatars,
	}
}

// GroupListContent is the payload of the groups page
type GroupListContent struct {
	Groups    []GroupSummary `json:"groups"`
	Query     string         `json:"query,omitempty"`
	CanCreate bool           `json:"canCreate"`
}

// GroupDetailContent is the payload of the group detail page.
// NotFound is set when the selected id is not in the catalog.
type GroupDetailContent struct {
	GroupID   string         `json:"groupId" example:"G-001"`
	NotFound  bool           `json:"notFound"`
	Group     *models.Group  `json:"group,omitempty"`
	Thesis    *ThesisSummary `json:"thesis,omitempty"`
	Documents []DocumentItem `json:"documents,omitempty"`
}

// DocumentItem is a row in the document manager
type DocumentItem struct {
	ID           string `json:"id" example:"D-001"`
	Name         string `json:"name" example:"Chapter1_Introduction.pdf"`
	Type         string `json:"type" example:"pdf"`
	Version      string `json:"version" example:"v2.1"`
	Owner        string `json:"owner" example:"Juan Dela Cruz"`
	GroupID      string `json:"groupId" example:"G-001"`
	Size         string `json:"size" example:"2.4 MB"`
	Permissions  string `json:"permissions" example:"edit"`
	Status       string `json:"status" example:"Approved"`
	LastModified string `json:"lastModified" example:"3 days ago"`
}

// NewDocumentItem converts a document record
func NewDocumentItem(d models.Document) DocumentItem {
	return DocumentItem{
		ID:           d.ID,
		Name:         d.Name,
		Type:         d.Type,
		Version:      d.Version,
		Owner:        d.Owner,
		GroupID:      d.GroupID,
		Size:         d.Size,
		Permissions:  d.Permissions,
		Status:       d.Status,
		LastModified: helpers.RelativeTime(d.ModifiedAgo),
	}
}

// DocumentsContent is the payload of the document manager
type DocumentsContent struct {
	Documents []DocumentItem `json:"documents"`
}

// CommentItem is a reviewer comment on the shared document
type CommentItem struct {
	Author   string `json:"author" example:"Dr. Maria Santos"`
	Role     string `json:"role" example:"adviser"`
	Text     string `json:"text"`
	Resolved bool   `json:"resolved"`
	Time     string `json:"time" example:"1 hour ago"`
}

// GoogleDocsContent is the payload of the embedded document editor
type GoogleDocsContent struct {
	Title     string               `json:"title"`
	Version   string               `json:"version" example:"v3.2"`
	LastSaved string               `json:"lastSaved" example:"just now"`
	History   []models.DocRevision `json:"history"`
	Comments  []CommentItem        `json:"comments"`
	Editors   []string             `json:"editors"`
}

// NewGoogleDocsContent converts the shared document record
func NewGoogleDocsContent(doc models.SharedDoc) GoogleDocsContent {
	comments := make([]CommentItem, 0, len(doc.Comments))
	for _, c := range doc.Comments {
		comments = append(comments, CommentItem{
			Author:   c.Author,
			Role:     c.Role,
			Text:     c.Text,
			Resolved: c.Resolved,
			Time:     helpers.RelativeTime(c.PostedAgo),
		})
	}
	return GoogleDocsContent{
		Title:     doc.Title,
		Version:   doc.Version,
		LastSaved: helpers.RelativeTime(doc.SavedAgo),
		History:   doc.History,
		Comments:  comments,
		Editors:   doc.Editors,
	}
}

// ScheduleContent is the payload of the schedule page
type ScheduleContent struct {
	Defenses []models.Defense `json:"defenses"`
}

// NotificationItem is a notification feed entry
type NotificationItem struct {
	ID       string `json:"id" example:"N-001"`
	Category string `json:"category" example:"submission"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Unread   bool   `json:"unread"`
	Link     string `json:"link,omitempty" example:"thesis"`
	Time     string `json:"time" example:"5 minutes ago"`
}

// NewNotificationItem converts a notification record
func NewNotificationItem(n models.Notification) NotificationItem {
	return NotificationItem{
		ID:       n.ID,
		Category: n.Category,
		Title:    n.Title,
		Message:  n.Message,
		Unread:   n.Unread,
		Link:     n.Link,
		Time:     helpers.RelativeTime(n.PostedAgo),
	}
}

// NotificationsContent is the payload of the notification center
type NotificationsContent struct {
	Notifications []NotificationItem `json:"notifications"`
	UnreadCount   int                `json:"unreadCount"`
}

// SettingsContent is the payload of the settings page
type SettingsContent struct {
	Role         string   `json:"role" example:"panel"`
	RoleBadge    string   `json:"roleBadge" example:"amber"`
	Capabilities []string `json:"capabilities"`
}
