package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/envisys/internal/app/models"
	"github.com/yigit/envisys/internal/pkg/apperrors"
)

// ThesisFilter narrows the thesis list. Empty fields match everything.
type ThesisFilter struct {
	Query   string
	Status  string
	Adviser string
}

// CatalogRepository serves the read-only sample catalog
type CatalogRepository struct {
	catalog     *models.Catalog
	thesisIndex map[string]int
	groupIndex  map[string]int
}

// NewCatalogRepository indexes a loaded catalog
func NewCatalogRepository(catalog *models.Catalog) *CatalogRepository {
	r := &CatalogRepository{
		catalog:     catalog,
		thesisIndex: make(map[string]int, len(catalog.Theses)),
		groupIndex:  make(map[string]int, len(catalog.Groups)),
	}
	for i, t := range catalog.Theses {
		r.thesisIndex[t.ID] = i
	}
	for i, g := range catalog.Groups {
		r.groupIndex[g.ID] = i
	}
	return r
}

// ListTheses returns the theses matching filter in catalog order
func (r *CatalogRepository) ListTheses(ctx context.Context, filter ThesisFilter) ([]models.Thesis, error) {
	out := []models.Thesis{}
	for _, t := range r.catalog.Theses {
		if filter.Status != "" && !strings.EqualFold(string(t.Status), filter.Status) {
			continue
		}
		if filter.Adviser != "" && !strings.EqualFold(t.Adviser, filter.Adviser) {
			continue
		}
		if !containsFold(filter.Query, t.Title, r.groupName(t.GroupID), t.Adviser) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// GetThesis returns the thesis with the given id
func (r *CatalogRepository) GetThesis(ctx context.Context, id string) (*models.Thesis, error) {
	i, ok := r.thesisIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", apperrors.ErrThesisNotFound, id)
	}
	t := r.catalog.Theses[i]
	return &t, nil
}

// ListGroups returns the groups whose name, thesis or adviser matches query
func (r *CatalogRepository) ListGroups(ctx context.Context, query string) ([]models.Group, error) {
	out := []models.Group{}
	for _, g := range r.catalog.Groups {
		if !containsFold(query, g.Name, r.thesisTitle(g.ThesisID), g.Adviser.Name) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// GetGroup returns the group with the given id
func (r *CatalogRepository) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	i, ok := r.groupIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", apperrors.ErrGroupNotFound, id)
	}
	g := r.catalog.Groups[i]
	return &g, nil
}

// ListDocuments returns every document, or only a group's when groupID is set
func (r *CatalogRepository) ListDocuments(ctx context.Context, groupID string) ([]models.Document, error) {
	out := []models.Document{}
	for _, d := range r.catalog.Documents {
		if groupID != "" && d.GroupID != groupID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// ListDefenses returns the defense schedule
func (r *CatalogRepository) ListDefenses(ctx context.Context) ([]models.Defense, error) {
	return append([]models.Defense(nil), r.catalog.Defenses...), nil
}

// ListNotifications returns the notification feed, newest first
func (r *CatalogRepository) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return append([]models.Notification(nil), r.catalog.Notifications...), nil
}

// GetSharedDoc returns the collaborative document sample
func (r *CatalogRepository) GetSharedDoc(ctx context.Context) (*models.SharedDoc, error) {
	doc := r.catalog.SharedDoc
	return &doc, nil
}

// ListActivity returns the recent activity feed
func (r *CatalogRepository) ListActivity(ctx context.Context) ([]models.Activity, error) {
	return append([]models.Activity(nil), r.catalog.Activity...), nil
}

// DashboardStats returns the stat cards shown to role
func (r *CatalogRepository) DashboardStats(ctx context.Context, role string) ([]models.StatCard, error) {
	cards, ok := r.catalog.Stats[role]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("no dashboard stats for role %q", role))
	}
	return append([]models.StatCard(nil), cards...), nil
}

// GroupName resolves a group id to its display name
func (r *CatalogRepository) GroupName(id string) string {
	return r.groupName(id)
}

func (r *CatalogRepository) groupName(id string) string {
	if i, ok := r.groupIndex[id]; ok {
		return r.catalog.Groups[i].Name
	}
	return ""
}

func (r *CatalogRepository) thesisTitle(id string) string {
	if i, ok := r.thesisIndex[id]; ok {
		return r.catalog.Theses[i].Title
	}
	return ""
}

// containsFold reports whether query is empty or appears in any field
func containsFold(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
