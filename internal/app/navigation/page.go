package navigation

import (
	"fmt"
	"strings"

	"github.com/yigit/envisys/internal/pkg/apperrors"
)

// Page identifies one of the portal screens
type Page string

const (
	PageLogin         Page = "login"
	PageDashboard     Page = "dashboard"
	PageThesis        Page = "thesis"
	PageThesisDetail  Page = "thesis-detail"
	PageGroups        Page = "groups"
	PageGroupDetail   Page = "group-detail"
	PageDocuments     Page = "documents"
	PageGoogleDocs    Page = "google-docs"
	PageSchedule      Page = "schedule"
	PageNotifications Page = "notifications"
	PageSettings      Page = "settings"
)

var pages = []Page{
	PageLogin,
	PageDashboard,
	PageThesis,
	PageThesisDetail,
	PageGroups,
	PageGroupDetail,
	PageDocuments,
	PageGoogleDocs,
	PageSchedule,
	PageNotifications,
	PageSettings,
}

// Pages returns the closed set of page identifiers
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// ParsePage converts a raw page identifier into a Page
func ParsePage(raw string) (Page, error) {
	p := Page(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidPage, raw)
	}
	return p, nil
}

// Valid reports whether p belongs to the closed set
func (p Page) Valid() bool {
	for _, known := range pages {
		if p == known {
			return true
		}
	}
	return false
}

// IsDetail reports whether p needs a selected entity
func (p Page) IsDetail() bool {
	return p == PageThesisDetail || p == PageGroupDetail
}

// ListPage returns the list page a detail page belongs to.
// Any other page is returned unchanged.
func (p Page) ListPage() Page {
	switch p {
	case PageThesisDetail:
		return PageThesis
	case PageGroupDetail:
		return PageGroups
	}
	return p
}

func (p Page) String() string {
	return string(p)
}
