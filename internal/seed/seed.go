// Package seed loads the sample catalog rendered by the portal pages.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/yigit/envisys/internal/app/models"
	"github.com/yigit/envisys/internal/app/navigation"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// LoadCatalog reads the sample catalog from path, or the embedded
// fixtures when path is empty, and checks that its references resolve.
func LoadCatalog(path string, lgr zerolog.Logger) (*models.Catalog, error) {
	raw := defaultFixtures
	source := "embedded"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixtures file: %w", err)
		}
		raw = data
		source = path
	}

	catalog, err := ParseCatalog(raw)
	if err != nil {
		lgr.Error().Err(err).Str("source", source).Msg("Invalid sample catalog")
		return nil, err
	}

	lgr.Info().
		Str("source", source).
		Int("theses", len(catalog.Theses)).
		Int("groups", len(catalog.Groups)).
		Int("documents", len(catalog.Documents)).
		Msg("Sample catalog loaded")
	return catalog, nil
}

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(raw []byte) (*models.Catalog, error) {
	catalog := &models.Catalog{}
	if err := yaml.Unmarshal(raw, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := validate(catalog); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}
	return catalog, nil
}

func validate(c *models.Catalog) error {
	var errs error

	groups := make(map[string]bool, len(c.Groups))
	for _, g := range c.Groups {
		if g.ID == "" || groups[g.ID] {
			errs = errors.Join(errs, fmt.Errorf("group %q: missing or duplicate id", g.ID))
		}
		groups[g.ID] = true
	}

	theses := make(map[string]bool, len(c.Theses))
	for _, t := range c.Theses {
		if t.ID == "" || theses[t.ID] {
			errs = errors.Join(errs, fmt.Errorf("thesis %q: missing or duplicate id", t.ID))
		}
		theses[t.ID] = true
		if !groups[t.GroupID] {
			errs = errors.Join(errs, fmt.Errorf("thesis %q: unknown group %q", t.ID, t.GroupID))
		}
		if t.Progress < 0 || t.Progress > 100 {
			errs = errors.Join(errs, fmt.Errorf("thesis %q: progress %d out of range", t.ID, t.Progress))
		}
	}

	for _, g := range c.Groups {
		if g.ThesisID != "" && !theses[g.ThesisID] {
			errs = errors.Join(errs, fmt.Errorf("group %q: unknown thesis %q", g.ID, g.ThesisID))
		}
	}
	for _, d := range c.Documents {
		if !groups[d.GroupID] {
			errs = errors.Join(errs, fmt.Errorf("document %q: unknown group %q", d.ID, d.GroupID))
		}
	}
	for _, d := range c.Defenses {
		if !groups[d.GroupID] {
			errs = errors.Join(errs, fmt.Errorf("defense %q: unknown group %q", d.ID, d.GroupID))
		}
	}
	for _, n := range c.Notifications {
		if _, err := navigation.ParsePage(n.Link); err != nil {
			errs = errors.Join(errs, fmt.Errorf("notification %q: %w", n.ID, err))
		}
	}
	for _, role := range navigation.Roles() {
		if len(c.Stats[role.String()]) == 0 {
			errs = errors.Join(errs, fmt.Errorf("no dashboard stats for role %s", role))
		}
	}

	return errs
}
