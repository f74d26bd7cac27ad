package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"agency-backend/internal/utils"
)

var ErrInvalidRecord = errors.New("invalid catalog record")

// Catalog is an immutable snapshot of the marketing collections, loaded once at
// process start. Accessors return the shared backing slices; callers must treat
// them as read-only.
type Catalog struct {
	services    []Service
	specialized []SpecializedService
	projects    []Project
}

func New(services []Service, specialized []SpecializedService, projects []Project) *Catalog {
	return &Catalog{
		services:    append([]Service(nil), services...),
		specialized: append([]SpecializedService(nil), specialized...),
		projects:    append([]Project(nil), projects...),
	}
}

func (c *Catalog) Services(ctx context.Context) ([]Service, error) {
	return c.services, nil
}

func (c *Catalog) SpecializedServices(ctx context.Context) ([]SpecializedService, error) {
	return c.specialized, nil
}

func (c *Catalog) Projects(ctx context.Context) ([]Project, error) {
	return c.projects, nil
}

// Load reads all three collections from repo into a snapshot.
func Load(ctx context.Context, repo Repository) (*Catalog, error) {
	services, err := repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	specialized, err := repo.ListSpecializedServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("load specialized services: %w", err)
	}
	projects, err := repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	c := New(services, specialized, projects)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects records that would be served without an id.
func (c *Catalog) Validate() error {
	var bad []string
	for i, item := range c.services {
		if strings.TrimSpace(item.ID) == "" {
			bad = append(bad, fmt.Sprintf("services[%d] %q: empty id", i, item.Title))
		}
	}
	for i, item := range c.specialized {
		if utils.Slugify(item.Title) == "" {
			bad = append(bad, fmt.Sprintf("specialized_services[%d]: title yields empty id", i))
		}
	}
	for i, item := range c.projects {
		if strings.TrimSpace(item.ID) == "" {
			bad = append(bad, fmt.Sprintf("projects[%d] %q: empty id", i, item.Title))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(bad, "; "))
	}
	return nil
}

// DuplicateSpecializedIDs returns the derived ids shared by more than one
// specialized service. Such entries are served with colliding ids.
func (c *Catalog) DuplicateSpecializedIDs() []string {
	seen := make(map[string]int, len(c.specialized))
	for _, item := range c.specialized {
		seen[utils.Slugify(item.Title)]++
	}
	var dupes []string
	for id, n := range seen {
		if n > 1 {
			dupes = append(dupes, id)
		}
	}
	sort.Strings(dupes)
	return dupes
}

func (c *Catalog) Counts() (services, specialized, projects int) {
	return len(c.services), len(c.specialized), len(c.projects)
}
