package marketing

import (
	"strings"

	"agency-backend/internal/catalog"
	"agency-backend/internal/utils"
)

// Each catalog type has its own transform so that a field added to one
// record type cannot show up in another type's public shape.

func TransformService(s catalog.Service) ServiceItem {
	return ServiceItem{
		ID:          s.ID,
		Type:        TypeService,
		Title:       s.Title,
		Description: s.Description,
		Benefits:    copyStrings(s.Benefits),
		Offerings:   copyStrings(s.Offerings),
	}
}

func TransformSpecializedService(s catalog.SpecializedService) SpecializedServiceItem {
	return SpecializedServiceItem{
		ID:          utils.Slugify(s.Title),
		Type:        TypeSpecializedService,
		Title:       s.Title,
		Description: s.Description,
	}
}

func TransformProject(p catalog.Project) ProjectItem {
	return ProjectItem{
		ID:            p.ID,
		Type:          TypeProject,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		ClientType:    p.ClientType,
		Technologies:  copyStrings(p.Technologies),
		ImageURL:      p.ImageURL,
		Year:          p.Year,
		Link:          optional(p.Link),
		LinkType:      optional(p.LinkType),
		DetailPageURL: optional(p.DetailPageURL),
	}
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
