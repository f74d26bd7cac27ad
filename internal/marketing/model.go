package marketing

import "strings"

// Public item types, carried in the "type" field of every item.
const (
	TypeService            = "service"
	TypeSpecializedService = "specialized-service"
	TypeProject            = "project"
)

// Kind is the collection requested through the {type} path segment.
type Kind string

const (
	KindService     Kind = "service"
	KindSpecialized Kind = "specialized"
	KindProject     Kind = "project"
)

var kinds = []Kind{KindService, KindSpecialized, KindProject}

func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// AllowedKinds lists the accepted {type} values, comma separated.
func AllowedKinds() string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// Item is one of ServiceItem, SpecializedServiceItem or ProjectItem.
type Item interface {
	ItemID() string
	ItemType() string
}

type ServiceItem struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Offerings   []string `json:"offerings"`
}

func (i ServiceItem) ItemID() string   { return i.ID }
func (i ServiceItem) ItemType() string { return i.Type }

type SpecializedServiceItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (i SpecializedServiceItem) ItemID() string   { return i.ID }
func (i SpecializedServiceItem) ItemType() string { return i.Type }

// ProjectItem always serializes link, linkType and detailPageUrl; they are
// null when the project has none.
type ProjectItem struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	ClientType    string   `json:"clientType"`
	Technologies  []string `json:"technologies"`
	ImageURL      string   `json:"imageUrl"`
	Year          string   `json:"year"`
	Link          *string  `json:"link"`
	LinkType      *string  `json:"linkType"`
	DetailPageURL *string  `json:"detailPageUrl"`
}

func (i ProjectItem) ItemID() string   { return i.ID }
func (i ProjectItem) ItemType() string { return i.Type }
