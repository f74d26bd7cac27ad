package catalog

// Service is a core consultancy offering as stored in the catalog.
// Icon names a frontend icon component and never leaves the backend.
type Service struct {
	ID          string   `bson:"_id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Icon        string   `bson:"icon" json:"icon"`
	Benefits    []string `bson:"benefits" json:"benefits"`
	Offerings   []string `bson:"offerings" json:"offerings"`
	SortOrder   int      `bson:"sort_order" json:"sort_order"`
}

// SpecializedService has no stored id; public ids are derived from Title.
type SpecializedService struct {
	Title       string `bson:"title" json:"title"`
	Icon        string `bson:"icon" json:"icon"`
	Description string `bson:"description" json:"description"`
	SortOrder   int    `bson:"sort_order" json:"sort_order"`
}

type Project struct {
	ID            string   `bson:"_id" json:"id"`
	Title         string   `bson:"title" json:"title"`
	Category      string   `bson:"category" json:"category"`
	Description   string   `bson:"description" json:"description"`
	ClientType    string   `bson:"client_type" json:"client_type"`
	Technologies  []string `bson:"technologies" json:"technologies"`
	ImageURL      string   `bson:"image_url" json:"image_url"`
	Year          string   `bson:"year" json:"year"`
	Link          string   `bson:"link,omitempty" json:"link,omitempty"`
	LinkType      string   `bson:"link_type,omitempty" json:"link_type,omitempty"`
	DetailPageURL string   `bson:"detail_page_url,omitempty" json:"detail_page_url,omitempty"`
	SortOrder     int      `bson:"sort_order" json:"sort_order"`
}

const (
	LinkTypeWebsite  = "website"
	LinkTypeGitHub   = "github"
	LinkTypeAppStore = "app-store"
)
