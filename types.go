package seometa

// PageType is the Open Graph object type of a page.
type PageType string

const (
	TypeWebsite PageType = "website"
	TypeArticle PageType = "article"
)

// PageMetadata is the per-path SEO record stored in a Table.
// Title, Description and URL are required; everything else is optional and
// falls back to SiteConfig values when rendered.
type PageMetadata struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	URL          string   `yaml:"url"`
	Image        string   `yaml:"image,omitempty"`
	ImageWidth   string   `yaml:"imageWidth,omitempty"`
	ImageHeight  string   `yaml:"imageHeight,omitempty"`
	Type         PageType `yaml:"type,omitempty"`
	ModifiedTime string   `yaml:"modifiedTime,omitempty"` // ISO-8601
	Keywords     string   `yaml:"keywords,omitempty"`
}

// Overrides are caller-supplied values that win over the table and the site
// defaults. Empty fields are ignored.
type Overrides struct {
	Title       string
	Description string
	Image       string
	Type        PageType
	URL         string
}

// Resolved is the merged record a single render works from.
type Resolved struct {
	Title        string
	Description  string
	Image        string
	ImageWidth   string
	ImageHeight  string
	Type         PageType
	URL          string // canonical + og:url
	ModifiedTime string
	Keywords     string
}
