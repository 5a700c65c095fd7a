package seometa

import (
	"time"

	"github.com/a-h/templ"
)

// TagKind is the HTML element a Tag renders as.
type TagKind string

const (
	KindTitle TagKind = "title"
	KindMeta  TagKind = "meta"
	KindLink  TagKind = "link"
)

// Tag is one head declaration. For meta tags Attr is "name" or "property" and
// Value is the content attribute; for link tags Attr is "rel" and Value is the
// href; for the title element Attr and Key are empty and Value is the text.
type Tag struct {
	Kind  TagKind `json:"kind"`
	Attr  string  `json:"attr,omitempty"`
	Key   string  `json:"key,omitempty"`
	Value string  `json:"value"`
}

// ID identifies a tag independently of its value.
func (t Tag) ID() string {
	if t.Kind == KindTitle {
		return string(KindTitle)
	}
	return string(t.Kind) + "[" + t.Attr + "=" + t.Key + "]"
}

// HTML returns the escaped element for t.
func (t Tag) HTML() string {
	switch t.Kind {
	case KindTitle:
		return "<title>" + templ.EscapeString(t.Value) + "</title>"
	case KindLink:
		return `<link rel="` + templ.EscapeString(t.Key) + `" href="` + templ.EscapeString(t.Value) + `">`
	default:
		return `<meta ` + t.Attr + `="` + templ.EscapeString(t.Key) + `" content="` + templ.EscapeString(t.Value) + `">`
	}
}

const (
	twitterCard      = "summary_large_image"
	robotsDirective  = "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1"
	crawlerDirective = "index, follow"

	// Millisecond ISO-8601 in UTC, e.g. 2024-05-01T12:00:00.000Z.
	isoTimestamp = "2006-01-02T15:04:05.000Z07:00"
)

// Timestamp formats t the way article:modified_time expects it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(isoTimestamp)
}

// Merge resolves path and layers o over the page record and the site
// defaults. The first non-empty value wins.
func (h *Head) Merge(path string, o Overrides) Resolved {
	page := h.Resolve(path)
	cfg := h.Config
	return Resolved{
		Title:        firstNonEmpty(o.Title, page.Title),
		Description:  firstNonEmpty(o.Description, page.Description),
		Image:        firstNonEmpty(o.Image, page.Image, cfg.DefaultImage),
		ImageWidth:   firstNonEmpty(page.ImageWidth, cfg.DefaultImageWidth),
		ImageHeight:  firstNonEmpty(page.ImageHeight, cfg.DefaultImageHeight),
		Type:         PageType(firstNonEmpty(string(o.Type), string(page.Type), string(cfg.DefaultType))),
		URL:          firstNonEmpty(o.URL, page.URL, cfg.URL+path),
		ModifiedTime: firstNonEmpty(page.ModifiedTime, Timestamp(h.now())),
		Keywords:     page.Keywords,
	}
}

// Tags returns the ordered head tags for path with o applied.
func (h *Head) Tags(path string, o Overrides) []Tag {
	return BuildTags(h.Merge(path, o), h.Config)
}

// BuildTags maps a resolved record and the site config to head tags.
// Conditional tags are omitted when their value is empty.
func BuildTags(r Resolved, cfg SiteConfig) []Tag {
	var b tagBuilder
	article := r.Type == TypeArticle

	b.title(r.Title)
	b.name("description", r.Description)
	b.optional(b.name, "keywords", r.Keywords)

	b.property("og:locale", cfg.Locale)
	b.property("og:type", string(r.Type))
	b.property("og:title", r.Title)
	b.property("og:description", r.Description)
	b.property("og:url", r.URL)
	b.property("og:site_name", cfg.Name)

	if article {
		b.optional(b.property, "article:publisher", cfg.FacebookPageURL)
		b.optional(b.property, "article:modified_time", r.ModifiedTime)
	}

	b.property("og:image", r.Image)
	b.property("og:image:width", r.ImageWidth)
	b.property("og:image:height", r.ImageHeight)
	b.property("og:image:type", cfg.DefaultImageType)
	b.property("og:image:alt", r.Title)

	b.name("twitter:card", twitterCard)
	b.name("twitter:title", r.Title)
	b.name("twitter:description", r.Description)
	b.name("twitter:image", r.Image)
	b.optional(b.name, "twitter:site", cfg.TwitterHandle)
	b.name("twitter:image:alt", r.Title)

	b.link("canonical", r.URL)

	b.name("robots", robotsDirective)
	b.name("googlebot", crawlerDirective)
	b.name("bingbot", crawlerDirective)

	b.optional(b.name, "google-site-verification", cfg.GoogleVerification)
	b.optional(b.name, "msvalidate.01", cfg.BingVerification)
	b.optional(b.name, "p:domain_verify", cfg.PinterestVerification)
	b.optional(b.name, "yandex-verification", cfg.YandexVerification)

	b.optional(b.link, "me", cfg.SocialProfileURL)

	return b.tags
}

type tagBuilder struct {
	tags []Tag
}

func (b *tagBuilder) title(v string) {
	b.tags = append(b.tags, Tag{Kind: KindTitle, Value: v})
}

func (b *tagBuilder) name(key, v string) {
	b.tags = append(b.tags, Tag{Kind: KindMeta, Attr: "name", Key: key, Value: v})
}

func (b *tagBuilder) property(key, v string) {
	b.tags = append(b.tags, Tag{Kind: KindMeta, Attr: "property", Key: key, Value: v})
}

func (b *tagBuilder) link(rel, href string) {
	b.tags = append(b.tags, Tag{Kind: KindLink, Attr: "rel", Key: rel, Value: href})
}

func (b *tagBuilder) optional(emit func(key, v string), key, v string) {
	if v == "" {
		return
	}
	emit(key, v)
}
