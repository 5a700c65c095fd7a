package seometa

import (
	"encoding/xml"
	"fmt"
	"io"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemaps.org urlset with one entry per table path.
func (h *Head) WriteSitemap(w io.Writer) error {
	urls := make([]sitemapURL, 0, len(h.Table))
	for _, p := range h.Table.Paths() {
		m := h.Table[p]
		urls = append(urls, sitemapURL{
			Loc:     m.URL,
			LastMod: lastModDate(m.ModifiedTime),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("seometa: write sitemap: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return fmt.Errorf("seometa: write sitemap: %w", err)
	}
	return nil
}

// WriteRobots writes a robots.txt allowing all crawlers and pointing at the sitemap.
func (h *Head) WriteRobots(w io.Writer) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.Config.URL)
	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("seometa: write robots: %w", err)
	}
	return nil
}

// lastModDate keeps the date part of an ISO-8601 timestamp.
func lastModDate(ts string) string {
	if len(ts) >= len("2006-01-02") {
		return ts[:len("2006-01-02")]
	}
	return ts
}
