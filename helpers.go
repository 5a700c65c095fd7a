package seometa

import (
	"encoding/json"
)

// firstNonEmpty returns the first value that is not the empty string.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// OrganizationJSONLD returns a JSON-LD string for an Organization schema using SiteConfig.
func OrganizationJSONLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     cfg.Name,
		"url":      cfg.URL,
	}
	if cfg.DefaultImage != "" {
		data["logo"] = cfg.DefaultImage
	}
	var sameAs []string
	for _, u := range []string{cfg.FacebookPageURL, cfg.SocialProfileURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebPageJSONLD returns a JSON-LD string describing a resolved page. Article
// pages are typed Article and carry dateModified.
func WebPageJSONLD(cfg SiteConfig, r Resolved) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        r.Title,
		"description": r.Description,
		"url":         r.URL,
		"image":       r.Image,
		"inLanguage":  cfg.Locale,
		"isPartOf": map[string]string{
			"@type": "WebSite",
			"name":  cfg.Name,
			"url":   cfg.URL,
		},
	}
	if r.Type == TypeArticle {
		data["@type"] = "Article"
		data["headline"] = r.Title
		data["dateModified"] = r.ModifiedTime
		data["mainEntityOfPage"] = map[string]string{
			"@type": "WebPage",
			"@id":   r.URL,
		}
	}
	if r.Keywords != "" {
		data["keywords"] = r.Keywords
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
