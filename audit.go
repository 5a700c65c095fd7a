package seometa

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindingKind classifies an audit difference.
type FindingKind string

const (
	FindingMissing    FindingKind = "missing"
	FindingUnexpected FindingKind = "unexpected"
	FindingMismatch   FindingKind = "mismatch"
)

// Finding is one difference between the expected and the observed head.
type Finding struct {
	Kind FindingKind
	ID   string
	Want string
	Got  string
}

func (f Finding) String() string {
	switch f.Kind {
	case FindingMissing:
		return fmt.Sprintf("missing %s (want %q)", f.ID, f.Want)
	case FindingUnexpected:
		return fmt.Sprintf("unexpected %s (got %q)", f.ID, f.Got)
	default:
		return fmt.Sprintf("mismatch %s: want %q, got %q", f.ID, f.Want, f.Got)
	}
}

// presenceOnly lists tags whose value depends on render time.
var presenceOnly = map[string]bool{
	"meta[property=article:modified_time]": true,
}

var metaAttrs = []string{"name", "property"}

// knownLinkRels are the link relations this package emits.
var knownLinkRels = map[string]bool{"canonical": true, "me": true}

// knownMetaKeys are the meta names and properties this package emits.
var knownMetaKeys = map[string]bool{
	"description": true, "keywords": true,
	"og:locale": true, "og:type": true, "og:title": true, "og:description": true,
	"og:url": true, "og:site_name": true, "og:image": true, "og:image:width": true,
	"og:image:height": true, "og:image:type": true, "og:image:alt": true,
	"article:publisher": true, "article:modified_time": true,
	"twitter:card": true, "twitter:title": true, "twitter:description": true,
	"twitter:image": true, "twitter:site": true, "twitter:image:alt": true,
	"robots": true, "googlebot": true, "bingbot": true,
	"google-site-verification": true, "msvalidate.01": true,
	"p:domain_verify": true, "yandex-verification": true,
}

// ExtractTags parses an HTML document and returns, in document order, the
// head tags of the vocabulary BuildTags emits. Stylesheets, charset and
// viewport declarations are ignored.
func ExtractTags(r io.Reader) ([]Tag, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("seometa: parse html: %w", err)
	}

	var tags []Tag
	doc.Find("head title, head meta, head link").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "title":
			tags = append(tags, Tag{Kind: KindTitle, Value: s.Text()})
		case "link":
			rel := strings.TrimSpace(s.AttrOr("rel", ""))
			if knownLinkRels[rel] {
				tags = append(tags, Tag{Kind: KindLink, Attr: "rel", Key: rel, Value: s.AttrOr("href", "")})
			}
		case "meta":
			content, ok := s.Attr("content")
			if !ok {
				return
			}
			for _, attr := range metaAttrs {
				if key, ok := s.Attr(attr); ok && knownMetaKeys[key] {
					tags = append(tags, Tag{Kind: KindMeta, Attr: attr, Key: key, Value: content})
					return
				}
			}
		}
	})
	return tags, nil
}

// Audit compares the expected tags against those found on a page. Findings
// are reported in the order of want, followed by unexpected tags in the
// order of got. Only the first occurrence of each tag ID is compared.
func Audit(want, got []Tag) []Finding {
	seen := make(map[string]string, len(got))
	var gotOrder []string
	for _, t := range got {
		id := t.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = t.Value
		gotOrder = append(gotOrder, id)
	}

	var findings []Finding
	expected := make(map[string]bool, len(want))
	for _, t := range want {
		id := t.ID()
		expected[id] = true
		v, ok := seen[id]
		switch {
		case !ok:
			findings = append(findings, Finding{Kind: FindingMissing, ID: id, Want: t.Value})
		case presenceOnly[id]:
		case v != t.Value:
			findings = append(findings, Finding{Kind: FindingMismatch, ID: id, Want: t.Value, Got: v})
		}
	}
	for _, id := range gotOrder {
		if !expected[id] {
			findings = append(findings, Finding{Kind: FindingUnexpected, ID: id, Got: seen[id]})
		}
	}
	return findings
}
