package seometa

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, h *Head, path string, o Overrides) string {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buf.WriteString(`<link rel="stylesheet" href="/public/app.css">`)
	require.NoError(t, h.Component(path, o).Render(context.Background(), &buf))
	buf.WriteString(`</head><body><h1>Cart Battery Depot</h1></body></html>`)
	return buf.String()
}

func TestExtractTagsRoundTrip(t *testing.T) {
	h := newTestHead(t, DefaultSiteConfig())
	paths := append(DefaultTable().Paths(), "/product/abc123")

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			want := h.Tags(path, Overrides{})
			got, err := ExtractTags(strings.NewReader(renderPage(t, h, path, Overrides{})))
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Empty(t, Audit(want, got))
		})
	}
}

func TestAuditModifiedTimeIsPresenceOnly(t *testing.T) {
	page := renderPage(t, newTestHead(t, DefaultSiteConfig()), "/product/abc123", Overrides{})
	later := newTestHead(t, DefaultSiteConfig(), WithClock(func() time.Time { return fixedNow.Add(time.Hour) }))

	got, err := ExtractTags(strings.NewReader(page))
	require.NoError(t, err)
	assert.Empty(t, Audit(later.Tags("/product/abc123", Overrides{}), got))
}

func TestAuditFindings(t *testing.T) {
	h := newTestHead(t, DefaultSiteConfig())
	want := h.Tags("/contact", Overrides{})

	page := renderPage(t, h, "/contact", Overrides{Title: "Old title"})
	page = strings.Replace(page, `<link rel="canonical" href="https://cartbatterydepot.com/contact">`, "", 1)
	page = strings.Replace(page, "</head>", `<meta name="google-site-verification" content="stale"></head>`, 1)

	got, err := ExtractTags(strings.NewReader(page))
	require.NoError(t, err)
	findings := Audit(want, got)

	byID := make(map[string]Finding)
	for _, f := range findings {
		byID[f.ID] = f
	}

	assert.Equal(t, FindingMismatch, byID["title"].Kind)
	assert.Equal(t, "Old title", byID["title"].Got)
	assert.Equal(t, FindingMismatch, byID["meta[property=og:title]"].Kind)
	assert.Equal(t, FindingMissing, byID["link[rel=canonical]"].Kind)
	assert.Equal(t, FindingUnexpected, byID["meta[name=google-site-verification]"].Kind)
	assert.Equal(t, "stale", byID["meta[name=google-site-verification]"].Got)
	assert.Equal(t, FindingUnexpected, findings[len(findings)-1].Kind)
}

func TestFindingString(t *testing.T) {
	assert.Equal(t, `missing link[rel=canonical] (want "https://x")`,
		Finding{Kind: FindingMissing, ID: "link[rel=canonical]", Want: "https://x"}.String())
	assert.Equal(t, `unexpected meta[name=keywords] (got "a")`,
		Finding{Kind: FindingUnexpected, ID: "meta[name=keywords]", Got: "a"}.String())
	assert.Equal(t, `mismatch title: want "a", got "b"`,
		Finding{Kind: FindingMismatch, ID: "title", Want: "a", Got: "b"}.String())
}
