package seometa

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSitemap(t *testing.T) {
	h := newTestHead(t, DefaultSiteConfig())

	var buf bytes.Buffer
	require.NoError(t, h.WriteSitemap(&buf))
	require.True(t, strings.HasPrefix(buf.String(), xml.Header))

	var got sitemapURLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", got.XMLNS)
	require.Len(t, got.URLs, len(DefaultTable()))
	assert.Equal(t, "https://cartbatterydepot.com", got.URLs[0].Loc)
	assert.Equal(t, "https://cartbatterydepot.com/battery-guide", got.URLs[1].Loc)
	for _, u := range got.URLs {
		assert.Empty(t, u.LastMod)
	}
}

func TestWriteSitemapLastMod(t *testing.T) {
	table := Table{
		"/": {Title: "Home", Description: "Home", URL: "https://cartbatterydepot.com"},
		"/battery-guide": {
			Title:        "Guide",
			Description:  "Guide",
			URL:          "https://cartbatterydepot.com/battery-guide",
			ModifiedTime: "2024-03-10T09:00:00.000Z",
		},
	}
	h := newTestHead(t, DefaultSiteConfig(), WithTable(table))

	var buf bytes.Buffer
	require.NoError(t, h.WriteSitemap(&buf))
	assert.Contains(t, buf.String(), "<lastmod>2024-03-10</lastmod>")
}

func TestWriteRobots(t *testing.T) {
	h := newTestHead(t, DefaultSiteConfig())

	var buf bytes.Buffer
	require.NoError(t, h.WriteRobots(&buf))
	assert.Equal(t, "User-agent: *\nAllow: /\n\nSitemap: https://cartbatterydepot.com/sitemap.xml\n", buf.String())
}

func TestLastModDate(t *testing.T) {
	assert.Equal(t, "2024-03-10", lastModDate("2024-03-10T09:00:00.000Z"))
	assert.Equal(t, "2024-03-10", lastModDate("2024-03-10"))
	assert.Equal(t, "", lastModDate(""))
}
