package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartbatterydepot/seometa"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SEOMETA_CONFIG", "")

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, seometa.DefaultSiteConfig(), cfg.Site)
	assert.Empty(t, cfg.Table)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SEOMETA_CONFIG", "")
	t.Setenv("SEOMETA_SITE_GOOGLE_VERIFICATION", "g-123")
	t.Setenv("SEOMETA_SITE_URL", "https://staging.cartbatterydepot.com")

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, "g-123", cfg.Site.GoogleVerification)
	assert.Equal(t, "https://staging.cartbatterydepot.com", cfg.Site.URL)
	assert.Equal(t, "Cart Battery Depot", cfg.Site.Name)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "seometa.yaml", `
site:
  name: Cart Battery Depot Staging
  bing_verification: b-456
  default_type: article
table: pages.yaml
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Cart Battery Depot Staging", cfg.Site.Name)
	assert.Equal(t, "b-456", cfg.Site.BingVerification)
	assert.Equal(t, seometa.TypeArticle, cfg.Site.DefaultType)
	assert.Equal(t, "https://cartbatterydepot.com", cfg.Site.URL)
	assert.Equal(t, "pages.yaml", cfg.Table)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "seometa.yaml", "site:\n  yandex_verification: from-file\n")
	t.Setenv("SEOMETA_SITE_YANDEX_VERIFICATION", "from-env")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Site.YandexVerification)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "seometa.yaml", "site:\n  pinterest_verification: p-789\n")
	t.Setenv("SEOMETA_CONFIG", path)

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, "p-789", cfg.Site.PinterestVerification)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHeadWithTableFile(t *testing.T) {
	dir := t.TempDir()
	table := writeFile(t, dir, "pages.yaml", `
/:
  title: Home
  description: Home page
  url: https://cartbatterydepot.com
/warranty:
  title: Warranty
  description: Battery warranty terms
  url: https://cartbatterydepot.com/warranty
`)

	cfg := &Config{Site: seometa.DefaultSiteConfig(), Table: table}
	head, err := cfg.Head()
	require.NoError(t, err)

	assert.Equal(t, []string{"/", "/warranty"}, head.Table.Paths())
	assert.Equal(t, "Warranty", head.Resolve("/warranty").Title)
}

func TestHeadWithInvalidTable(t *testing.T) {
	table := writeFile(t, t.TempDir(), "pages.yaml", "/warranty:\n  title: Warranty\n")

	cfg := &Config{Site: seometa.DefaultSiteConfig(), Table: table}
	_, err := cfg.Head()
	assert.ErrorIs(t, err, seometa.ErrMissingRoot)
}

func TestHeadBuiltInTable(t *testing.T) {
	cfg := &Config{Site: seometa.DefaultSiteConfig()}
	head, err := cfg.Head()
	require.NoError(t, err)
	assert.Equal(t, seometa.DefaultTable(), head.Table)
}
