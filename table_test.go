package seometa

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsValid(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())

	for path, m := range table {
		assert.NotEmpty(t, m.Title, path)
		assert.NotEmpty(t, m.Description, path)
		assert.NotEmpty(t, m.URL, path)
	}
}

func TestDefaultTablePaths(t *testing.T) {
	want := []string{
		"/",
		"/battery-guide",
		"/battery-selector",
		"/cart",
		"/contact",
		"/products",
		"/products/golf-cart",
		"/products/lsv",
		"/products/msv",
		"/products/nev",
	}
	assert.Equal(t, want, DefaultTable().Paths())
}

func TestDefaultTableReturnsCopy(t *testing.T) {
	a := DefaultTable()
	a["/"] = PageMetadata{Title: "changed"}
	delete(a, "/cart")

	b := DefaultTable()
	assert.NotEqual(t, "changed", b["/"].Title)
	assert.Contains(t, b, "/cart")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{
			name:    "missing root",
			table:   Table{"/a": {Title: "A", Description: "A", URL: "https://x/a"}},
			wantErr: `no "/" entry`,
		},
		{
			name:    "missing title",
			table:   Table{"/": {Description: "D", URL: "https://x"}},
			wantErr: "/: title is required",
		},
		{
			name:    "blank description",
			table:   Table{"/": {Title: "T", Description: "  ", URL: "https://x"}},
			wantErr: "/: description is required",
		},
		{
			name:    "missing url",
			table:   Table{"/": {Title: "T", Description: "D"}},
			wantErr: "/: url is required",
		},
		{
			name: "relative path",
			table: Table{
				"/":     {Title: "T", Description: "D", URL: "https://x"},
				"about": {Title: "T", Description: "D", URL: "https://x/about"},
			},
			wantErr: `path "about" must start with "/"`,
		},
		{
			name:    "unknown type",
			table:   Table{"/": {Title: "T", Description: "D", URL: "https://x", Type: "video"}},
			wantErr: `unknown type "video"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateMissingRootIsSentinel(t *testing.T) {
	err := Table{}.Validate()
	assert.True(t, errors.Is(err, ErrMissingRoot))
}

const sampleTable = `
/:
  title: Home
  description: Home page
  url: https://cartbatterydepot.com
  keywords: golf cart batteries
/battery-guide:
  title: Guide
  description: Battery guide
  url: https://cartbatterydepot.com/battery-guide
  type: article
  modifiedTime: "2024-03-10T09:00:00.000Z"
  image: https://cartbatterydepot.com/guide.png
  imageWidth: "1200"
  imageHeight: "630"
`

func TestLoadTable(t *testing.T) {
	table, err := LoadTable(strings.NewReader(sampleTable))
	require.NoError(t, err)

	require.Len(t, table, 2)
	assert.Equal(t, "golf cart batteries", table["/"].Keywords)
	guide := table["/battery-guide"]
	assert.Equal(t, TypeArticle, guide.Type)
	assert.Equal(t, "2024-03-10T09:00:00.000Z", guide.ModifiedTime)
	assert.Equal(t, "1200", guide.ImageWidth)
	assert.Equal(t, "630", guide.ImageHeight)
}

func TestLoadTableRejectsInvalid(t *testing.T) {
	_, err := LoadTable(strings.NewReader("/about:\n  title: About\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRoot)

	_, err = LoadTable(strings.NewReader("- not\n- a map\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode table")
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/battery-guide"}, table.Paths())

	_, err = LoadTableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
