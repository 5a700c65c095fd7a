// Package seometa resolves per-page SEO metadata for the Cart Battery Depot
// storefront and renders it as document head tags.
//
// A Head bundles the site-wide SiteConfig with a static path-keyed Table.
// For every render the current path is resolved against the table, caller
// overrides are merged over the result, site defaults fill the gaps, and a
// fixed, ordered set of title, meta and link tags is produced. The tags can
// be consumed as data (Tags), as a templ component (Component), or through
// the echo middleware for handlers that render templ layouts.
package seometa

import (
	"time"

	"github.com/charmbracelet/log"
)

// Head is the read-only metadata engine. It is safe for concurrent use.
type Head struct {
	Config SiteConfig
	Table  Table

	now    func() time.Time
	logger *log.Logger
	jsonLD bool
}

// New creates a Head with the given site configuration. The built-in table
// is used unless WithTable is supplied.
func New(cfg SiteConfig, opts ...Option) *Head {
	cfg.setDefaults()

	h := &Head{
		Config: cfg,
		Table:  DefaultTable(),
		now:    time.Now,
		logger: log.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}
