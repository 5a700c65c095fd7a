package seometa

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// SiteConfig holds the site-wide values every page falls back to.
// Verification codes and social URLs are optional; an empty value omits the tag.
type SiteConfig struct {
	Name string `mapstructure:"name"` // og:site_name
	URL  string `mapstructure:"url"`  // Base URL, no trailing slash

	DefaultImage       string `mapstructure:"default_image"`
	DefaultImageWidth  string `mapstructure:"default_image_width"`
	DefaultImageHeight string `mapstructure:"default_image_height"`
	DefaultImageType   string `mapstructure:"default_image_type"` // default "image/png"

	FacebookPageURL  string `mapstructure:"facebook_page_url"` // article:publisher
	TwitterHandle    string `mapstructure:"twitter_handle"`
	SocialProfileURL string `mapstructure:"social_profile_url"` // link rel=me

	GoogleVerification    string `mapstructure:"google_verification"`
	BingVerification      string `mapstructure:"bing_verification"`
	PinterestVerification string `mapstructure:"pinterest_verification"`
	YandexVerification    string `mapstructure:"yandex_verification"`

	DefaultType PageType `mapstructure:"default_type"` // default "website"
	Locale      string   `mapstructure:"locale"`       // default "en_US"
}

// DefaultSiteConfig returns the Cart Battery Depot storefront settings.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Name:               "Cart Battery Depot",
		URL:                "https://cartbatterydepot.com",
		DefaultImage:       "https://cartbatterydepot.com/cart-battery-depot-logo.png",
		DefaultImageWidth:  "800",
		DefaultImageHeight: "800",
		DefaultImageType:   "image/png",
		FacebookPageURL:    "https://facebook.com/cartbatterydepot",
		TwitterHandle:      "@CartBatteryDepot",
		SocialProfileURL:   "https://twitter.com/cartbatterydepot",
		DefaultType:        TypeWebsite,
		Locale:             "en_US",
	}
}

func (c *SiteConfig) setDefaults() {
	c.URL = strings.TrimRight(c.URL, "/")
	if c.DefaultImageType == "" {
		c.DefaultImageType = "image/png"
	}
	if c.DefaultType == "" {
		c.DefaultType = TypeWebsite
	}
	if c.Locale == "" {
		c.Locale = "en_US"
	}
}

// Option configures additional Head behavior.
type Option func(*Head)

// WithTable replaces the built-in metadata table.
func WithTable(t Table) Option {
	return func(h *Head) {
		h.Table = t
	}
}

// WithClock sets the time source used for the default article:modified_time.
func WithClock(now func() time.Time) Option {
	return func(h *Head) {
		h.now = now
	}
}

// WithLogger sets the logger used for resolver diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(h *Head) {
		h.logger = l
	}
}

// WithJSONLD makes Component append schema.org Organization and WebPage
// JSON-LD scripts after the meta tags.
func WithJSONLD(enabled bool) Option {
	return func(h *Head) {
		h.jsonLD = enabled
	}
}
