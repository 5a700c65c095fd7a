// Package config loads seometa settings from a YAML file and SEOMETA_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/cartbatterydepot/seometa"
)

// Environment variable prefix for seometa configuration.
const envPrefix = "SEOMETA"

// Config is the resolved CLI configuration.
type Config struct {
	Site seometa.SiteConfig `mapstructure:"site"`
	// Table is an optional path to a YAML page table. Empty means the
	// built-in table.
	Table string `mapstructure:"table"`
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader whose defaults are DefaultSiteConfig.
// Environment variables take precedence over file values, e.g.
// SEOMETA_SITE_GOOGLE_VERIFICATION or SEOMETA_TABLE.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := seometa.DefaultSiteConfig()
	defaults := map[string]any{
		"site.name":                   def.Name,
		"site.url":                    def.URL,
		"site.default_image":          def.DefaultImage,
		"site.default_image_width":    def.DefaultImageWidth,
		"site.default_image_height":   def.DefaultImageHeight,
		"site.default_image_type":     def.DefaultImageType,
		"site.facebook_page_url":      def.FacebookPageURL,
		"site.twitter_handle":         def.TwitterHandle,
		"site.social_profile_url":     def.SocialProfileURL,
		"site.google_verification":    def.GoogleVerification,
		"site.bing_verification":      def.BingVerification,
		"site.pinterest_verification": def.PinterestVerification,
		"site.yandex_verification":    def.YandexVerification,
		"site.default_type":           string(def.DefaultType),
		"site.locale":                 def.Locale,
		"table":                       "",
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	return &Loader{v: v}
}

// Load reads configFile when it is non-empty (falling back to SEOMETA_CONFIG)
// and unmarshals the merged settings. A missing file is an error only when
// one was named explicitly.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = os.Getenv(envPrefix + "_CONFIG")
	}

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", configFile, err)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Head builds a seometa.Head from the configuration, loading the page table
// from disk when one is configured.
func (c *Config) Head(opts ...seometa.Option) (*seometa.Head, error) {
	if c.Table != "" {
		t, err := seometa.LoadTableFile(c.Table)
		if err != nil {
			return nil, err
		}
		opts = append([]seometa.Option{seometa.WithTable(t)}, opts...)
	}
	return seometa.New(c.Site, opts...), nil
}
