package main

import (
	"github.com/spf13/cobra"

	"github.com/cartbatterydepot/seometa"
	"github.com/cartbatterydepot/seometa/internal/config"
	"github.com/cartbatterydepot/seometa/internal/output"
)

// cli carries global flag values and the Head built from them.
type cli struct {
	configFile string
	verbose    bool

	cfg  *config.Config
	head *seometa.Head
}

// NewRootCmd builds the seometa command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "seometa",
		Short: "Per-page SEO head tags for Cart Battery Depot",
		Long: `seometa resolves the storefront's per-page SEO metadata and renders it as
document head tags (title, description, Open Graph, Twitter Card, canonical,
robots and verification tags).

It provides commands to:
  - Render the head tags for a path
  - Validate the page table and site configuration
  - Write sitemap.xml and robots.txt
  - Audit a live or saved page against the expected tags
  - Prepare the default share image`,
		PersistentPreRunE: c.initialize,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "path to config file (env: SEOMETA_CONFIG)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "increase output verbosity")

	root.AddCommand(newRenderCmd(c))
	root.AddCommand(newCheckCmd(c))
	root.AddCommand(newSitemapCmd(c))
	root.AddCommand(newRobotsCmd(c))
	root.AddCommand(newAuditCmd(c))
	root.AddCommand(newOGImageCmd(c))
	root.AddCommand(newVersionCmd())

	return root
}

// initialize sets up logging and loads configuration.
func (c *cli) initialize(_ *cobra.Command, _ []string) error {
	output.SetupLogging(c.verbose)

	cfg, err := config.NewLoader().Load(c.configFile)
	if err != nil {
		return err
	}
	head, err := cfg.Head(seometa.WithLogger(output.Logger))
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.head = head

	output.Debug("configuration loaded",
		"site", head.Config.URL,
		"table", tableSource(cfg),
		"paths", len(head.Table),
	)
	return nil
}

func tableSource(cfg *config.Config) string {
	if cfg.Table == "" {
		return "built-in"
	}
	return cfg.Table
}
