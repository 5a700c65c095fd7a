package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartbatterydepot/seometa"
)

type renderOptions struct {
	overrides seometa.Overrides
	pageType  string
	format    string
}

func newRenderCmd(c *cli) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render the head tags for a path",
		Long: `Render resolves the metadata for a URL path and prints the head tags a page
at that path would carry. Flags override the table and site defaults.`,
		Example: `  seometa render /
  seometa render /product/abc123 --format json
  seometa render /contact --title "Call us"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.overrides.Title, "title", "", "override the page title")
	cmd.Flags().StringVar(&opts.overrides.Description, "description", "", "override the page description")
	cmd.Flags().StringVar(&opts.overrides.Image, "image", "", "override the share image URL")
	cmd.Flags().StringVar(&opts.pageType, "type", "", "override the page type (website|article)")
	cmd.Flags().StringVar(&opts.overrides.URL, "url", "", "override the canonical URL")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "html", "output format (html|json)")

	return cmd
}

func (c *cli) runRender(cmd *cobra.Command, path string, opts *renderOptions) error {
	switch seometa.PageType(opts.pageType) {
	case "", seometa.TypeWebsite, seometa.TypeArticle:
		opts.overrides.Type = seometa.PageType(opts.pageType)
	default:
		return fmt.Errorf("invalid --type %q: must be website or article", opts.pageType)
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "html":
		return c.head.Component(path, opts.overrides).Render(cmd.Context(), out)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Path string        `json:"path"`
			Tags []seometa.Tag `json:"tags"`
		}{
			Path: path,
			Tags: c.head.Tags(path, opts.overrides),
		})
	default:
		return fmt.Errorf("invalid --format %q: must be html or json", opts.format)
	}
}
