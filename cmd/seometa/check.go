package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/cartbatterydepot/seometa"
	"github.com/cartbatterydepot/seometa/internal/output"
)

// Lengths search engines typically display before truncating.
const (
	maxTitleLen       = 60
	maxDescriptionLen = 160
)

func newCheckCmd(c *cli) *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the page table and site configuration",
		Long: `check validates every table entry (title, description and url present, known
type, "/" fallback defined), warns about titles and descriptions likely to be
truncated in search results, and reports which verification tags are
configured. With --image it also verifies a local copy of the default share
image matches the configured og:image dimensions and type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runCheck(cmd, imagePath)
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "local copy of the default share image to verify")

	return cmd
}

func (c *cli) runCheck(cmd *cobra.Command, imagePath string) error {
	h := c.head
	if err := h.Table.Validate(); err != nil {
		return fmt.Errorf("invalid page table: %w", err)
	}

	for _, p := range h.Table.Paths() {
		m := h.Table[p]
		if n := utf8.RuneCountInString(m.Title); n > maxTitleLen {
			output.Warn("title may be truncated", "path", p, "length", n, "max", maxTitleLen)
		}
		if n := utf8.RuneCountInString(m.Description); n > maxDescriptionLen {
			output.Warn("description may be truncated", "path", p, "length", n, "max", maxDescriptionLen)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "table: %d paths (%s)\n", len(h.Table), tableSource(c.cfg))

	verifications := []struct {
		name, code string
	}{
		{"google-site-verification", h.Config.GoogleVerification},
		{"msvalidate.01", h.Config.BingVerification},
		{"p:domain_verify", h.Config.PinterestVerification},
		{"yandex-verification", h.Config.YandexVerification},
	}
	for _, v := range verifications {
		state := "not configured"
		if v.code != "" {
			state = "configured"
		}
		fmt.Fprintf(out, "%s: %s\n", v.name, state)
	}

	if imagePath != "" {
		if err := checkShareImage(h.Config, imagePath); err != nil {
			return err
		}
		fmt.Fprintf(out, "share image: ok\n")
	}
	return nil
}

func checkShareImage(cfg seometa.SiteConfig, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening share image: %w", err)
	}
	defer f.Close()

	info, err := seometa.ReadImageInfo(f)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(info.Width); got != cfg.DefaultImageWidth {
		return fmt.Errorf("share image width is %s, config says %s", got, cfg.DefaultImageWidth)
	}
	if got := fmt.Sprint(info.Height); got != cfg.DefaultImageHeight {
		return fmt.Errorf("share image height is %s, config says %s", got, cfg.DefaultImageHeight)
	}
	if info.MIMEType != cfg.DefaultImageType {
		return fmt.Errorf("share image type is %s, config says %s", info.MIMEType, cfg.DefaultImageType)
	}
	return nil
}
