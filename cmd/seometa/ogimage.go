package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cartbatterydepot/seometa/internal/output"
)

func newOGImageCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ogimage <src> <dst>",
		Short: "Scale an image to the configured share image size",
		Long: `ogimage decodes src (PNG, JPEG, GIF or WebP), scales it to the configured
default_image_width x default_image_height and writes it to dst encoded as
default_image_type.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening source image: %w", err)
			}
			defer src.Close()

			dst, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("creating output image: %w", err)
			}

			info, err := c.head.PrepareShareImage(src, dst)
			if cerr := dst.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("closing output image: %w", cerr)
			}
			if err != nil {
				os.Remove(args[1])
				return err
			}

			output.Info("share image written",
				"path", args[1],
				"width", info.Width,
				"height", info.Height,
				"type", info.MIMEType,
			)
			return nil
		},
	}
}
