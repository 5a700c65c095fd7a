package main

import (
	"github.com/spf13/cobra"
)

func newSitemapCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml for the page table to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.head.WriteSitemap(cmd.OutOrStdout())
		},
	}
}

func newRobotsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "robots",
		Short: "Write robots.txt to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.head.WriteRobots(cmd.OutOrStdout())
		},
	}
}
