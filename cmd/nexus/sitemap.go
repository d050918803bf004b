package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nexus/internal/sitemap"
)

func newSitemapCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Print sitemap.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			entries := sitemap.Generate(a.baseURL(), sitemap.Routes, a.lastModified())
			return sitemap.WriteXML(cmd.OutOrStdout(), entries)
		},
	}
}
