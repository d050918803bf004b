package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "nexus",
		Short:         "Nexus serves the marketing site and its contact endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "Settings file (yaml, toml or json)")
	pf.String("content", "", "Site content file; the embedded copy is used when empty")
	pf.String("base-url", "", "Public base URL; defaults to the site url in content")
	pf.String("repo-dir", ".", "Git repository whose HEAD commit dates the sitemap")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.String("log-format", "auto", "Log format (auto, json, console)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newSitemapCmd(flags))
	cmd.AddCommand(newRoutesCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newContactCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
