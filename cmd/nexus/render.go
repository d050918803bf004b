package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/site/pages"
	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render <route>",
		Short: "Write a page's HTML to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			html, _, err := renderRoute(a.store.Get(), args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(html)
			return err
		},
	}
}

// renderRoute renders the page at path and returns its HTML and title.
func renderRoute(c *content.Content, path string) ([]byte, string, error) {
	route, ok := pages.Lookup(path)
	if !ok {
		return nil, "", fmt.Errorf("unknown route %q", path)
	}
	var buf bytes.Buffer
	if err := route.Render(c).Render(&buf); err != nil {
		return nil, "", nexuserrors.NewRenderError(route.Path, err)
	}
	return buf.Bytes(), route.Meta().Title, nil
}
