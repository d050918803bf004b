package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nexus/internal/site/pages"
	"github.com/alexisbeaulieu97/nexus/internal/sitemap"
	"github.com/alexisbeaulieu97/nexus/internal/tui"
)

func newRoutesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the site's pages with their sitemap priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), routesTable(a.baseURL()))
			return nil
		},
	}
}

func routesTable(baseURL string) string {
	entries := sitemap.Generate(baseURL, sitemap.Routes, time.Time{})
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		route, _ := pages.Lookup(sitemap.Routes[i])
		title := route.Title
		if title == "" {
			title = "Home"
		}
		rows = append(rows, []string{route.Path, title, e.Loc, strconv.FormatFloat(e.Priority, 'f', 1, 64), e.ChangeFreq})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(tui.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tui.Border)).
		Headers("PATH", "TITLE", "URL", "PRIORITY", "CHANGEFREQ").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}
