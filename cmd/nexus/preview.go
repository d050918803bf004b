package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/nexus/internal/tui/preview"
)

var errNoTerminal = errors.New("an interactive terminal is required")

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [route]",
		Short: "Scroll through a page in the terminal",
		Long:  "Scroll through a page in the terminal. Animated sections stay hidden until they scroll into view.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errNoTerminal
			}

			html, title, err := renderRoute(a.store.Get(), path)
			if err != nil {
				return err
			}
			blocks, err := preview.Extract(bytes.NewReader(html))
			if err != nil {
				return err
			}
			if title == "" {
				title = a.store.Get().Site.Name
			}

			model := preview.New(title, blocks)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run preview: %w", err)
			}
			model.Close()
			return nil
		},
	}
}
