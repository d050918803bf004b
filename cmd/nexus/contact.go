package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/tui/contactform"
)

func newContactCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Fill in the contact form from the terminal",
		Long:  "Fill in the contact form from the terminal and post it to a running server's contact endpoint.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errNoTerminal
			}

			client := contact.NewClient(a.settings.ContactURL, nil)
			a.log.WithFields(map[string]any{"endpoint": client.Endpoint()}).Debug("contact form started")

			p := tea.NewProgram(contactform.New(cmd.Context(), client), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run contact form: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("contact-url", "http://localhost:8080/api/contact", "Contact endpoint to post to")

	return cmd
}
