package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/logger"
	"github.com/alexisbeaulieu97/nexus/internal/settings"
	"github.com/alexisbeaulieu97/nexus/internal/sitemap"
)

// app is what every command needs: resolved settings, a logger and the
// current content.
type app struct {
	settings *settings.Settings
	log      *logger.Logger
	store    *content.Store
}

func newApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	s, err := settings.Load(flags.configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         s.LogLevel,
		HumanReadable: s.HumanLogs(logger.IsTerminal(out)),
		Writer:        out,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	c := content.Default()
	if s.Content != "" {
		c, err = content.Load(s.Content)
		if err != nil {
			return nil, err
		}
		log.WithFields(map[string]any{"path": s.Content}).Debug("content loaded")
	}

	return &app{settings: s, log: log, store: content.NewStore(c)}, nil
}

// baseURL is the configured public URL, or the site url from content.
func (a *app) baseURL() string {
	if a.settings.BaseURL != "" {
		return strings.TrimRight(a.settings.BaseURL, "/")
	}
	return strings.TrimRight(a.store.Get().Site.URL, "/")
}

func (a *app) lastModified() time.Time {
	return sitemap.LastModified(a.settings.RepoDir)
}
