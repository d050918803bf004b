package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/server"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			return runServe(cmd, a)
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().Bool("watch", false, "Reload the content file when it changes")
	cmd.Flags().Duration("shutdown-timeout", 5*time.Second, "Grace period for in-flight requests on shutdown")

	return cmd
}

func runServe(cmd *cobra.Command, a *app) error {
	s := a.settings
	if s.Watch && s.Content == "" {
		return errors.New("--watch needs a --content file to watch")
	}

	srv := server.New(server.Options{
		Addr:            s.Addr,
		BaseURL:         s.BaseURL,
		Store:           a.store,
		Logger:          a.log,
		LastModified:    a.lastModified(),
		ShutdownTimeout: s.ShutdownTimeout,
	})

	group, ctx := errgroup.WithContext(cmd.Context())
	group.Go(func() error { return srv.Run(ctx) })
	if s.Watch {
		watcher := content.NewWatcher(s.Content, a.store, a.log)
		group.Go(func() error { return watcher.Run(ctx) })
	}
	return group.Wait()
}
