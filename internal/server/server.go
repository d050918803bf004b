// Package server exposes the site over HTTP: rendered pages, the contact
// endpoints, sitemap and robots files, static assets and a health check.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/logger"
	"github.com/alexisbeaulieu97/nexus/internal/sitemap"
)

const defaultShutdownTimeout = 5 * time.Second

// Options configure a Server.
type Options struct {
	Addr            string
	BaseURL         string
	Store           *content.Store
	Deliverer       contact.Deliverer
	Logger          *logger.Logger
	LastModified    time.Time
	ShutdownTimeout time.Duration
}

// Server serves the site from a content store.
type Server struct {
	addr            string
	baseURL         string
	store           *content.Store
	deliverer       contact.Deliverer
	log             *logger.Logger
	lastMod         time.Time
	shutdownTimeout time.Duration
	handler         http.Handler
}

// New creates a server. Missing options fall back to the embedded content,
// the log deliverer, a no-op logger and the current time.
func New(opts Options) *Server {
	s := &Server{
		addr:            opts.Addr,
		baseURL:         opts.BaseURL,
		store:           opts.Store,
		deliverer:       opts.Deliverer,
		log:             opts.Logger,
		lastMod:         opts.LastModified,
		shutdownTimeout: opts.ShutdownTimeout,
	}
	if s.store == nil {
		s.store = content.NewStore(content.Default())
	}
	if s.deliverer == nil {
		s.deliverer = contact.LogDeliverer{}
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.lastMod.IsZero() {
		s.lastMod = time.Now()
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// siteURL is the configured base URL, or the one in the current content.
func (s *Server) siteURL() string {
	if s.baseURL != "" {
		return strings.TrimRight(s.baseURL, "/")
	}
	return strings.TrimRight(s.store.Get().Site.URL, "/")
}

// Sitemap returns the entries served at /sitemap.xml.
func (s *Server) Sitemap() []sitemap.Entry {
	return sitemap.Generate(s.siteURL(), sitemap.Routes, s.lastMod)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return logger.WithContext(context.Background(), s.log) },
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.log.WithFields(map[string]any{"addr": ln.Addr().String()}).Info("server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.log.Info("server stopped")
		return nil
	})
	return group.Wait()
}
