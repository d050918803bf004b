package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/logger"
	"github.com/alexisbeaulieu97/nexus/internal/site/pages"
	"github.com/alexisbeaulieu97/nexus/internal/site/static"
	"github.com/alexisbeaulieu97/nexus/internal/sitemap"
	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

const maxFormBytes = 64 << 10

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	for _, route := range pages.Routes() {
		pattern := "GET " + route.Path
		if route.Path == "/" {
			pattern = "GET /{$}"
		}
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			s.render(w, r, http.StatusOK, route.Render(s.store.Get()))
		})
	}

	mux.Handle("POST /api/contact", contact.NewHandler(s.deliverer))
	mux.HandleFunc("POST /contact", s.handleContactForm)
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /robots.txt", s.handleRobots)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusNotFound, pages.NotFound(s.store.Get(), r.URL.Path))
	})

	return withRequestID(s.log, withLogging(withRecover(mux)))
}

// render buffers the document so a failed render never sends half a page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		logger.FromContext(r.Context()).Error(nexuserrors.NewRenderError(r.URL.Path, err), "render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// handleContactForm is the no-script path: the browser posts the form and
// gets the contact page back with inline errors or the settled notice.
func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		logger.FromContext(r.Context()).Error(fmt.Errorf("parse contact form: %w", err), "error processing contact form")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := contact.NewForm()
	for _, field := range contact.Fields() {
		form.Set(field, r.PostForm.Get(field))
	}

	status := http.StatusOK
	switch form.Submit(r.Context(), contact.SenderFunc(func(ctx context.Context, sub contact.Submission) error {
		return s.deliverer.Deliver(ctx, sub)
	})) {
	case contact.StatusError:
		status = http.StatusInternalServerError
	case contact.StatusIdle:
		status = http.StatusBadRequest
	}
	s.render(w, r, status, pages.ContactDocument(s.store.Get(), form))
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := sitemap.WriteXML(&buf, s.Sitemap()); err != nil {
		logger.FromContext(r.Context()).Error(nexuserrors.NewRenderError(r.URL.Path, err), "render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.siteURL())
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
