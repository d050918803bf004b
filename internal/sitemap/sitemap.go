// Package sitemap builds the sitemaps.org urlset for the site's routes.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
)

// Routes are the public pages, home first. Home is the empty route.
var Routes = []string{"", "/about", "/services", "/contact"}

const (
	ChangeMonthly = "monthly"

	homePriority  = 1.0
	routePriority = 0.8

	xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// Entry is one url element.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// Generate builds one entry per route. The home route gets the highest
// priority.
func Generate(baseURL string, routes []string, lastMod time.Time) []Entry {
	base := strings.TrimRight(baseURL, "/")
	entries := make([]Entry, 0, len(routes))
	for _, route := range routes {
		priority := routePriority
		if route == "" {
			priority = homePriority
		}
		entries = append(entries, Entry{
			Loc:        base + route,
			LastMod:    lastMod,
			ChangeFreq: ChangeMonthly,
			Priority:   priority,
		})
	}
	return entries
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteXML writes entries as an indented urlset document.
func WriteXML(w io.Writer, entries []Entry) error {
	set := urlset{Xmlns: xmlns, URLs: make([]url, 0, len(entries))}
	for _, e := range entries {
		u := url{
			Loc:        e.Loc,
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, u)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// HeadCommitTime returns the committer time of HEAD in the repository
// containing dir.
func HeadCommitTime(dir string) (time.Time, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return time.Time{}, fmt.Errorf("open repository %s: %w", dir, err)
	}
	head, err := repo.Head()
	if err != nil {
		return time.Time{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return time.Time{}, fmt.Errorf("read HEAD commit: %w", err)
	}
	return commit.Committer.When, nil
}

// LastModified is HeadCommitTime with a fallback to the current time when
// dir is not inside a repository.
func LastModified(dir string) time.Time {
	if t, err := HeadCommitTime(dir); err == nil {
		return t
	}
	return time.Now()
}
