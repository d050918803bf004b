// Package preview is a terminal walkthrough of a rendered page. Blocks that
// carry a reveal preset stay hidden until scrolled into view, driven by the
// same controller the site script mirrors.
package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/alexisbeaulieu97/nexus/internal/ui/reveal"
)

const blockSelector = "[data-reveal], h1, h2, h3, h4, p, li, blockquote"

// Block is one readable unit of a page.
type Block struct {
	Heading string
	Body    string
	Preset  reveal.Preset
	Delay   time.Duration
}

// Animated reports whether the block has an entrance animation.
func (b Block) Animated() bool {
	return b.Preset != ""
}

// Extract reads an HTML document and returns the blocks inside its main
// element in document order. Nested matches fold into their outermost block.
func Extract(r io.Reader) ([]Block, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var blocks []Block
	doc.Find("main").Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsUntil("main").Filter(blockSelector).Length() > 0 {
			return
		}
		if b, ok := toBlock(s); ok {
			blocks = append(blocks, b)
		}
	})
	return blocks, nil
}

func toBlock(s *goquery.Selection) (Block, bool) {
	var b Block
	if preset, ok := s.Attr("data-reveal"); ok {
		b.Preset = reveal.Resolve(reveal.Preset(preset))
		if ms, err := strconv.Atoi(s.AttrOr("data-reveal-delay", "0")); err == nil {
			b.Delay = time.Duration(ms) * time.Millisecond
		}
	}

	switch goquery.NodeName(s) {
	case "h1", "h2", "h3", "h4":
		b.Heading = squash(s.Text())
	default:
		body := s.Clone()
		if heading := body.Find("h1, h2, h3, h4").First(); heading.Length() > 0 {
			b.Heading = squash(heading.Text())
			heading.Remove()
		}
		b.Body = squash(body.Text())
	}
	return b, b.Heading != "" || b.Body != ""
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
