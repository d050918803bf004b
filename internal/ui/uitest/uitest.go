// Package uitest has helpers for asserting on rendered markup.
package uitest

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
)

// Render renders n and fails the test on error.
func Render(t testing.TB, n g.Node) string {
	t.Helper()
	out, err := ui.RenderString(n)
	require.NoError(t, err)
	return out
}

// Doc renders n and parses the result.
func Doc(t testing.TB, n g.Node) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Render(t, n)))
	require.NoError(t, err)
	return doc
}

// Classes returns the class tokens of the first element matching selector.
func Classes(t testing.TB, doc *goquery.Document, selector string) []string {
	t.Helper()
	sel := doc.Find(selector).First()
	require.Equal(t, 1, sel.Length(), "no element matches %q", selector)
	return strings.Fields(sel.AttrOr("class", ""))
}
