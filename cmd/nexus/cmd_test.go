package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-format", "json"))
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "Nexus 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
}

func TestRenderWritesPage(t *testing.T) {
	out, err := execute(t, "render", "/about")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
	assert.Contains(t, out, "<title>About | Nexus AI</title>")
}

func TestRenderUnknownRoute(t *testing.T) {
	_, err := execute(t, "render", "/pricing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown route "/pricing"`)
}

func TestSitemapHonoursBaseURL(t *testing.T) {
	out, err := execute(t, "sitemap", "--base-url", "https://example.com/")
	require.NoError(t, err)
	assert.Contains(t, out, "<loc>https://example.com</loc>")
	assert.Contains(t, out, "<loc>https://example.com/services</loc>")
	assert.Contains(t, out, "<priority>0.8</priority>")
}

func TestRoutesTable(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)
	for _, want := range []string{"PATH", "/about", "Services", "https://nexus.nmwstudios.com/contact", "1.0", "0.8", "monthly"} {
		assert.Contains(t, out, want)
	}
}

func TestContentFlagLoadsFile(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("..", "..", "internal", "content", "default.yaml"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, bytes.Replace(src, []byte("name: Nexus AI"), []byte("name: Acme"), 1), 0o644))

	out, err := execute(t, "render", "/about", "--content", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>About | Acme</title>")
}

func TestInvalidLogLevelFails(t *testing.T) {
	_, err := execute(t, "routes", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestServeWatchNeedsContent(t *testing.T) {
	_, err := execute(t, "serve", "--watch", "--addr", "127.0.0.1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch")
}
