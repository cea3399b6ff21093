package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	main "github.com/companionsite/snarf/cmd/snarf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory at cleanup. It stands in for t.Chdir, which
// requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("--help succeeds", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "extract")
		assert.Contains(t, stdout.String(), "usernames")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"bogus"}, stdout, stderr)

		require.Error(t, err)
	})
}

// TestRun_EndToEnd exercises the real extractor and writer over a small
// corpus. It runs from a temp dir so that file paths are bare names, the
// way the wget corpus was passed on the command line.
func TestRun_EndToEnd(t *testing.T) {
	chdir(t, t.TempDir())

	page62 := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<div id="author-names"><span>A. One</span><span>B. Two</span></div>
<div id="journal">
  <span>The Quarterly Journal
    <a href="#abstract-paper-42">Abstract</a>
    <a href="http://example.com/paper.pdf" target="_blank" class="link">Paper</a>
  </span>
</div>
<div id="abstract-paper-62"><div class="middle-abstract-paper">An abstract.</div></div>
<div id="top-resume-code">How codes were applied.</div>
<div id="slides">
  <div style="width: 180px; float: left;">
    <img src="jane.jpg">
    <div>
      <p class="name">Jane Doe</p>
      <p class="affiliation">State University</p>
      <p class="country">Freedonia</p>
    </div>
  </div>
</div>
</body>
</html>`

	require.NoError(t, os.WriteFile("site.do?siteId=62", []byte(page62), 0644))
	require.NoError(t, os.WriteFile("no-id-page.html", []byte("<html><head><title>Skipped</title></head></html>"), 0644))
	require.NoError(t, os.WriteFile("site.do?siteId=7", []byte("<html><head><title>Bare</title></head></html>"), 0644))

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"extract", "site.do?siteId=62", "no-id-page.html", "site.do?siteId=7"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Wrote 3 records to results.json")

	data, err := os.ReadFile("results.json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 3)

	first := got[0]
	assert.Equal(t, "Test", first["title"])
	assert.Equal(t, "62", first["legacy_id"])
	assert.Equal(t, "42", first["legacyid"])
	assert.Equal(t, "http://example.com/paper.pdf", first["article_url"])
	assert.Equal(t, "The Quarterly Journal Abstract Paper", first["journal"])
	assert.Equal(t, "An abstract.", first["abstract"])
	assert.Equal(t, "How codes were applied.", first["explanatory_text"])
	assert.Equal(t, []any{"A. One", "B. Two"}, first["names"])
	assert.Equal(t, map[string]any{
		"Jane Doe": map[string]any{
			"affiliation": "State University",
			"country":     "Freedonia",
		},
	}, first["coders"])

	// The digit-less file still occupies its slot, as an empty object.
	assert.Empty(t, got[1])

	assert.Equal(t, "Bare", got[2]["title"])
	assert.Equal(t, "7", got[2]["legacy_id"])
}
