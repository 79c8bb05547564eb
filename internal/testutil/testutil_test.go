package testutil

import (
	"crypto/tls"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, WithDictionaryURL("https://localhost:8443"), WithTaggerURL("http://localhost:9000/pos"))

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	contentStr := string(content)
	assert.Contains(t, contentStr, "base_url: https://localhost:8443")
	assert.Contains(t, contentStr, "endpoint: http://localhost:9000/pos")
	assert.Contains(t, contentStr, "path: "+filepath.Join(tmpDir, "term_cache.db"))
	assert.NotContains(t, contentStr, "openai:")
}

func TestSetupTestConfigWithAPIKey(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithAPIKey(t, tmpDir)

	content, err := os.ReadFile(got)
	require.NoError(t, err)

	contentStr := string(content)
	assert.Contains(t, contentStr, "openai:")
	assert.Contains(t, contentStr, "api_key: fake-key-for-testing")
	assert.Contains(t, contentStr, "model: gpt-4o-mini")
	// The base config fields should also be present.
	assert.Contains(t, contentStr, "driver: sqlite3")
}

func TestResultPage(t *testing.T) {
	page := ResultPage(
		Entry{Term: "Sözleşme", Definition: "Anlaşma."},
		Entry{Term: "A&B", Definition: "<b>"},
	)
	assert.Equal(t, 2, strings.Count(page, `class="row terim"`))
	assert.Contains(t, page, `<div class="col-md-4">Sözleşme</div><div class="col-md-8">Anlaşma.</div>`)
	assert.Contains(t, page, `<div class="col-md-4">A&amp;B</div><div class="col-md-8">&lt;b&gt;</div>`)
}

func TestNewDictionaryServer(t *testing.T) {
	server := NewDictionaryServer(t, Entry{Term: "Dava", Definition: "Yargı yolu."})
	client := &http.Client{Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}} //nolint:gosec

	for range 2 {
		response, err := client.Post(server.URL+"/dava", "text/plain", nil)
		require.NoError(t, err)
		body, err := io.ReadAll(response.Body)
		require.NoError(t, err)
		require.NoError(t, response.Body.Close())
		assert.Contains(t, string(body), "Yargı yolu.")
	}
	assert.Equal(t, 2, server.Calls())
}
