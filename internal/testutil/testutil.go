// Package testutil provides shared test helpers for config files and a fake dictionary site.
package testutil

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption overrides a field of the generated test config.
type ConfigOption func(*testConfig)

type testConfig struct {
	dictionaryURL string
	taggerURL     string
	apiKey        string
}

// WithDictionaryURL points the dictionary client at url.
func WithDictionaryURL(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.dictionaryURL = url
	}
}

// WithTaggerURL points the tagger client at url.
func WithTaggerURL(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.taggerURL = url
	}
}

// SetupTestConfig writes a config file using a sqlite database under tmpDir
// and no throttle. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		dictionaryURL: "https://127.0.0.1:1",
		taggerURL:     "http://127.0.0.1:1/models/pos",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`dictionary:
  base_url: %s
  insecure_skip_verify: true
  timeout: 5s
  throttle: 0s
tagger:
  endpoint: %s
  timeout: 5s
  max_retry_attempts: 0
database:
  driver: sqlite3
  path: %s
`,
		cfg.dictionaryURL,
		cfg.taggerURL,
		filepath.Join(tmpDir, "term_cache.db"),
	)
	if cfg.apiKey != "" {
		configContent += fmt.Sprintf("openai:\n  api_key: %s\n  model: gpt-4o-mini\n", cfg.apiKey)
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()
	opts = append(opts, func(cfg *testConfig) {
		cfg.apiKey = "fake-key-for-testing"
	})
	return SetupTestConfig(t, tmpDir, opts...)
}

// Entry is one row of a fake dictionary result page.
type Entry struct {
	Term       string
	Definition string
}

// ResultPage renders entries the way the dictionary site lists search results.
func ResultPage(entries ...Entry) string {
	var builder strings.Builder
	builder.WriteString(`<!DOCTYPE html><html><body><div class="container"><div class="ankat">`)
	for _, entry := range entries {
		fmt.Fprintf(&builder,
			`<div class="row terim"><div class="col-md-4">%s</div><div class="col-md-8">%s</div></div>`,
			html.EscapeString(entry.Term), html.EscapeString(entry.Definition),
		)
	}
	builder.WriteString(`</div></div></body></html>`)
	return builder.String()
}

// DictionaryServer is a TLS server with a self-signed certificate that answers
// every request with the same result page.
type DictionaryServer struct {
	*httptest.Server
	calls atomic.Int32
}

func NewDictionaryServer(t *testing.T, entries ...Entry) *DictionaryServer {
	t.Helper()
	page := ResultPage(entries...)
	server := &DictionaryServer{}
	server.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.calls.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)
	return server
}

// Calls returns the number of requests served so far.
func (s *DictionaryServer) Calls() int {
	return int(s.calls.Load())
}
