package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/hukuksozluk/vurgu/internal/tagger"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "vurgu", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"highlight", "interactive", "lookup", "cache", "serve"}, names)
}

// runCommand executes the root command with args and returns its stdout.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	oldConfigFile := configFile
	t.Cleanup(func() {
		color.NoColor = noColor
		configFile = oldConfigFile
	})

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(bytes.NewBufferString(stdin))
	err := cmd.Execute()
	return stdout.String(), err
}

// newTaggerServer answers every request with tokens.
func newTaggerServer(t *testing.T, tokens []tagger.Token) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Inputs string `json:"inputs"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body.Inputs)

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(tokens))
	}))
	t.Cleanup(server.Close)
	return server
}

func sentenceTokens() []tagger.Token {
	return []tagger.Token{
		{Word: "▁Bu", Entity: tagger.TagDeterminer},
		{Word: "▁sözleşme", Entity: tagger.TagNoun},
		{Word: "▁geçerli", Entity: tagger.TagAuxiliary},
		{Word: "dir", Entity: tagger.TagAuxiliary},
		{Word: ".", Entity: tagger.TagPunctuation},
	}
}
