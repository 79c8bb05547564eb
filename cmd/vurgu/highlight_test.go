package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hukuksozluk/vurgu/internal/testutil"
)

func TestNewHighlightCommand(t *testing.T) {
	cmd := newHighlightCommand()

	assert.Equal(t, "highlight [text]", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "terminal", formatFlag.DefValue)
	for _, name := range []string{"file", "url", "explain", "report", "pdf"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestOutputFormat_Set(t *testing.T) {
	var format outputFormat
	require.NoError(t, format.Set("html"))
	assert.Equal(t, formatHTML, format)
	assert.Equal(t, "html", format.String())
	assert.Equal(t, "format", format.Type())

	err := format.Set("pdf")
	assert.Error(t, err)
	assert.Equal(t, formatHTML, format)
}

func TestHighlightOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		options highlightOptions
		args    []string
		wantErr string
	}{
		{name: "text argument", args: []string{"Bu", "sözleşme"}},
		{name: "file", options: highlightOptions{file: "in.txt"}},
		{name: "stdin", options: highlightOptions{reportPath: "out.md", pdf: true}},
		{
			name:    "text and file",
			args:    []string{"metin"},
			options: highlightOptions{file: "in.txt"},
			wantErr: "only one of",
		},
		{
			name:    "file and url",
			options: highlightOptions{file: "in.txt", url: "https://example.com"},
			wantErr: "only one of",
		},
		{
			name:    "pdf without report",
			options: highlightOptions{pdf: true},
			wantErr: "--pdf requires --report",
		},
		{
			name:    "report without md extension",
			options: highlightOptions{reportPath: "out.txt"},
			wantErr: "--report must have .md extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.options.validate(tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadInput(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("\n  Dosyadaki metin.\n"), 0644))

	tests := []struct {
		name    string
		args    []string
		options highlightOptions
		stdin   string
		want    string
		wantErr bool
	}{
		{name: "arguments are joined", args: []string{"Bu", "sözleşme"}, want: "Bu sözleşme"},
		{name: "file", options: highlightOptions{file: filePath}, want: "Dosyadaki metin."},
		{name: "stdin", stdin: "Girişten gelen metin.\n", want: "Girişten gelen metin."},
		{name: "missing file", options: highlightOptions{file: filepath.Join(t.TempDir(), "yok.txt")}, wantErr: true},
		{name: "blank stdin", stdin: "  \n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, title, err := readInput(context.Background(), tt.args, tt.options, strings.NewReader(tt.stdin))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, title)
		})
	}
}

func TestHighlightCommand_Run(t *testing.T) {
	tmpDir := t.TempDir()
	dictionaryServer := testutil.NewDictionaryServer(t, testutil.Entry{Term: "Sözleşme", Definition: "bir anlaşma"})
	taggerServer := newTaggerServer(t, sentenceTokens())
	cfgPath := testutil.SetupTestConfig(t, tmpDir,
		testutil.WithDictionaryURL(dictionaryServer.URL),
		testutil.WithTaggerURL(taggerServer.URL+"/models/pos"),
	)

	output, err := runCommand(t, "", "highlight", "--config", cfgPath, "Bu sözleşme geçerlidir.")
	require.NoError(t, err)
	assert.Equal(t, "Metin\nBu sözleşme geçerlidir.\n\nTerimler\n  sözleşme: bir anlaşma\n", output)
	assert.Equal(t, 1, dictionaryServer.Calls())

	// the second run is answered by the cache
	reportPath := filepath.Join(tmpDir, "report.md")
	output, err = runCommand(t, "Bu sözleşme geçerlidir.", "highlight", "--config", cfgPath, "--format", "html", "--report", reportPath)
	require.NoError(t, err)
	assert.Equal(t, 1, dictionaryServer.Calls())
	assert.Contains(t, output, "<p class='highlighted'>Bu <span class='highlight-box'")
	assert.Contains(t, output, ">sözleşme</span>: bir anlaşma</li>")

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "Bu **sözleşme** geçerlidir.")
	assert.Contains(t, string(report), "- **sözleşme**: bir anlaşma")

	output, err = runCommand(t, "", "cache", "get", "--config", cfgPath, "sözleşme")
	require.NoError(t, err)
	assert.Equal(t, "bir anlaşma\n", output)
}

func TestHighlightCommand_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "invalid format",
			args:    []string{"highlight", "--config", cfgPath, "--format", "pdf", "metin"},
			wantErr: "invalid format",
		},
		{
			name:    "missing input file",
			args:    []string{"highlight", "--config", cfgPath, "--explain", "--file", filepath.Join(tmpDir, "yok.txt")},
			wantErr: "os.ReadFile",
		},
		{
			name:    "tagger unreachable",
			args:    []string{"highlight", "--config", cfgPath, "metin"},
			wantErr: "highlighter.Run",
		},
		{
			name:    "broken config",
			args:    []string{"highlight", "--config", filepath.Join(tmpDir, "missing.yml"), "metin"},
			wantErr: "configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
