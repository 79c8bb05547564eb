package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hukuksozluk/vurgu/internal/testutil"
)

func TestInteractiveCommand(t *testing.T) {
	tmpDir := t.TempDir()
	dictionaryServer := testutil.NewDictionaryServer(t, testutil.Entry{Term: "Sözleşme", Definition: "bir anlaşma"})
	taggerServer := newTaggerServer(t, sentenceTokens())
	cfgPath := testutil.SetupTestConfig(t, tmpDir,
		testutil.WithDictionaryURL(dictionaryServer.URL),
		testutil.WithTaggerURL(taggerServer.URL),
	)

	output, err := runCommand(t, "Bu sözleşme geçerlidir.\n:explain\nBu sözleşme geçerlidir.\n:quit\n",
		"interactive", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, output, "  sözleşme: bir anlaşma\n")
	// no API key is configured
	assert.Contains(t, output, "Açıklama oluşturulamadı:")
	assert.Equal(t, 1, dictionaryServer.Calls())
}
