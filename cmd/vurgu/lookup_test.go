package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hukuksozluk/vurgu/internal/testutil"
)

func TestLookupCommand(t *testing.T) {
	dictionaryServer := testutil.NewDictionaryServer(t,
		testutil.Entry{Term: "Davacı", Definition: "Dava açan kimse."},
		testutil.Entry{Term: "Dava", Definition: "Yargı yolu."},
	)
	cfgPath := testutil.SetupTestConfig(t, t.TempDir(), testutil.WithDictionaryURL(dictionaryServer.URL))

	output, err := runCommand(t, "", "lookup", "--config", cfgPath, "Dava,")
	require.NoError(t, err)
	assert.Equal(t, "Dava: Yargı yolu. (dictionary)\n", output)
	assert.Equal(t, 1, dictionaryServer.Calls())

	output, err = runCommand(t, "", "lookup", "--config", cfgPath, "(Dava)")
	require.NoError(t, err)
	assert.Equal(t, "Dava: Yargı yolu. (store)\n", output)
	assert.Equal(t, 1, dictionaryServer.Calls())

	_, err = runCommand(t, "", "lookup", "--config", cfgPath, "mahkeme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no definition found for "mahkeme"`)
	assert.Equal(t, 2, dictionaryServer.Calls())

	_, err = runCommand(t, "", "lookup", "--config", cfgPath, "...")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid term")
	assert.Equal(t, 2, dictionaryServer.Calls())
}
