package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServeCommand(t *testing.T) {
	cmd := newServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	portFlag := cmd.Flags().Lookup("port")
	require.NotNil(t, portFlag)
	assert.Equal(t, "0", portFlag.DefValue)
}

func TestServe(t *testing.T) {
	t.Run("returns after the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- serve(ctx, "127.0.0.1:0", http.NotFoundHandler())
		}()

		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return")
		}
	})

	t.Run("invalid address", func(t *testing.T) {
		err := serve(context.Background(), "127.0.0.1:-1", http.NotFoundHandler())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "httpServer.ListenAndServe")
	})
}
