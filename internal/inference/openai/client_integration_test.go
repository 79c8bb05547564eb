//go:build integration

package openai_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hukuksozluk/vurgu/internal/inference"
	"github.com/hukuksozluk/vurgu/internal/inference/openai"
)

// Run with: OPENAI_API_KEY=your-key go test -tags integration ./internal/inference/openai
func TestClient_Explain_Live(t *testing.T) {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})),
	)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY environment variable not set, skipping integration test")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(apiKey, model, inference.DefaultMaxTokens, openai.DefaultTimeout, 2)
	defer func() {
		_ = client.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	got, err := client.Explain(ctx, inference.ExplainRequest{
		Text: "Kiracı, kira sözleşmesini haklı sebeple feshetti.",
		Definitions: []inference.TermDefinition{
			{Term: "fesih", Definition: "Bir hukuki ilişkiyi tek taraflı irade beyanıyla sona erdirme."},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	t.Log(got)
}
