// Package huggingface tags text through a Hugging Face token-classification endpoint.
package huggingface

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/hukuksozluk/vurgu/internal/tagger"
)

// DefaultModel is a Turkish UD POS model whose pieces start with "▁".
const DefaultModel = "wietsedv/xlm-roberta-base-ft-udpos28-tr"

type Client struct {
	httpClient       *resty.Client
	endpoint         string
	maxRetryAttempts uint
}

var _ tagger.Tagger = (*Client)(nil)

func NewClient(endpoint, token string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	if token != "" {
		client.SetHeader("Authorization", "Bearer "+token)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient:       client,
		endpoint:         endpoint,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	// AggregationStrategy "none" keeps subword pieces so that they can be reassembled by POS tag.
	AggregationStrategy string `json:"aggregation_strategy"`
}

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.statusCode, e.body)
}

// retryable reports whether the endpoint may succeed later, e.g. while a model is loading.
func (e *statusError) retryable() bool {
	return e.statusCode == http.StatusTooManyRequests || e.statusCode >= http.StatusInternalServerError
}

func (client *Client) Tag(ctx context.Context, text string) ([]tagger.Token, error) {
	var tokens []tagger.Token
	if err := retry.Do(
		func() error {
			result, err := client.tag(ctx, text)
			if err != nil {
				if se, ok := err.(*statusError); ok && !se.retryable() {
					return retry.Unrecoverable(err)
				}
				return err
			}
			tokens = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (client *Client) tag(ctx context.Context, text string) ([]tagger.Token, error) {
	var tokens []tagger.Token
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request{
			Inputs:     text,
			Parameters: parameters{AggregationStrategy: "none"},
		}).
		SetResult(&tokens).
		Post(client.endpoint)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, &statusError{statusCode: response.StatusCode(), body: response.String()}
	}

	slog.Default().Debug("tagger response",
		"endpoint", client.endpoint,
		"tokens", len(tokens),
	)
	return tokens, nil
}
