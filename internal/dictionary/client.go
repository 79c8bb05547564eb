// Package dictionary looks terms up in the legal dictionary of the Ministry of Justice
// (sozluk.adalet.gov.tr).
package dictionary

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hukuksozluk/vurgu/internal/definition"
)

// DefaultBaseURL is the public legal dictionary.
const DefaultBaseURL = "https://sozluk.adalet.gov.tr"

type Config struct {
	BaseURL string
	// InsecureSkipVerify disables certificate checks; the public site has served
	// certificates that fail verification.
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type Client struct {
	httpClient *resty.Client
	baseURL    string
}

var _ definition.Lookup = (*Client)(nil)

func NewClient(config Config) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	if config.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}

	return &Client{
		httpClient: client,
		baseURL:    baseURL,
	}
}

// URL returns the page address of term.
func (c *Client) URL(term string) string {
	return c.baseURL + "/" + url.PathEscape(term)
}

// Lookup returns the definition whose label equals term, ignoring case.
// A non-200 response or a page without such a label is a miss, not an error.
func (c *Client) Lookup(ctx context.Context, term string) (string, bool, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		Post(c.URL(term))
	if err != nil {
		return "", false, fmt.Errorf("client.R.Post > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		slog.Default().Debug("dictionary returned non-OK status",
			"term", term,
			"status", res.StatusCode(),
		)
		return "", false, nil
	}

	entries, err := ParseEntries(bytes.NewReader(res.Body()))
	if err != nil {
		slog.Default().Debug("failed to parse dictionary page",
			"term", term,
			"error", err,
		)
		return "", false, nil
	}

	definition, ok := Match(entries, term)
	return definition, ok, nil
}
