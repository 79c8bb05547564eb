// Package article downloads a web page and extracts its readable text.
package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/go-shiori/go-readability"
)

// MaxBodySize caps the downloaded page.
const MaxBodySize = 10 * 1024 * 1024

var ErrEmptyArticle = errors.New("no readable text in page")

type Article struct {
	URL      string
	Title    string
	Byline   string
	SiteName string
	Text     string
}

type Fetcher struct {
	client *resty.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	client.SetHeader("Accept", "text/html,application/xhtml+xml")
	client.SetResponseBodyLimit(MaxBodySize)
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Article, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return Article{}, fmt.Errorf("url.Parse(%s) > %w", rawURL, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return Article{}, fmt.Errorf("unsupported url scheme %q", parsedURL.Scheme)
	}

	response, err := f.client.R().
		SetContext(ctx).
		Get(parsedURL.String())
	if err != nil {
		return Article{}, fmt.Errorf("client.Get(%s) > %w", rawURL, err)
	}
	if response.StatusCode() != http.StatusOK {
		return Article{}, fmt.Errorf("unexpected status %d from %s", response.StatusCode(), rawURL)
	}

	parsed, err := readability.FromReader(bytes.NewReader(response.Body()), parsedURL)
	if err != nil {
		return Article{}, fmt.Errorf("readability.FromReader > %w", err)
	}
	text := strings.Join(strings.Fields(parsed.TextContent), " ")
	if text == "" {
		return Article{}, ErrEmptyArticle
	}
	return Article{
		URL:      rawURL,
		Title:    strings.TrimSpace(parsed.Title),
		Byline:   parsed.Byline,
		SiteName: parsed.SiteName,
		Text:     text,
	}, nil
}
