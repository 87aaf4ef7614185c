// Package fetch implements the Fetcher and SourceFetcher interfaces.
// It performs HTTP GET requests for spreadsheet exports and linked documents.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/sheetfolio/core"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "SheetFolio/1.0 (https://github.com/gaurav-prasanna/sheetfolio)"
)

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Accept    string
	// NoStore asks every cache between us and the origin to skip storage.
	NoStore bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Accept:    "*/*",
	}
}

// HTTPFetcher fetches documents via HTTP.
type HTTPFetcher struct {
	client *http.Client
	opts   Options
}

// New creates an HTTPFetcher. A nil opts uses DefaultOptions.
func New(opts *Options) *HTTPFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Accept == "" {
		o.Accept = "*/*"
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: o.Timeout},
		opts:   o,
	}
}

// Fetch retrieves the body of the given URL.
// Transport failures and non-2xx statuses are reported as *core.NetworkError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &core.NetworkError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", f.opts.Accept)
	if f.opts.NoStore {
		req.Header.Set("Cache-Control", "no-store")
		req.Header.Set("Pragma", "no-cache")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &core.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.NetworkError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	return &core.FetchResult{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
