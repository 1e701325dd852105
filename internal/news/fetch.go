// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/newsbot/internal/httputil"
	"github.com/pdiddy/newsbot/pkg/types"
)

// FetchError reports a failed feed request: a connection error, a timeout,
// or a non-2xx response.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher queries the news search feed. It is safe to reuse across queries;
// it keeps no state between them.
type Fetcher struct {
	Client *http.Client
	Config types.NewsConfig

	// Out receives the error line written by Fetch. Nil discards it.
	Out io.Writer
}

// NewFetcher returns a Fetcher whose client times out after cfg.Timeout.
func NewFetcher(cfg types.NewsConfig, out io.Writer) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	return &Fetcher{
		Client: &http.Client{Timeout: timeout},
		Config: cfg,
		Out:    out,
	}
}

// URL returns the search URL for query using the fetcher's endpoint,
// language, and region.
func (f *Fetcher) URL(query string) string {
	endpoint := f.Config.Endpoint
	if endpoint == "" {
		endpoint = types.DefaultEndpoint
	}
	lang := f.Config.Language
	if lang == "" {
		lang = types.DefaultLanguage
	}
	region := f.Config.Region
	if region == "" {
		region = types.DefaultRegion
	}
	return buildSearchURL(endpoint, query, lang, region)
}

// Search performs one GET for query and returns at most maxResults articles
// in feed order. A maxResults of zero or less means the default of 10.
// Transport failures are returned as *FetchError. A body that cannot be
// parsed as a feed yields no articles and no error.
func (f *Fetcher) Search(ctx context.Context, query string, maxResults int) ([]types.Article, error) {
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}

	url := f.URL(query)
	body, err := httputil.GetBody(ctx, f.client(), url, f.Config.UserAgent)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	articles, err := ParseFeed(body)
	if err != nil {
		return []types.Article{}, nil
	}

	if len(articles) > maxResults {
		articles = articles[:maxResults]
	}
	return articles, nil
}

// Fetch is Search with failures recovered: the error is written to Out and
// an empty list is returned.
func (f *Fetcher) Fetch(ctx context.Context, query string, maxResults int) []types.Article {
	articles, err := f.Search(ctx, query, maxResults)
	if err != nil {
		if f.Out != nil {
			fmt.Fprintf(f.Out, "[에러] 뉴스 요청 중 문제가 발생했습니다: %v\n", err)
		}
		return []types.Article{}
	}
	return articles
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: types.DefaultTimeout}
}
