// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package news searches the Google News RSS feed and turns its entries into
// Article records.
package news

import (
	"net/url"
	"strings"

	"github.com/pdiddy/newsbot/pkg/types"
)

// BuildSearchURL returns the Google News RSS search URL for query. lang and
// region are used verbatim (e.g. "ko", "KR").
func BuildSearchURL(query, lang, region string) string {
	return buildSearchURL(types.DefaultEndpoint, query, lang, region)
}

// buildSearchURL appends the q, hl, gl, and ceid parameters to endpoint in
// that order. url.Values.Encode would sort the keys, so the query string is
// assembled by hand.
func buildSearchURL(endpoint, query, lang, region string) string {
	params := [][2]string{
		{"q", query},
		{"hl", strings.ToLower(region) + "-" + lang},
		{"gl", region},
		{"ceid", region + ":" + lang},
	}

	var b strings.Builder
	b.WriteString(endpoint)
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
