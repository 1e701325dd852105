// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records shared between the fetch, summarize,
// and presentation stages of newsbot.
package types

// Article is one entry of a news search feed. Every field is trimmed and
// defaults to the empty string when the feed omits it.
type Article struct {
	// Title is the headline as returned by the feed.
	Title string `json:"title" yaml:"title"`

	// Link is the article URL.
	Link string `json:"link" yaml:"link"`

	// Summary is the entry description. It may contain HTML markup.
	Summary string `json:"summary" yaml:"summary"`

	// Published is the feed's raw publication timestamp, possibly empty.
	Published string `json:"published" yaml:"published"`
}
