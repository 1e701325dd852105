// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize shortens article text to its leading sentences.
//
// The split is a punctuation heuristic: abbreviations, decimal numbers, and
// quoted punctuation all end a "sentence".
package summarize

import (
	"regexp"
	"strings"

	"github.com/pdiddy/newsbot/pkg/types"
)

var (
	tagPattern      = regexp.MustCompile(`<.*?>`)
	sentencePattern = regexp.MustCompile(`[.!?。？！]`)
)

// Summarize strips markup from text, collapses whitespace, and returns the
// first maxSentences sentences joined by a single space. When the text has no
// sentence fragments the cleaned text is returned as is. A maxSentences of
// zero or less means the default of 2.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = types.DefaultMaxSentences
	}

	cleaned := Clean(text)
	sentences := Sentences(cleaned)
	if len(sentences) == 0 {
		return cleaned
	}
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	return strings.Join(sentences, " ")
}

// Clean replaces each <...> tag with a space and collapses runs of
// whitespace. Tags are matched non-greedily without regard to nesting.
func Clean(text string) string {
	stripped := tagPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(stripped), " ")
}

// Sentences splits text on Latin and fullwidth CJK sentence punctuation and
// returns the trimmed, non-empty fragments.
func Sentences(text string) []string {
	var out []string
	for _, s := range sentencePattern.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
