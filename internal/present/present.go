// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present renders articles for the console.
package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/newsbot/internal/summarize"
	"github.com/pdiddy/newsbot/pkg/types"
)

// NotFoundMessage is printed in place of an empty result list.
const NotFoundMessage = "관련 뉴스를 찾지 못했어요. 키워드를 바꿔서 다시 시도해 주세요."

const ruleWidth = 80

// Articles writes a numbered block per article to w: title, the publication
// date when present, link, and a summary of at most maxSentences sentences.
// The summary is taken from the article summary, or from the title when the
// summary is empty.
func Articles(w io.Writer, articles []types.Article, maxSentences int) {
	if len(articles) == 0 {
		fmt.Fprintln(w, NotFoundMessage)
		return
	}

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "총 %d개의 뉴스를 찾았어요.\n", len(articles))
	fmt.Fprintln(w, rule)

	for i, a := range articles {
		fmt.Fprintf(w, "\n[%d] %s\n", i+1, a.Title)
		if a.Published != "" {
			fmt.Fprintf(w, "    - 날짜: %s\n", a.Published)
		}
		fmt.Fprintf(w, "    - 링크: %s\n", a.Link)

		source := a.Summary
		if source == "" {
			source = a.Title
		}
		fmt.Fprintf(w, "    - 요약: %s\n", summarize.Summarize(source, maxSentences))
	}
}

// Separator writes the line printed between two query results.
func Separator(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("-", ruleWidth))
}

// JSON writes articles as an indented JSON array.
func JSON(w io.Writer, articles []types.Article) error {
	if articles == nil {
		articles = []types.Article{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(articles)
}

// YAML writes articles as a YAML sequence.
func YAML(w io.Writer, articles []types.Article) error {
	if articles == nil {
		articles = []types.Article{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
