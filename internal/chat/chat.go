// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chat runs the interactive keyword loop: read a keyword, fetch the
// matching news, print it, and repeat until an exit keyword.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/newsbot/internal/present"
	"github.com/pdiddy/newsbot/pkg/types"
)

// Prompt is written before every line of input.
const Prompt = "검색할 키워드를 입력하세요: "

const maxLineBytes = 1 << 20

// Latin exit keywords compare case-insensitively; localized ones must match
// exactly.
var (
	latinExitKeywords     = []string{"exit", "quit"}
	localizedExitKeywords = []string{"종료", "끝"}
)

// Searcher returns the articles for a query. Failures are handled by the
// implementation and surface as an empty list.
type Searcher interface {
	Fetch(ctx context.Context, query string, maxResults int) []types.Article
}

// Loop holds the I/O and settings for one interactive session. The zero
// values of MaxResults and MaxSentences mean the defaults.
type Loop struct {
	In           io.Reader
	Out          io.Writer
	Searcher     Searcher
	MaxResults   int
	MaxSentences int
}

// IsExit reports whether query ends the session.
func IsExit(query string) bool {
	lower := strings.ToLower(query)
	for _, k := range latinExitKeywords {
		if lower == k {
			return true
		}
	}
	for _, k := range localizedExitKeywords {
		if query == k {
			return true
		}
	}
	return false
}

// Run reads queries until an exit keyword or end of input. Each non-empty
// query triggers exactly one fetch followed by presentation. Run returns nil
// on exit keyword or end of input, and ctx.Err() if ctx is done before the
// next prompt.
func (l *Loop) Run(ctx context.Context) error {
	maxResults := l.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}

	l.greet(maxResults)

	scanner := bufio.NewScanner(l.In)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(l.Out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(l.Out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		if IsExit(query) {
			fmt.Fprintln(l.Out, "챗봇을 종료합니다. 이용해 주셔서 감사합니다.")
			return nil
		}

		fmt.Fprintf(l.Out, "\n'%s' 관련 뉴스를 검색 중입니다. 잠시만 기다려 주세요...\n\n", query)
		articles := l.Searcher.Fetch(ctx, query, maxResults)
		present.Articles(l.Out, articles, l.MaxSentences)
		present.Separator(l.Out)
	}
}

func (l *Loop) greet(maxResults int) {
	fmt.Fprintln(l.Out, "뉴스 요약 챗봇입니다.")
	fmt.Fprintf(l.Out, "키워드를 입력하면 관련된 최신 뉴스 %d개를 구글 뉴스에서 찾아 요약해 드려요.\n", maxResults)
	fmt.Fprint(l.Out, "종료하려면 'exit', 'quit', '종료' 중 하나를 입력하세요.\n\n")
}
