// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chat

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/newsbot/internal/present"
	"github.com/pdiddy/newsbot/pkg/types"
)

// fakeSearcher records queries and returns fixed articles.
type fakeSearcher struct {
	queries    []string
	maxResults []int
	articles   []types.Article
}

func (f *fakeSearcher) Fetch(_ context.Context, query string, maxResults int) []types.Article {
	f.queries = append(f.queries, query)
	f.maxResults = append(f.maxResults, maxResults)
	return f.articles
}

func runLoop(t *testing.T, input string, s *fakeSearcher) string {
	t.Helper()
	var out bytes.Buffer
	l := &Loop{In: strings.NewReader(input), Out: &out, Searcher: s}
	require.NoError(t, l.Run(context.Background()))
	return out.String()
}

func TestIsExit(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"exit", true},
		{"EXIT", true},
		{"Quit", true},
		{"qUiT", true},
		{"종료", true},
		{"끝", true},
		{"exit now", false},
		{"끝끝", false},
		{"종료합니다", false},
		{"뉴스", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExit(tt.query))
		})
	}
}

func TestRun_GreetingThenExit(t *testing.T) {
	out := runLoop(t, "exit\n", &fakeSearcher{})

	want := "뉴스 요약 챗봇입니다.\n" +
		"키워드를 입력하면 관련된 최신 뉴스 10개를 구글 뉴스에서 찾아 요약해 드려요.\n" +
		"종료하려면 'exit', 'quit', '종료' 중 하나를 입력하세요.\n\n" +
		Prompt +
		"챗봇을 종료합니다. 이용해 주셔서 감사합니다.\n"
	assert.Equal(t, want, out)
}

func TestRun_ExitKeywordsDoNotFetch(t *testing.T) {
	for _, kw := range []string{"exit", "QUIT", "종료", "끝", "  Exit  "} {
		t.Run(kw, func(t *testing.T) {
			s := &fakeSearcher{}
			out := runLoop(t, kw+"\n반도체\n", s)

			assert.Empty(t, s.queries)
			assert.Contains(t, out, "챗봇을 종료합니다. 이용해 주셔서 감사합니다.")
		})
	}
}

func TestRun_EmptyInputReprompts(t *testing.T) {
	s := &fakeSearcher{}
	out := runLoop(t, "\n   \n\t\nexit\n", s)

	assert.Empty(t, s.queries)
	assert.Equal(t, 4, strings.Count(out, Prompt))
	assert.NotContains(t, out, present.NotFoundMessage)
}

func TestRun_QueryFetchesOnceAndPresents(t *testing.T) {
	s := &fakeSearcher{articles: []types.Article{
		{Title: "반도체 수출 급증", Link: "https://news.example.com/1", Summary: "수출이 늘었다. 두 번째. 세 번째."},
	}}
	out := runLoop(t, "  반도체  \nexit\n", s)

	require.Equal(t, []string{"반도체"}, s.queries)
	assert.Equal(t, []int{types.DefaultMaxResults}, s.maxResults)
	assert.Contains(t, out, "'반도체' 관련 뉴스를 검색 중입니다.")
	assert.Contains(t, out, "총 1개의 뉴스를 찾았어요.")
	assert.Contains(t, out, "[1] 반도체 수출 급증")
	assert.Contains(t, out, "    - 요약: 수출이 늘었다 두 번째\n")
	assert.Contains(t, out, strings.Repeat("-", 80))
}

func TestRun_NoResultsPrintsNotFound(t *testing.T) {
	s := &fakeSearcher{}
	out := runLoop(t, "없는키워드\nquit\n", s)

	assert.Equal(t, []string{"없는키워드"}, s.queries)
	assert.Contains(t, out, present.NotFoundMessage)
}

func TestRun_MultipleQueries(t *testing.T) {
	s := &fakeSearcher{}
	runLoop(t, "a\nb\n\nc\n끝\nd\n", s)
	assert.Equal(t, []string{"a", "b", "c"}, s.queries)
}

func TestRun_EndOfInputStops(t *testing.T) {
	s := &fakeSearcher{}
	out := runLoop(t, "golang", s)

	assert.Equal(t, []string{"golang"}, s.queries)
	assert.NotContains(t, out, "챗봇을 종료합니다")
}

func TestRun_CustomSettings(t *testing.T) {
	s := &fakeSearcher{articles: []types.Article{{Title: "t", Link: "l", Summary: "A. B. C. D."}}}
	var out bytes.Buffer
	l := &Loop{In: strings.NewReader("q\nexit\n"), Out: &out, Searcher: s, MaxResults: 3, MaxSentences: 3}
	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, []int{3}, s.maxResults)
	assert.Contains(t, out.String(), "최신 뉴스 3개를")
	assert.Contains(t, out.String(), "    - 요약: A B C\n")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &fakeSearcher{}
	l := &Loop{In: strings.NewReader("q\n"), Out: &bytes.Buffer{}, Searcher: s}
	assert.ErrorIs(t, l.Run(ctx), context.Canceled)
	assert.Empty(t, s.queries)
}
