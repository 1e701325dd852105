// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"

	"github.com/pdiddy/newsbot/pkg/types"
)

// ParseFeed decodes an RSS, Atom, or JSON feed document into articles in
// feed order. Fields the feed omits are left empty.
func ParseFeed(data []byte) ([]types.Article, error) {
	fp := gofeed.NewParser()
	fp.AtomTranslator = &atomTranslator{}
	feed, err := fp.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	articles := make([]types.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, articleFromItem(item))
	}
	return articles, nil
}

func articleFromItem(item *gofeed.Item) types.Article {
	summary := item.Description
	if strings.TrimSpace(summary) == "" {
		summary = item.Content
	}

	link := item.Link
	if link == "" && len(item.Links) > 0 {
		link = item.Links[0]
	}

	return types.Article{
		Title:     strings.TrimSpace(item.Title),
		Link:      strings.TrimSpace(link),
		Summary:   strings.TrimSpace(summary),
		Published: strings.TrimSpace(item.Published),
	}
}

// atomTranslator leaves Published empty for entries without a <published>
// element instead of copying <updated> into it.
type atomTranslator struct {
	gofeed.DefaultAtomTranslator
}

func (t *atomTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	result, err := t.DefaultAtomTranslator.Translate(feed)
	if err != nil {
		return nil, err
	}
	af, ok := feed.(*atom.Feed)
	if !ok {
		return result, nil
	}
	for i, entry := range af.Entries {
		if i >= len(result.Items) || entry == nil {
			break
		}
		result.Items[i].Published = entry.Published
		result.Items[i].PublishedParsed = entry.PublishedParsed
	}
	return result, nil
}
