// Package rest wraps outbound HTTP fetches for feeds and page metadata.
package rest

import (
	"bytes"

	"github.com/lafin/http"
	"github.com/mmcdole/gofeed"
	"github.com/thoas/go-funk"
	"golang.org/x/net/html"
)

// GetFeed return feed
func GetFeed(feedURL string) (*gofeed.Feed, error) {
	body, _, err := http.Get(feedURL, nil)
	if err != nil {
		return nil, err
	}
	fp := gofeed.NewParser()
	feed, err := fp.ParseString(string(body))
	if err != nil {
		return nil, err
	}
	return feed, nil
}

// Get fetches a URL and returns the body
func Get(url string) ([]byte, error) {
	body, _, err := http.Get(url, nil)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func findMeta(node *html.Node, key string) string {
	if node.Type == html.ElementNode && node.Data == "meta" && len(node.Attr) > 0 {
		if funk.Contains(node.Attr, func(attr html.Attribute) bool {
			return attr.Key == "property" && attr.Val == key
		}) {
			found, ok := funk.Find(node.Attr, func(attr html.Attribute) bool {
				return attr.Key == "content"
			}).(html.Attribute)
			if ok {
				return found.Val
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		found := findMeta(child, key)
		if found != "" {
			return found
		}
	}
	return ""
}

// GetImageURL return the og:image of a page, empty when the page has none
func GetImageURL(link string) (string, error) {
	body, _, err := http.Get(link, nil)
	if err != nil {
		return "", err
	}
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return findMeta(doc, "og:image"), nil
}
