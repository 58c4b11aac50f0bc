package service

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"gorm.io/gorm"

	"rockrev/config"
	"rockrev/entity"
	"rockrev/misc"
	"rockrev/rest"
)

// News aggregates rock music news from the news API and configured RSS feeds
type News struct {
	db       *gorm.DB
	apiKey   string
	feedURLs []string
	newsAPI  string
}

// NewNews makes the news service
func NewNews(conn *gorm.DB, apiKey string, feedURLs []string) *News {
	return &News{
		db:       conn,
		apiKey:   apiKey,
		feedURLs: feedURLs,
		newsAPI:  "https://newsapi.org/v2/everything",
	}
}

// NewsItem is one aggregated article
type NewsItem struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	ImageURL    string     `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
	Source      string     `json:"source"`
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		URL         string     `json:"url"`
		URLToImage  string     `json:"urlToImage"`
		PublishedAt *time.Time `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Fetch returns the latest articles. An upstream failure surfaces as an
// error for this endpoint only; per-feed failures are logged and skipped.
func (s *News) Fetch() ([]NewsItem, error) {
	var items []NewsItem
	if s.apiKey != "" {
		fromAPI, err := s.fetchNewsAPI()
		if err != nil {
			return nil, err
		}
		items = append(items, fromAPI...)
	}
	sources, err := entity.ListNewsSources(s.db)
	if err != nil {
		return nil, err
	}
	for _, feedURL := range s.feedURLs {
		sources = append(sources, entity.NewsSource{URL: feedURL})
	}
	for _, source := range sources {
		fromFeed, err := s.fetchFeed(source)
		if err != nil {
			misc.Error("news_feed", fmt.Sprintf("fetch feed %s", source.URL), err)
			continue
		}
		items = append(items, fromFeed...)
	}
	return items, nil
}

func (s *News) fetchNewsAPI() ([]NewsItem, error) {
	query := url.Values{}
	query.Set("q", "rock music OR rock band OR rock album")
	query.Set("apiKey", s.apiKey)
	query.Set("sortBy", "publishedAt")
	query.Set("pageSize", fmt.Sprintf("%d", config.NewsPageSize))
	body, err := rest.Get(s.newsAPI + "?" + query.Encode())
	if err != nil {
		return nil, fmt.Errorf("news api request: %w", err)
	}
	var response newsAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("news api response: %w", err)
	}
	if response.Status != "ok" {
		return nil, fmt.Errorf("news api: %s", response.Message)
	}
	items := make([]NewsItem, 0, len(response.Articles))
	for _, article := range response.Articles {
		items = append(items, NewsItem{
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			ImageURL:    article.URLToImage,
			PublishedAt: article.PublishedAt,
			Source:      article.Source.Name,
		})
	}
	return items, nil
}

func (s *News) fetchFeed(source entity.NewsSource) ([]NewsItem, error) {
	feed, err := rest.GetFeed(source.URL)
	if err != nil {
		return nil, err
	}
	var items []NewsItem
	for _, item := range feed.Items {
		if source.Blocked(item.Title) || source.Blocked(item.Description) {
			continue
		}
		news := NewsItem{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			PublishedAt: item.PublishedParsed,
			Source:      feed.Title,
		}
		if item.Image != nil {
			news.ImageURL = item.Image.URL
		} else if imageURL, err := rest.GetImageURL(item.Link); err == nil {
			news.ImageURL = imageURL
		}
		items = append(items, news)
	}
	return items, nil
}
