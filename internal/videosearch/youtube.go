package videosearch

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"career-quiz-service/internal/models"
)

// Query describes one video search.
type Query struct {
	Query      string
	AgeRange   string
	Subject    string
	MaxResults int64
}

// Searcher is the provider surface the content pipeline depends on.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]models.VideoItem, error)
}

// YouTubeClient searches YouTube with an API key, restricted to safe
// results.
type YouTubeClient struct {
	svc *youtube.Service
}

func NewYouTubeClient(ctx context.Context, apiKey string) (*YouTubeClient, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &YouTubeClient{svc: svc}, nil
}

func (c *YouTubeClient) Search(ctx context.Context, q Query) ([]models.VideoItem, error) {
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	term := q.Query
	if q.AgeRange != "" {
		term = fmt.Sprintf("%s for kids ages %s", term, q.AgeRange)
	}

	call := c.svc.Search.List([]string{"snippet"}).
		Q(term).
		Type("video").
		SafeSearch("strict").
		VideoEmbeddable("true").
		MaxResults(maxResults).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search %q: %w", term, err)
	}

	videos := make([]models.VideoItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, models.VideoItem{
			Title:       item.Snippet.Title,
			URL:         "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			Description: item.Snippet.Description,
			Topic:       q.Subject,
		})
	}
	return videos, nil
}
