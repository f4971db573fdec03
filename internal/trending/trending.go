// Package trending serves the fixed trending-content datasets behind a
// simulated network delay. There is no real upstream: the data is static and
// the latency exists so consumers exercise their loading paths.
package trending

import (
	"context"
	"time"

	"ripple/internal/observability"
)

// DefaultLatency mirrors the delay the stubs have always simulated.
const DefaultLatency = time.Second

// Source is the name of an article's publisher.
type Source struct {
	Name string `json:"name"`
}

// Article is a trending news item.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      Source `json:"source"`
}

// Video is a trending short video.
type Video struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Poster      string `json:"poster"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
}

// NewsService serves the trending articles dataset.
type NewsService struct {
	latency time.Duration
}

// NewNewsService creates a NewsService with the given simulated latency.
func NewNewsService(latency time.Duration) *NewsService {
	return &NewsService{latency: latency}
}

// Fetch returns the trending articles after the simulated delay. The delay is
// interruptible through ctx.
func (s *NewsService) Fetch(ctx context.Context) ([]Article, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	observability.TrendingFetches.WithLabelValues("news").Inc()
	out := make([]Article, len(articles))
	copy(out, articles)
	return out, nil
}

// VideoService serves the trending videos dataset.
type VideoService struct {
	latency time.Duration
}

// NewVideoService creates a VideoService with the given simulated latency.
func NewVideoService(latency time.Duration) *VideoService {
	return &VideoService{latency: latency}
}

// Fetch returns the trending videos after the simulated delay.
func (s *VideoService) Fetch(ctx context.Context) ([]Video, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	observability.TrendingFetches.WithLabelValues("videos").Inc()
	out := make([]Video, len(videos))
	copy(out, videos)
	return out, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
