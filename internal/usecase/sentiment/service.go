package sentiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
)

// Topic sort keys
const (
	SortByMentions   = "mentions"
	SortByEngagement = "engagement"
)

// Service answers the read-only queries the dashboards make against the dataset
type Service struct {
	repo repositories.SentimentRepository
}

// NewService creates a new sentiment service
func NewService(repo repositories.SentimentRepository) *Service {
	return &Service{repo: repo}
}

// ListPlatforms returns every platform in display order
func (s *Service) ListPlatforms(ctx context.Context) ([]entities.PlatformData, error) {
	platforms, err := s.repo.ListPlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	return platforms, nil
}

// GetPlatform retrieves a platform by id or display name
func (s *Service) GetPlatform(ctx context.Context, id string) (*entities.PlatformData, error) {
	p, ok := entities.ParsePlatform(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrPlatformNotFound, id)
	}
	return s.repo.GetPlatform(ctx, p)
}

// TopTopics returns the platform's topics sorted descending by sortBy. Equal
// keys keep dataset order. A non-positive limit returns every topic.
func (s *Service) TopTopics(ctx context.Context, id, sortBy string, limit int) ([]entities.TopicCluster, error) {
	platform, err := s.GetPlatform(ctx, id)
	if err != nil {
		return nil, err
	}

	var less func(a, b entities.TopicCluster) bool
	switch sortBy {
	case "", SortByMentions:
		less = func(a, b entities.TopicCluster) bool { return a.Mentions > b.Mentions }
	case SortByEngagement:
		less = func(a, b entities.TopicCluster) bool { return a.Engagement > b.Engagement }
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidSortKey, sortBy)
	}

	topics := platform.Topics
	sort.SliceStable(topics, func(i, j int) bool { return less(topics[i], topics[j]) })
	if limit > 0 && limit < len(topics) {
		topics = topics[:limit]
	}
	return topics, nil
}

// TopicPoint is one topic's trend value at a slider position
type TopicPoint struct {
	TopicID   string  `json:"topic_id" yaml:"topic_id"`
	Topic     string  `json:"topic" yaml:"topic"`
	Sentiment string  `json:"sentiment" yaml:"sentiment"`
	Value     float64 `json:"value" yaml:"value"`
}

// TrendAt returns every topic's trend value at index
func (s *Service) TrendAt(ctx context.Context, id string, index int) ([]TopicPoint, error) {
	if index < 0 || index >= entities.TrendLength {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", entities.ErrTrendIndex, index, entities.TrendLength)
	}
	platform, err := s.GetPlatform(ctx, id)
	if err != nil {
		return nil, err
	}

	points := make([]TopicPoint, 0, len(platform.Topics))
	for _, t := range platform.Topics {
		if index >= len(t.Trend) {
			return nil, fmt.Errorf("%w: topic %s has %d points", entities.ErrTrendIndex, t.ID, len(t.Trend))
		}
		points = append(points, TopicPoint{TopicID: t.ID, Topic: t.Topic, Sentiment: t.Sentiment, Value: t.Trend[index]})
	}
	return points, nil
}

// InsightFilter narrows competitive insights; empty fields match everything
type InsightFilter struct {
	Priority   string
	Impact     string
	Competitor entities.Platform
}

func (f InsightFilter) match(in entities.CompetitiveInsight) bool {
	if f.Priority != "" && in.Priority != f.Priority {
		return false
	}
	if f.Impact != "" && in.Impact != f.Impact {
		return false
	}
	if f.Competitor != "" && in.Competitor != f.Competitor {
		return false
	}
	return true
}

// CompetitiveInsights returns matching insights ordered by priority, then dataset order
func (s *Service) CompetitiveInsights(ctx context.Context, filter InsightFilter) ([]entities.CompetitiveInsight, error) {
	all, err := s.repo.ListCompetitiveInsights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitive insights: %w", err)
	}

	out := make([]entities.CompetitiveInsight, 0, len(all))
	for _, in := range all {
		if filter.match(in) {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return entities.PriorityRank(out[i].Priority) < entities.PriorityRank(out[j].Priority)
	})
	return out, nil
}

// Timeline returns events in date order, optionally for a single platform
func (s *Service) Timeline(ctx context.Context, platform entities.Platform) ([]entities.TimelineEvent, error) {
	events, err := s.repo.ListTimeline(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}

	out := events[:0]
	for _, e := range events {
		if platform == "" || e.Platform == platform {
			out = append(out, e)
		}
	}
	// Dates are YYYY-MM-DD so lexical order is chronological.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// LeaderboardEntry ranks a platform by overall sentiment
type LeaderboardEntry struct {
	Rank             int               `json:"rank" yaml:"rank"`
	Platform         entities.Platform `json:"platform" yaml:"platform"`
	Name             string            `json:"name" yaml:"name"`
	OverallSentiment int               `json:"overall_sentiment" yaml:"overall_sentiment"`
	SentimentChange  int               `json:"sentiment_change" yaml:"sentiment_change"`
}

// Leaderboard orders platforms by overall sentiment, highest first, ties by id
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	platforms, err := s.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(platforms, func(i, j int) bool {
		if platforms[i].OverallSentiment != platforms[j].OverallSentiment {
			return platforms[i].OverallSentiment > platforms[j].OverallSentiment
		}
		return platforms[i].Platform < platforms[j].Platform
	})

	entries := make([]LeaderboardEntry, len(platforms))
	for i, p := range platforms {
		entries[i] = LeaderboardEntry{
			Rank:             i + 1,
			Platform:         p.Platform,
			Name:             p.Name,
			OverallSentiment: p.OverallSentiment,
			SentimentChange:  p.SentimentChange,
		}
	}
	return entries, nil
}
