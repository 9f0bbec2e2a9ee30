package repository

import (
	"context"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/dataset"
)

// sentimentRepository implements the SentimentRepository interface over the bundled dataset
type sentimentRepository struct {
	data *dataset.Dataset
}

// NewSentimentRepository creates a new sentiment repository
func NewSentimentRepository(data *dataset.Dataset) repositories.SentimentRepository {
	return &sentimentRepository{data: data}
}

// ListPlatforms returns a copy of every platform record
func (r *sentimentRepository) ListPlatforms(ctx context.Context) ([]entities.PlatformData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entities.PlatformData, len(r.data.Platforms))
	for i := range r.data.Platforms {
		out[i] = clonePlatform(r.data.Platforms[i])
	}
	return out, nil
}

// GetPlatform retrieves one platform by id
func (r *sentimentRepository) GetPlatform(ctx context.Context, id entities.Platform) (*entities.PlatformData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.data.Platforms {
		if r.data.Platforms[i].Platform == id {
			p := clonePlatform(r.data.Platforms[i])
			return &p, nil
		}
	}
	return nil, entities.ErrPlatformNotFound
}

// ListCompetitiveInsights returns a copy of the curated insights
func (r *sentimentRepository) ListCompetitiveInsights(ctx context.Context) ([]entities.CompetitiveInsight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entities.CompetitiveInsight(nil), r.data.CompetitiveInsights...), nil
}

// ListTimeline returns a copy of the timeline events
func (r *sentimentRepository) ListTimeline(ctx context.Context) ([]entities.TimelineEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]entities.TimelineEvent(nil), r.data.Timeline...), nil
}

func clonePlatform(p entities.PlatformData) entities.PlatformData {
	topics := make([]entities.TopicCluster, len(p.Topics))
	for i, t := range p.Topics {
		t.Quotes = append([]string(nil), t.Quotes...)
		t.Trend = append([]float64(nil), t.Trend...)
		topics[i] = t
	}
	p.Topics = topics
	return p
}
