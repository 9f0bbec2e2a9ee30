package repositories

import (
	"context"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
)

// SentimentRepository defines read access to the static sentiment dataset
type SentimentRepository interface {
	// ListPlatforms returns every platform in display order
	ListPlatforms(ctx context.Context) ([]entities.PlatformData, error)

	// GetPlatform retrieves one platform by id
	GetPlatform(ctx context.Context, id entities.Platform) (*entities.PlatformData, error)

	// ListCompetitiveInsights returns the curated competitive insights
	ListCompetitiveInsights(ctx context.Context) ([]entities.CompetitiveInsight, error)

	// ListTimeline returns timeline events in dataset order
	ListTimeline(ctx context.Context) ([]entities.TimelineEvent, error)
}
