package insight

import (
	"context"
	"fmt"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
)

// Service re-derives insights from the clustering snapshot on every call.
// Nothing derived is cached or shared between callers.
type Service struct {
	clusterRepo repositories.ClusterRepository
}

// NewService creates a new insight service
func NewService(clusterRepo repositories.ClusterRepository) *Service {
	return &Service{clusterRepo: clusterRepo}
}

// Filter narrows the derived insights
type Filter struct {
	Category entities.Category
}

// Insights derives comparison insights for every cluster, optionally filtered by category
func (s *Service) Insights(ctx context.Context, filter Filter) ([]entities.ComparisonInsight, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidCategory, filter.Category)
	}

	result, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	insights, err := DeriveInsights(result.Clusters, result.Metadata.TotalComments)
	if err != nil {
		return nil, err
	}
	if filter.Category == "" {
		return insights, nil
	}

	filtered := make([]entities.ComparisonInsight, 0, len(insights))
	for _, in := range insights {
		if in.Category == filter.Category {
			filtered = append(filtered, in)
		}
	}
	return filtered, nil
}

// Aggregate computes weighted per-platform sentiment over the whole snapshot
func (s *Service) Aggregate(ctx context.Context) (*entities.PlatformAggregate, error) {
	result, err := s.clusterRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clustering snapshot: %w", err)
	}
	return AggregatePlatformSentiment(result)
}

// Delta formats the sentiment difference between a competitor and the reference platform
func (s *Service) Delta(ctx context.Context, clusterID string, platform entities.Platform) (string, error) {
	if !platform.IsCompetitor() {
		return "", fmt.Errorf("%w: %q is not a competitor platform", entities.ErrInvalidPlatform, platform)
	}
	cluster, err := s.clusterRepo.FindCluster(ctx, clusterID)
	if err != nil {
		return "", err
	}
	return SentimentDelta(platform, cluster)
}

// Venn derives all insights and folds them into Venn regions
func (s *Service) Venn(ctx context.Context) ([]entities.VennRegion, error) {
	insights, err := s.Insights(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	return Venn(insights), nil
}

// Cluster returns the raw cluster record
func (s *Service) Cluster(ctx context.Context, id string) (*entities.ClusterData, error) {
	return s.clusterRepo.FindCluster(ctx, id)
}

func (s *Service) snapshot(ctx context.Context) (*entities.ClusteringResult, error) {
	result, err := s.clusterRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clustering snapshot: %w", err)
	}
	if result.Metadata == nil {
		return nil, entities.NewDataShapeError("", "metadata", "corpus metadata is missing")
	}
	return result, nil
}
