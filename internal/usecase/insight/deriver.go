package insight

import (
	"fmt"
	"math"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
)

// DeriveInsights turns clusters into comparison insights in input order.
// A cluster missing any platform entry fails the whole call with a
// *entities.DataShapeError; no partial result is returned.
func DeriveInsights(clusters []entities.ClusterData, totalCorpus int) ([]entities.ComparisonInsight, error) {
	insights := make([]entities.ComparisonInsight, 0, len(clusters))
	for i := range clusters {
		view, err := newClusterView(&clusters[i])
		if err != nil {
			return nil, err
		}
		view.category = classify(view)

		insights = append(insights, entities.ComparisonInsight{
			ClusterID:    view.cluster.ID,
			Category:     view.category,
			Label:        view.cluster.Label,
			VennPosition: view.cluster.VennPosition,
			Sentiment:    view.sentimentMap(),
			Size:         view.cluster.Size,
			Summary:      summarize(view, totalCorpus),
			Color:        ColorFor(view.category),
		})
	}
	return insights, nil
}

// AggregatePlatformSentiment computes the count weighted average sentiment per
// platform. A platform with no comments averages 0. Totals come from the corpus
// metadata and are not recomputed from the clusters.
func AggregatePlatformSentiment(result *entities.ClusteringResult) (*entities.PlatformAggregate, error) {
	if result == nil || result.Metadata == nil {
		return nil, entities.NewDataShapeError("", "metadata", "corpus metadata is missing")
	}

	weighted := make(map[entities.Platform]float64, len(entities.Platforms))
	counts := make(map[entities.Platform]int, len(entities.Platforms))
	for _, c := range result.Clusters {
		if err := c.Sentiments.Validate(c.ID); err != nil {
			return nil, err
		}
		for _, p := range entities.Platforms {
			st := c.Sentiments.Get(p)
			weighted[p] += st.AvgSentiment * float64(st.Count)
			counts[p] += st.Count
		}
	}

	averages := make(map[entities.Platform]float64, len(entities.Platforms))
	for _, p := range entities.Platforms {
		if counts[p] == 0 {
			averages[p] = 0
			continue
		}
		averages[p] = normalize(weighted[p] / float64(counts[p]))
	}

	return &entities.PlatformAggregate{
		PerPlatformAverage: averages,
		TotalComments:      result.Metadata.TotalComments,
		TotalClusters:      result.Metadata.TotalClusters,
	}, nil
}

// SentimentDelta formats competitor minus reference sentiment for one cluster.
// Differences under SimilarThreshold read as "similar".
func SentimentDelta(platform entities.Platform, cluster *entities.ClusterData) (string, error) {
	if !platform.IsCompetitor() {
		return "", fmt.Errorf("%w: %q is not a competitor platform", entities.ErrInvalidPlatform, platform)
	}
	if cluster == nil {
		return "", entities.NewDataShapeError("", "cluster", "cluster is missing")
	}
	if err := cluster.Sentiments.Validate(cluster.ID); err != nil {
		return "", err
	}

	delta := normalize(cluster.Sentiments.Get(platform).AvgSentiment - cluster.Sentiments.Get(entities.ReferencePlatform).AvgSentiment)
	if math.Abs(delta) < SimilarThreshold {
		return "similar", nil
	}
	return fmt.Sprintf("%+.2f", delta), nil
}

// Venn sums insights into one region per category in fixed category order
func Venn(insights []entities.ComparisonInsight) []entities.VennRegion {
	byCategory := make(map[entities.Category]*entities.VennRegion, len(entities.Categories))
	regions := make([]entities.VennRegion, len(entities.Categories))
	for i, cat := range entities.Categories {
		regions[i] = entities.VennRegion{Category: cat, Color: ColorFor(cat)}
		byCategory[cat] = &regions[i]
	}
	for _, in := range insights {
		region, ok := byCategory[in.Category]
		if !ok {
			continue
		}
		region.ClusterCount++
		region.CommentCount += in.Size
	}
	return regions
}
