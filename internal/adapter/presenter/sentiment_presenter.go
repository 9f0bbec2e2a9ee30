package presenter

import (
	"fmt"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/dto/sentiment"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
)

// ToTopicResponse converts a TopicCluster entity to TopicResponse DTO
func ToTopicResponse(t entities.TopicCluster) sentiment.TopicResponse {
	return sentiment.TopicResponse{
		ID:         t.ID,
		Topic:      t.Topic,
		Sentiment:  t.Sentiment,
		Mentions:   t.Mentions,
		Engagement: t.Engagement,
		Quotes:     t.Quotes,
		Trend:      t.Trend,
	}
}

// ToTopicResponses converts a slice of topics
func ToTopicResponses(topics []entities.TopicCluster) []sentiment.TopicResponse {
	out := make([]sentiment.TopicResponse, len(topics))
	for i, t := range topics {
		out[i] = ToTopicResponse(t)
	}
	return out
}

// ToPlatformResponse converts a PlatformData entity. withTopics controls
// whether the topic list is embedded or only counted.
func ToPlatformResponse(p *entities.PlatformData, withTopics bool) *sentiment.PlatformResponse {
	if p == nil {
		return nil
	}

	response := &sentiment.PlatformResponse{
		Platform:         string(p.Platform),
		Name:             p.Name,
		Category:         p.Category,
		OverallSentiment: p.OverallSentiment,
		SentimentChange:  p.SentimentChange,
		ChangeLabel:      fmt.Sprintf("%+d%%", p.SentimentChange),
		TopicCount:       len(p.Topics),
	}
	if withTopics {
		response.Topics = ToTopicResponses(p.Topics)
	}
	return response
}

// ToPlatformListResponse converts a slice of platforms without their topics
func ToPlatformListResponse(platforms []entities.PlatformData) []*sentiment.PlatformResponse {
	out := make([]*sentiment.PlatformResponse, len(platforms))
	for i := range platforms {
		out[i] = ToPlatformResponse(&platforms[i], false)
	}
	return out
}

// platformValues flattens a platform map into display order
func platformValues(values map[entities.Platform]float64) []sentiment.PlatformSentimentResponse {
	out := make([]sentiment.PlatformSentimentResponse, 0, len(entities.Platforms))
	for _, p := range entities.Platforms {
		out = append(out, sentiment.PlatformSentimentResponse{
			Platform: string(p),
			Name:     p.DisplayName(),
			Value:    values[p],
		})
	}
	return out
}

// ToInsightResponse converts a ComparisonInsight entity
func ToInsightResponse(in entities.ComparisonInsight) sentiment.InsightResponse {
	return sentiment.InsightResponse{
		ClusterID:    in.ClusterID,
		Category:     string(in.Category),
		Label:        in.Label,
		VennPosition: in.VennPosition,
		Sentiment:    platformValues(in.Sentiment),
		Size:         in.Size,
		Summary:      in.Summary,
		Color:        in.Color,
	}
}

// ToInsightListResponse converts derived insights, keeping their order
func ToInsightListResponse(insights []entities.ComparisonInsight) *sentiment.InsightListResponse {
	out := make([]sentiment.InsightResponse, len(insights))
	for i, in := range insights {
		out[i] = ToInsightResponse(in)
	}
	return &sentiment.InsightListResponse{Insights: out, Total: len(out)}
}

// ToAggregateResponse converts a PlatformAggregate entity
func ToAggregateResponse(agg *entities.PlatformAggregate) *sentiment.AggregateResponse {
	if agg == nil {
		return nil
	}
	return &sentiment.AggregateResponse{
		PerPlatformAverage: platformValues(agg.PerPlatformAverage),
		TotalComments:      agg.TotalComments,
		TotalClusters:      agg.TotalClusters,
	}
}

// ToDeltaResponse builds the delta DTO
func ToDeltaResponse(clusterID string, platform entities.Platform, delta string) *sentiment.DeltaResponse {
	return &sentiment.DeltaResponse{
		ClusterID: clusterID,
		Platform:  string(platform),
		Reference: string(entities.ReferencePlatform),
		Delta:     delta,
	}
}

// ToClusterResponse builds the cluster DTO. Missing platform entries are left out.
func ToClusterResponse(c *entities.ClusterData) *sentiment.ClusterResponse {
	platforms := make([]sentiment.PlatformStatsResponse, 0, len(entities.Platforms))
	for _, p := range entities.Platforms {
		st := c.Sentiments.Get(p)
		if st == nil {
			continue
		}
		platforms = append(platforms, sentiment.PlatformStatsResponse{
			Platform:     string(p),
			Name:         p.DisplayName(),
			AvgSentiment: st.AvgSentiment,
			Count:        st.Count,
		})
	}
	return &sentiment.ClusterResponse{
		ID:            c.ID,
		Label:         c.Label,
		Size:          c.Size,
		VennPosition:  c.VennPosition,
		Platforms:     platforms,
		TotalCount:    c.Sentiments.TotalCount(),
		Keywords:      c.Keywords,
		ExampleQuotes: c.ExampleQuotes,
	}
}
