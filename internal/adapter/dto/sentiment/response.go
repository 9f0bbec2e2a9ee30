package sentiment

// TopicResponse represents a topic cluster in API responses
type TopicResponse struct {
	ID         string    `json:"id"`
	Topic      string    `json:"topic"`
	Sentiment  string    `json:"sentiment"`
	Mentions   int       `json:"mentions"`
	Engagement float64   `json:"engagement"`
	Quotes     []string  `json:"quotes"`
	Trend      []float64 `json:"trend"`
}

// PlatformResponse represents a platform with its topics
type PlatformResponse struct {
	Platform         string          `json:"platform"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	OverallSentiment int             `json:"overall_sentiment"`
	SentimentChange  int             `json:"sentiment_change"`
	ChangeLabel      string          `json:"change_label"`
	Topics           []TopicResponse `json:"topics,omitempty"`
	TopicCount       int             `json:"topic_count"`
}

// PlatformSentimentResponse is one platform's value inside a derived insight
type PlatformSentimentResponse struct {
	Platform string  `json:"platform"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
}

// InsightResponse represents a derived comparison insight
type InsightResponse struct {
	ClusterID    string                      `json:"cluster_id"`
	Category     string                      `json:"category"`
	Label        string                      `json:"label"`
	VennPosition string                      `json:"venn_position"`
	Sentiment    []PlatformSentimentResponse `json:"sentiment"`
	Size         int                         `json:"size"`
	Summary      string                      `json:"summary"`
	Color        string                      `json:"color"`
}

// InsightListResponse wraps derived insights with their count
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
	Total    int               `json:"total"`
}

// AggregateResponse represents corpus-wide platform sentiment
type AggregateResponse struct {
	PerPlatformAverage []PlatformSentimentResponse `json:"per_platform_average"`
	TotalComments      int                         `json:"total_comments"`
	TotalClusters      int                         `json:"total_clusters"`
}

// DeltaResponse represents a formatted competitor delta
type DeltaResponse struct {
	ClusterID string `json:"cluster_id"`
	Platform  string `json:"platform"`
	Reference string `json:"reference"`
	Delta     string `json:"delta"`
}

// PlatformStatsResponse is one platform's raw statistics on a cluster
type PlatformStatsResponse struct {
	Platform     string  `json:"platform"`
	Name         string  `json:"name"`
	AvgSentiment float64 `json:"avg_sentiment"`
	Count        int     `json:"count"`
}

// ClusterResponse represents a raw cluster record
type ClusterResponse struct {
	ID            string                  `json:"id"`
	Label         string                  `json:"label"`
	Size          int                     `json:"size"`
	VennPosition  string                  `json:"venn_position"`
	Platforms     []PlatformStatsResponse `json:"platform_sentiment"`
	TotalCount    int                     `json:"total_count"`
	Keywords      []string                `json:"keywords,omitempty"`
	ExampleQuotes []string                `json:"example_quotes,omitempty"`
}
