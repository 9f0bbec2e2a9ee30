package sentiment

// GetPlatformRequest identifies a platform by id or display name
type GetPlatformRequest struct {
	ID string `param:"id" validate:"required"`
}

// TopTopicsRequest represents query parameters for a platform's top topics
type TopTopicsRequest struct {
	ID    string `param:"id" validate:"required"`
	Sort  string `query:"sort" validate:"omitempty,oneof=mentions engagement"`
	Limit int    `query:"limit" validate:"min=0,max=50"`
}

// TrendRequest selects a slider position on the 7-point trend
type TrendRequest struct {
	ID    string `param:"id" validate:"required"`
	Index int    `query:"index" validate:"min=0,max=6"`
}

// CompetitiveInsightsRequest represents query filters for competitive insights
type CompetitiveInsightsRequest struct {
	Priority   string `query:"priority" validate:"omitempty,oneof=high medium low"`
	Impact     string `query:"impact" validate:"omitempty,oneof=opportunity threat neutral"`
	Competitor string `query:"competitor" validate:"omitempty,oneof=discord teams"`
}

// TimelineRequest filters the timeline by platform
type TimelineRequest struct {
	Platform string `query:"platform" validate:"omitempty,oneof=slack discord teams"`
}

// InsightsRequest filters derived insights by category
type InsightsRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=universal competitor_strength slack_advantage discord_only teams_only"`
}

// ClusterRequest selects one cluster by id
type ClusterRequest struct {
	ClusterID string `param:"id" validate:"required"`
}

// DeltaRequest selects a cluster and a competitor platform
type DeltaRequest struct {
	ClusterID string `param:"id" validate:"required"`
	Platform  string `query:"platform" validate:"required,oneof=discord teams"`
}
