package entities

// Impact classifications for competitive insights
const (
	ImpactOpportunity = "opportunity"
	ImpactThreat      = "threat"
	ImpactNeutral     = "neutral"
)

// Priority constants for competitive insights
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// CompetitiveInsight is a curated observation about a competitor platform
type CompetitiveInsight struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Competitor     Platform `json:"competitor" validate:"required,oneof=discord teams"`
	Trend          string   `json:"trend"`
	Impact         string   `json:"impact" validate:"required,oneof=opportunity threat neutral"`
	Recommendation string   `json:"recommendation"`
	Comparison     string   `json:"comparison"`
	Priority       string   `json:"priority" validate:"required,oneof=high medium low"`
}

// PriorityRank orders priorities from most to least urgent
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// TimelineEvent marks a dated event that moved sentiment on a platform
type TimelineEvent struct {
	ID              string   `json:"id" validate:"required"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	Platform        Platform `json:"platform" validate:"required,oneof=slack discord teams"`
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	SentimentImpact int      `json:"sentiment_impact"`
}
