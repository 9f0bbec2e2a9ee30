package entities

// Category classifies a cluster by how the platforms compare on it
type Category string

// Category constants
const (
	CategoryUniversal          Category = "universal"
	CategoryCompetitorStrength Category = "competitor_strength"
	CategorySlackAdvantage     Category = "slack_advantage"
	CategoryDiscordOnly        Category = "discord_only"
	CategoryTeamsOnly          Category = "teams_only"
)

// Categories lists every category in presentation order
var Categories = []Category{
	CategoryUniversal,
	CategorySlackAdvantage,
	CategoryCompetitorStrength,
	CategoryDiscordOnly,
	CategoryTeamsOnly,
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ComparisonInsight is the derived, display-ready view of one cluster
type ComparisonInsight struct {
	ClusterID    string               `json:"cluster_id" yaml:"cluster_id"`
	Category     Category             `json:"category" yaml:"category"`
	Label        string               `json:"label" yaml:"label"`
	VennPosition string               `json:"venn_position" yaml:"venn_position"`
	Sentiment    map[Platform]float64 `json:"sentiment" yaml:"sentiment"`
	Size         int                  `json:"size" yaml:"size"`
	Summary      string               `json:"summary" yaml:"summary"`
	Color        string               `json:"color" yaml:"color"`
}

// PlatformAggregate is the corpus-wide, count weighted sentiment per platform
type PlatformAggregate struct {
	PerPlatformAverage map[Platform]float64 `json:"per_platform_average" yaml:"per_platform_average"`
	TotalComments      int                  `json:"total_comments" yaml:"total_comments"`
	TotalClusters      int                  `json:"total_clusters" yaml:"total_clusters"`
}

// VennRegion weights one region of the platform Venn diagram
type VennRegion struct {
	Category     Category `json:"category" yaml:"category"`
	ClusterCount int      `json:"cluster_count" yaml:"cluster_count"`
	CommentCount int      `json:"comment_count" yaml:"comment_count"`
	Color        string   `json:"color" yaml:"color"`
}
