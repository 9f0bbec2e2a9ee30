package entities

// Venn positions produced by the upstream overlap analysis. Any other tag is
// treated as a mixed cluster.
const (
	VennAll3        = "all_3"
	VennDiscordOnly = "discord_only"
	VennTeamsOnly   = "teams_only"
)

// PlatformStats is the sentiment of one platform's comments inside a cluster
type PlatformStats struct {
	AvgSentiment float64 `json:"avg_sentiment"`
	Count        int     `json:"count"`
}

// PlatformSentiments holds exactly one slot per platform. A nil slot only
// occurs in malformed input and is rejected by Validate.
type PlatformSentiments struct {
	Slack   *PlatformStats `json:"slack"`
	Discord *PlatformStats `json:"discord"`
	Teams   *PlatformStats `json:"teams"`
}

// Get returns the slot for platform p
func (s PlatformSentiments) Get(p Platform) *PlatformStats {
	switch p {
	case PlatformSlack:
		return s.Slack
	case PlatformDiscord:
		return s.Discord
	case PlatformTeams:
		return s.Teams
	default:
		return nil
	}
}

// Set stores stats in the slot for platform p
func (s *PlatformSentiments) Set(p Platform, stats PlatformStats) {
	switch p {
	case PlatformSlack:
		s.Slack = &stats
	case PlatformDiscord:
		s.Discord = &stats
	case PlatformTeams:
		s.Teams = &stats
	}
}

// Validate fails with a DataShapeError naming the first missing platform
func (s PlatformSentiments) Validate(clusterID string) error {
	for _, p := range Platforms {
		if s.Get(p) == nil {
			return NewDataShapeError(clusterID, "platform_sentiment."+p.DisplayName(), "missing platform entry")
		}
	}
	return nil
}

// TotalCount sums comment counts over the slots that are present
func (s PlatformSentiments) TotalCount() int {
	total := 0
	for _, p := range Platforms {
		if st := s.Get(p); st != nil {
			total += st.Count
		}
	}
	return total
}

// ClusterData is one cluster of the external clustering result
type ClusterData struct {
	ID            string             `json:"id"`
	Label         string             `json:"label"`
	Size          int                `json:"size"`
	VennPosition  string             `json:"venn_position"`
	Sentiments    PlatformSentiments `json:"platform_sentiment"`
	Keywords      []string           `json:"keywords"`
	ExampleQuotes []string           `json:"example_quotes"`
}

// CorpusMetadata describes the whole comment corpus, including comments that
// the clustering step discarded as noise.
type CorpusMetadata struct {
	TotalComments int `json:"total_comments"`
	TotalClusters int `json:"total_clusters"`
}

// ClusteringResult is a parsed clustering document with clusters in document order
type ClusteringResult struct {
	Metadata *CorpusMetadata `json:"metadata"`
	Clusters []ClusterData   `json:"clusters"`
}

// Cluster looks up a cluster by id
func (r *ClusteringResult) Cluster(id string) (*ClusterData, bool) {
	for i := range r.Clusters {
		if r.Clusters[i].ID == id {
			return &r.Clusters[i], true
		}
	}
	return nil, false
}

// Validate checks the structural contract of the whole document
func (r *ClusteringResult) Validate() error {
	if r.Metadata == nil {
		return NewDataShapeError("", "metadata", "corpus metadata is missing")
	}
	for _, c := range r.Clusters {
		if err := c.Sentiments.Validate(c.ID); err != nil {
			return err
		}
	}
	return nil
}
