package insight

import (
	"fmt"
	"math"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
)

// LeadMargin is how far one platform must be ahead before a summary calls it a lead
const LeadMargin = 0.1

// SimilarThreshold is the delta below which two platforms read as "similar"
const SimilarThreshold = 0.05

// precision cancels binary float noise before threshold comparisons
const precision = 1e9

func normalize(v float64) float64 {
	return math.Round(v*precision) / precision
}

// clusterView is a cluster with its three platform slots resolved. Both the
// category rules and the summary rules read from it.
type clusterView struct {
	cluster  *entities.ClusterData
	slack    entities.PlatformStats
	discord  entities.PlatformStats
	teams    entities.PlatformStats
	category entities.Category
}

func newClusterView(c *entities.ClusterData) (*clusterView, error) {
	if err := c.Sentiments.Validate(c.ID); err != nil {
		return nil, err
	}
	return &clusterView{
		cluster: c,
		slack:   *c.Sentiments.Slack,
		discord: *c.Sentiments.Discord,
		teams:   *c.Sentiments.Teams,
	}, nil
}

func (v *clusterView) minSentiment() float64 {
	return math.Min(v.slack.AvgSentiment, math.Min(v.discord.AvgSentiment, v.teams.AvgSentiment))
}

func (v *clusterView) maxSentiment() float64 {
	return math.Max(v.slack.AvgSentiment, math.Max(v.discord.AvgSentiment, v.teams.AvgSentiment))
}

// leadingCompetitor returns the competitor with the higher average. Discord wins a tie.
func (v *clusterView) leadingCompetitor() (entities.Platform, float64) {
	if v.teams.AvgSentiment > v.discord.AvgSentiment {
		return entities.PlatformTeams, v.teams.AvgSentiment
	}
	return entities.PlatformDiscord, v.discord.AvgSentiment
}

// slackLead is slack minus the best competitor; negative when a competitor is ahead
func (v *clusterView) slackLead() float64 {
	_, best := v.leadingCompetitor()
	return normalize(v.slack.AvgSentiment - best)
}

func (v *clusterView) sentimentMap() map[entities.Platform]float64 {
	return map[entities.Platform]float64{
		entities.PlatformSlack:   v.slack.AvgSentiment,
		entities.PlatformDiscord: v.discord.AvgSentiment,
		entities.PlatformTeams:   v.teams.AvgSentiment,
	}
}

type categoryRule struct {
	name     string
	match    func(v *clusterView) bool
	category entities.Category
}

// categoryRules are evaluated in order; the first match wins. The last rule
// always matches, so equal sentiments fall through to competitor_strength.
var categoryRules = []categoryRule{
	{
		name:     "venn_all_3",
		match:    func(v *clusterView) bool { return v.cluster.VennPosition == entities.VennAll3 },
		category: entities.CategoryUniversal,
	},
	{
		name:     "venn_discord_only",
		match:    func(v *clusterView) bool { return v.cluster.VennPosition == entities.VennDiscordOnly },
		category: entities.CategoryDiscordOnly,
	},
	{
		name:     "venn_teams_only",
		match:    func(v *clusterView) bool { return v.cluster.VennPosition == entities.VennTeamsOnly },
		category: entities.CategoryTeamsOnly,
	},
	{
		name: "slack_strictly_ahead",
		match: func(v *clusterView) bool {
			return v.slack.AvgSentiment > v.discord.AvgSentiment && v.slack.AvgSentiment > v.teams.AvgSentiment
		},
		category: entities.CategorySlackAdvantage,
	},
	{
		name:     "fallback",
		match:    func(*clusterView) bool { return true },
		category: entities.CategoryCompetitorStrength,
	},
}

func classify(v *clusterView) entities.Category {
	for _, rule := range categoryRules {
		if rule.match(v) {
			return rule.category
		}
	}
	return entities.CategoryCompetitorStrength
}

type summaryRule struct {
	name   string
	match  func(v *clusterView) bool
	render func(v *clusterView, totalCorpus int) string
}

// summaryRules run after classification and may key off the category
var summaryRules = []summaryRule{
	{
		name:  "universal",
		match: func(v *clusterView) bool { return v.category == entities.CategoryUniversal },
		render: func(v *clusterView, totalCorpus int) string {
			return fmt.Sprintf("Shared across all three platforms: %d%% of all comments, sentiment ranges from %.2f to %.2f",
				corpusShare(v.cluster.Size, totalCorpus), v.minSentiment(), v.maxSentiment())
		},
	},
	{
		name:  "discord_only",
		match: func(v *clusterView) bool { return v.category == entities.CategoryDiscordOnly },
		render: func(v *clusterView, _ int) string {
			return fmt.Sprintf("Unique to %s with average sentiment %.2f",
				entities.PlatformDiscord.DisplayName(), v.discord.AvgSentiment)
		},
	},
	{
		name:  "teams_only",
		match: func(v *clusterView) bool { return v.category == entities.CategoryTeamsOnly },
		render: func(v *clusterView, _ int) string {
			return fmt.Sprintf("Unique to %s with average sentiment %.2f",
				entities.PlatformTeams.DisplayName(), v.teams.AvgSentiment)
		},
	},
	{
		name:  "slack_leads",
		match: func(v *clusterView) bool { return v.slackLead() > LeadMargin },
		render: func(v *clusterView, _ int) string {
			return fmt.Sprintf("%s leads by %.2f", entities.ReferencePlatform.DisplayName(), v.slackLead())
		},
	},
	{
		name:  "competitor_leads",
		match: func(v *clusterView) bool { return -v.slackLead() > LeadMargin },
		render: func(v *clusterView, _ int) string {
			leader, _ := v.leadingCompetitor()
			return fmt.Sprintf("%s leads %s by %.2f",
				leader.DisplayName(), entities.ReferencePlatform.DisplayName(), -v.slackLead())
		},
	},
	{
		name:  "similar",
		match: func(*clusterView) bool { return true },
		render: func(v *clusterView, _ int) string {
			return fmt.Sprintf("Similar sentiment across platforms (%d comments)",
				v.cluster.Sentiments.TotalCount())
		},
	},
}

func summarize(v *clusterView, totalCorpus int) string {
	for _, rule := range summaryRules {
		if rule.match(v) {
			return rule.render(v, totalCorpus)
		}
	}
	return ""
}

// corpusShare is size as a rounded percentage of the corpus; 0 for an empty corpus
func corpusShare(size, totalCorpus int) int {
	if totalCorpus <= 0 {
		return 0
	}
	return int(math.Round(float64(size) / float64(totalCorpus) * 100))
}

var categoryColors = map[entities.Category]string{
	entities.CategoryUniversal:          "#A855F7",
	entities.CategorySlackAdvantage:     "#4A154B",
	entities.CategoryCompetitorStrength: "#F97316",
	entities.CategoryDiscordOnly:        "#5865F2",
	entities.CategoryTeamsOnly:          "#6264A7",
}

// ColorFor returns the display color for a category
func ColorFor(category entities.Category) string {
	return categoryColors[category]
}
