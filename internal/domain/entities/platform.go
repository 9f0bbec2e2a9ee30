package entities

import "strings"

// Platform identifies one of the three chat platforms in the corpus
type Platform string

// Platform constants
const (
	PlatformSlack   Platform = "slack"
	PlatformDiscord Platform = "discord"
	PlatformTeams   Platform = "teams"
)

// ReferencePlatform is the platform every comparison is measured against
const ReferencePlatform = PlatformSlack

// Platforms lists the closed platform enumeration in display order
var Platforms = []Platform{PlatformSlack, PlatformDiscord, PlatformTeams}

// Competitors lists the platforms compared against the reference platform
var Competitors = []Platform{PlatformDiscord, PlatformTeams}

// DisplayName returns the human readable platform name
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSlack:
		return "Slack"
	case PlatformDiscord:
		return "Discord"
	case PlatformTeams:
		return "Microsoft Teams"
	default:
		return string(p)
	}
}

// IsValid reports whether p belongs to the platform enumeration
func (p Platform) IsValid() bool {
	switch p {
	case PlatformSlack, PlatformDiscord, PlatformTeams:
		return true
	}
	return false
}

// IsCompetitor reports whether p is compared against the reference platform
func (p Platform) IsCompetitor() bool {
	return p.IsValid() && p != ReferencePlatform
}

// platformAliases maps the names used by upstream clustering output to platform ids
var platformAliases = map[string]Platform{
	"slack":           PlatformSlack,
	"discord":         PlatformDiscord,
	"teams":           PlatformTeams,
	"microsoft teams": PlatformTeams,
	"microsoft_teams": PlatformTeams,
	"ms teams":        PlatformTeams,
	"msteams":         PlatformTeams,
}

// ParsePlatform resolves a platform id or upstream display name (case-insensitive)
func ParsePlatform(name string) (Platform, bool) {
	p, ok := platformAliases[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Sentiment labels used by topic clusters
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// TrendLength is the number of points in every topic trend series
const TrendLength = 7

// TopicCluster is a precomputed topic cluster on a single platform
type TopicCluster struct {
	ID         string    `json:"id" validate:"required"`
	Topic      string    `json:"topic" validate:"required"`
	Sentiment  string    `json:"sentiment" validate:"required,oneof=positive neutral negative"`
	Mentions   int       `json:"mentions" validate:"gte=0"`
	Engagement float64   `json:"engagement" validate:"gte=0,lte=1"`
	Quotes     []string  `json:"quotes"`
	Trend      []float64 `json:"trend" validate:"len=7"`
}

// PlatformData is the whole-platform sentiment summary with its topics
type PlatformData struct {
	Platform         Platform       `json:"platform" validate:"required,oneof=slack discord teams"`
	Name             string         `json:"name" validate:"required"`
	Category         string         `json:"category"`
	OverallSentiment int            `json:"overall_sentiment" validate:"gte=0,lte=100"`
	SentimentChange  int            `json:"sentiment_change"`
	Topics           []TopicCluster `json:"topics" validate:"min=1,dive"`
}

// Topic looks up a topic cluster by id
func (p *PlatformData) Topic(id string) (*TopicCluster, bool) {
	for i := range p.Topics {
		if p.Topics[i].ID == id {
			return &p.Topics[i], true
		}
	}
	return nil, false
}
