package sentiment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/repository"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/dataset"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/sentiment"
)

func fixture() *dataset.Dataset {
	topic := func(id string, mentions int, engagement float64) entities.TopicCluster {
		return entities.TopicCluster{
			ID: id, Topic: id, Sentiment: entities.SentimentNeutral,
			Mentions: mentions, Engagement: engagement,
			Trend: []float64{10, 20, 30, 40, 50, 60, 70},
		}
	}
	return &dataset.Dataset{
		Platforms: []entities.PlatformData{
			{Platform: entities.PlatformSlack, Name: "Slack", OverallSentiment: 60, Topics: []entities.TopicCluster{
				topic("s1", 10, 0.9), topic("s2", 30, 0.1), topic("s3", 30, 0.5),
			}},
			{Platform: entities.PlatformDiscord, Name: "Discord", OverallSentiment: 70, Topics: []entities.TopicCluster{topic("d1", 1, 0.1)}},
			{Platform: entities.PlatformTeams, Name: "Microsoft Teams", OverallSentiment: 60, Topics: []entities.TopicCluster{topic("t1", 1, 0.1)}},
		},
		CompetitiveInsights: []entities.CompetitiveInsight{
			{ID: "a", Competitor: entities.PlatformDiscord, Impact: entities.ImpactThreat, Priority: entities.PriorityLow},
			{ID: "b", Competitor: entities.PlatformTeams, Impact: entities.ImpactThreat, Priority: entities.PriorityHigh},
			{ID: "c", Competitor: entities.PlatformDiscord, Impact: entities.ImpactOpportunity, Priority: entities.PriorityHigh},
		},
		Timeline: []entities.TimelineEvent{
			{ID: "late", Date: "2024-12-01", Platform: entities.PlatformSlack},
			{ID: "early", Date: "2024-01-15", Platform: entities.PlatformDiscord},
			{ID: "mid", Date: "2024-06-30", Platform: entities.PlatformSlack},
		},
	}
}

func newService() *sentiment.Service {
	return sentiment.NewService(repository.NewSentimentRepository(fixture()))
}

func topicIDs(topics []entities.TopicCluster) []string {
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}

func TestGetPlatform(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	p, err := svc.GetPlatform(ctx, "Microsoft Teams")
	require.NoError(t, err)
	assert.Equal(t, entities.PlatformTeams, p.Platform)

	_, err = svc.GetPlatform(ctx, "zoom")
	assert.ErrorIs(t, err, entities.ErrPlatformNotFound)
}

func TestTopTopics(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	byMentions, err := svc.TopTopics(ctx, "slack", sentiment.SortByMentions, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s3", "s1"}, topicIDs(byMentions))

	byEngagement, err := svc.TopTopics(ctx, "slack", sentiment.SortByEngagement, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s3"}, topicIDs(byEngagement))

	_, err = svc.TopTopics(ctx, "slack", "volume", 0)
	assert.ErrorIs(t, err, entities.ErrInvalidSortKey)
}

func TestTopTopics_DoesNotReorderStore(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.TopTopics(ctx, "slack", sentiment.SortByMentions, 0)
	require.NoError(t, err)

	p, err := svc.GetPlatform(ctx, "slack")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3"}, topicIDs(p.Topics))
}

func TestTrendAt(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	points, err := svc.TrendAt(ctx, "slack", 6)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 70.0, points[0].Value)

	for _, idx := range []int{-1, entities.TrendLength} {
		_, err = svc.TrendAt(ctx, "slack", idx)
		assert.ErrorIs(t, err, entities.ErrTrendIndex)
	}
}

func TestCompetitiveInsights(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	all, err := svc.CompetitiveInsights(ctx, sentiment.InsightFilter{})
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, in := range all {
		ids[i] = in.ID
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)

	discordThreats, err := svc.CompetitiveInsights(ctx, sentiment.InsightFilter{
		Competitor: entities.PlatformDiscord,
		Impact:     entities.ImpactThreat,
	})
	require.NoError(t, err)
	require.Len(t, discordThreats, 1)
	assert.Equal(t, "a", discordThreats[0].ID)
}

func TestTimeline(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	events, err := svc.Timeline(ctx, "")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "early", events[0].ID)
	assert.Equal(t, "late", events[2].ID)

	slackOnly, err := svc.Timeline(ctx, entities.PlatformSlack)
	require.NoError(t, err)
	require.Len(t, slackOnly, 2)
	assert.Equal(t, "mid", slackOnly[0].ID)
}

func TestLeaderboard(t *testing.T) {
	entries, err := newService().Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, entities.PlatformDiscord, entries[0].Platform)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, entities.PlatformSlack, entries[1].Platform)
	assert.Equal(t, entities.PlatformTeams, entries[2].Platform)
}

func TestBundledDatasetIsValid(t *testing.T) {
	data, err := dataset.Load()
	require.NoError(t, err)
	assert.Len(t, data.Platforms, len(entities.Platforms))

	svc := sentiment.NewService(repository.NewSentimentRepository(data))
	board, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.PlatformDiscord, board[0].Platform)
}
