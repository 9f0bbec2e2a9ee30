package source

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/dataset"
)

const threeClusters = `{
  "metadata": {"total_comments": 900, "total_clusters": 3},
  "clusters": {
    "7": {"label": "late id first", "size": 10, "venn_position": "mixed",
      "platform_sentiment": {
        "Slack": {"avg_sentiment": 0.1, "count": 4},
        "discord": {"avg_sentiment": 0.2, "count": 3},
        "Microsoft Teams": {"avg_sentiment": -0.1, "count": 3}
      },
      "keywords": ["a", "b"]},
    "2": {"id": "2", "label": "second", "size": 5, "venn_position": "all_3",
      "platform_sentiment": {
        "Slack": {"avg_sentiment": 0, "count": 1},
        "Discord": {"avg_sentiment": 0, "count": 2},
        "teams": {"avg_sentiment": 0.5, "count": 2}
      }},
    "10": {"label": "third", "size": 1, "venn_position": "teams_only",
      "platform_sentiment": {
        "Slack": {"avg_sentiment": 0, "count": 0},
        "Discord": {"avg_sentiment": 0, "count": 0},
        "MS Teams": {"avg_sentiment": 0.3, "count": 1}
      }}
  }
}`

func TestParse_PreservesDocumentOrder(t *testing.T) {
	result, err := Parse([]byte(threeClusters))
	require.NoError(t, err)

	require.NotNil(t, result.Metadata)
	assert.Equal(t, 900, result.Metadata.TotalComments)
	assert.Equal(t, 3, result.Metadata.TotalClusters)

	ids := make([]string, len(result.Clusters))
	for i, c := range result.Clusters {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"7", "2", "10"}, ids)

	first := result.Clusters[0]
	assert.Equal(t, "late id first", first.Label)
	assert.Equal(t, []string{"a", "b"}, first.Keywords)
	assert.Equal(t, 0.2, first.Sentiments.Discord.AvgSentiment)
	assert.Equal(t, 3, first.Sentiments.Teams.Count)
	assert.Equal(t, 0.3, result.Clusters[2].Sentiments.Teams.AvgSentiment)
}

func TestParse_BundledSample(t *testing.T) {
	raw, err := dataset.ClusteringDocument()
	require.NoError(t, err)

	result, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, 4662, result.Metadata.TotalComments)
	assert.Len(t, result.Clusters, result.Metadata.TotalClusters)

	c, ok := result.Cluster("0")
	require.True(t, ok)
	assert.Equal(t, 3924, c.Size)
	assert.Equal(t, entities.VennAll3, c.VennPosition)
}

func TestParse_ShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		clusterID string
	}{
		{"not json", `{"metadata":`, ""},
		{"array document", `[]`, ""},
		{"missing metadata", `{"clusters": {}}`, ""},
		{"metadata without totals", `{"metadata": {}, "clusters": {}}`, ""},
		{"clusters as array", `{"metadata": {"total_comments": 1, "total_clusters": 0}, "clusters": []}`, ""},
		{
			"missing platform",
			`{"metadata": {"total_comments": 1, "total_clusters": 1}, "clusters": {"a": {"size": 1,
			  "platform_sentiment": {"Slack": {"avg_sentiment": 0, "count": 1}, "Discord": {"avg_sentiment": 0, "count": 0}}}}}`,
			"a",
		},
		{
			"unknown platform",
			`{"metadata": {"total_comments": 1, "total_clusters": 1}, "clusters": {"b": {"size": 1,
			  "platform_sentiment": {"Zoom": {"avg_sentiment": 0, "count": 1}}}}}`,
			"b",
		},
		{
			"duplicate platform alias",
			`{"metadata": {"total_comments": 1, "total_clusters": 1}, "clusters": {"c": {"size": 1,
			  "platform_sentiment": {"teams": {"avg_sentiment": 0, "count": 1}, "Microsoft Teams": {"avg_sentiment": 0, "count": 1}}}}}`,
			"c",
		},
		{
			"string sentiment",
			`{"metadata": {"total_comments": 1, "total_clusters": 1}, "clusters": {"d": {"size": 1,
			  "platform_sentiment": {"Slack": {"avg_sentiment": "high", "count": 1}}}}}`,
			"d",
		},
		{
			"fractional size",
			`{"metadata": {"total_comments": 1, "total_clusters": 1}, "clusters": {"e": {"size": 1.5, "platform_sentiment": {}}}}`,
			"e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, entities.ErrDataShape)

			var shapeErr *entities.DataShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.clusterID, shapeErr.ClusterID)
		})
	}
}
