package source

import (
	"github.com/tidwall/gjson"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
)

// Parse decodes a clustering document. The clusters object is walked in
// document order, which encoding/json maps would lose.
func Parse(raw []byte) (*entities.ClusteringResult, error) {
	if !gjson.ValidBytes(raw) {
		return nil, entities.NewDataShapeError("", "document", "not valid JSON")
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, entities.NewDataShapeError("", "document", "expected a JSON object")
	}

	meta, err := parseMetadata(doc.Get("metadata"))
	if err != nil {
		return nil, err
	}

	clusters := doc.Get("clusters")
	if !clusters.IsObject() {
		return nil, entities.NewDataShapeError("", "clusters", "expected an object keyed by cluster id")
	}

	result := &entities.ClusteringResult{Metadata: meta}
	seen := make(map[string]bool)
	clusters.ForEach(func(key, value gjson.Result) bool {
		var c entities.ClusterData
		c, err = parseCluster(key.String(), value)
		if err != nil {
			return false
		}
		if seen[c.ID] {
			err = entities.NewDataShapeError(c.ID, "id", "duplicate cluster id")
			return false
		}
		seen[c.ID] = true
		result.Clusters = append(result.Clusters, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func parseMetadata(meta gjson.Result) (*entities.CorpusMetadata, error) {
	if !meta.IsObject() {
		return nil, entities.NewDataShapeError("", "metadata", "corpus metadata is missing")
	}
	total, err := requireInt("", meta, "total_comments")
	if err != nil {
		return nil, err
	}
	count, err := requireInt("", meta, "total_clusters")
	if err != nil {
		return nil, err
	}
	return &entities.CorpusMetadata{TotalComments: total, TotalClusters: count}, nil
}

func parseCluster(key string, value gjson.Result) (entities.ClusterData, error) {
	if !value.IsObject() {
		return entities.ClusterData{}, entities.NewDataShapeError(key, "cluster", "expected an object")
	}

	c := entities.ClusterData{
		ID:           key,
		Label:        value.Get("label").String(),
		VennPosition: value.Get("venn_position").String(),
	}
	if id := value.Get("id"); id.Exists() {
		c.ID = id.String()
	}

	size, err := requireInt(c.ID, value, "size")
	if err != nil {
		return c, err
	}
	c.Size = size

	sentiments := value.Get("platform_sentiment")
	if !sentiments.IsObject() {
		return c, entities.NewDataShapeError(c.ID, "platform_sentiment", "expected an object keyed by platform")
	}
	sentiments.ForEach(func(name, stats gjson.Result) bool {
		p, ok := entities.ParsePlatform(name.String())
		if !ok {
			err = entities.NewDataShapeError(c.ID, "platform_sentiment."+name.String(), "unknown platform")
			return false
		}
		if c.Sentiments.Get(p) != nil {
			err = entities.NewDataShapeError(c.ID, "platform_sentiment."+name.String(), "duplicate platform entry")
			return false
		}
		var st entities.PlatformStats
		st, err = parseStats(c.ID, name.String(), stats)
		if err != nil {
			return false
		}
		c.Sentiments.Set(p, st)
		return true
	})
	if err != nil {
		return c, err
	}
	if err := c.Sentiments.Validate(c.ID); err != nil {
		return c, err
	}

	c.Keywords = stringArray(value.Get("keywords"))
	c.ExampleQuotes = stringArray(value.Get("example_quotes"))
	return c, nil
}

func parseStats(clusterID, name string, stats gjson.Result) (entities.PlatformStats, error) {
	field := "platform_sentiment." + name
	if !stats.IsObject() {
		return entities.PlatformStats{}, entities.NewDataShapeError(clusterID, field, "expected an object")
	}
	avg := stats.Get("avg_sentiment")
	if avg.Type != gjson.Number {
		return entities.PlatformStats{}, entities.NewDataShapeError(clusterID, field+".avg_sentiment", "expected a number")
	}
	count, err := requireInt(clusterID, stats, "count")
	if err != nil {
		return entities.PlatformStats{}, entities.NewDataShapeError(clusterID, field+".count", "expected a non-negative integer")
	}
	return entities.PlatformStats{AvgSentiment: avg.Float(), Count: count}, nil
}

func requireInt(clusterID string, obj gjson.Result, field string) (int, error) {
	v := obj.Get(field)
	if v.Type != gjson.Number {
		return 0, entities.NewDataShapeError(clusterID, field, "expected a number")
	}
	n := v.Int()
	if n < 0 || float64(n) != v.Float() {
		return 0, entities.NewDataShapeError(clusterID, field, "expected a non-negative integer")
	}
	return int(n), nil
}

func stringArray(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}
