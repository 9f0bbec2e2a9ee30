package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/app"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/cache"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/dataset"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/storage"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWith(t, &cli{openStore: openMinIO, openCache: app.NewDocumentCache}, args...)
}

func executeWith(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SOURCE_KIND", "embedded")

	cmd := newRootCmdWith(c)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInsightsCommand_JSON(t *testing.T) {
	out, err := execute(t, "insights", "-o", "json")
	require.NoError(t, err)

	var insights []entities.ComparisonInsight
	require.NoError(t, json.Unmarshal([]byte(out), &insights))
	require.Len(t, insights, 6)
	assert.Equal(t, entities.CategoryUniversal, insights[0].Category)
}

func TestInsightsCommand_CategoryFilterYAML(t *testing.T) {
	out, err := execute(t, "insights", "--category", "slack_advantage", "-o", "yaml")
	require.NoError(t, err)

	var insights []entities.ComparisonInsight
	require.NoError(t, yaml.Unmarshal([]byte(out), &insights))
	require.Len(t, insights, 1)
	assert.Equal(t, "3", insights[0].ClusterID)
}

func TestInsightsCommand_UnknownCategory(t *testing.T) {
	_, err := execute(t, "insights", "--category", "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrInvalidCategory)
}

func TestDeltaCommand(t *testing.T) {
	out, err := execute(t, "delta", "3", "discord")
	require.NoError(t, err)
	assert.Contains(t, out, "-0.22")

	_, err = execute(t, "delta", "3", "slack")
	assert.ErrorIs(t, err, entities.ErrInvalidPlatform)

	_, err = execute(t, "delta", "404", "teams")
	assert.ErrorIs(t, err, entities.ErrClusterNotFound)
}

func TestVennAndAggregateText(t *testing.T) {
	out, err := execute(t, "venn")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(entities.Categories))
	assert.True(t, strings.HasPrefix(lines[1], "universal"))

	out, err = execute(t, "aggregate")
	require.NoError(t, err)
	assert.Contains(t, out, "Microsoft Teams")
	assert.Contains(t, out, "comments: 4662")
}

func TestPlatformsCommand(t *testing.T) {
	out, err := execute(t, "platforms")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Discord")
}

func TestFileSourceFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.json")
	doc := `{
		"metadata": {"total_comments": 10, "total_clusters": 1},
		"clusters": {
			"7": {
				"label": "Threads",
				"size": 10,
				"venn_position": "all_3",
				"platform_sentiment": {
					"slack": {"avg_sentiment": 0.5, "count": 4},
					"discord": {"avg_sentiment": 0.5, "count": 3},
					"teams": {"avg_sentiment": 0.5, "count": 3}
				}
			}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := execute(t, "insights", "--source", path, "-o", "json")
	require.NoError(t, err)
	var insights []entities.ComparisonInsight
	require.NoError(t, json.Unmarshal([]byte(out), &insights))
	require.Len(t, insights, 1)
	assert.Equal(t, "7", insights[0].ClusterID)
}

func TestPublishRejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"clusters": []}`), 0o600))

	_, err := execute(t, "publish", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrDataShape)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := execute(t, "venn", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

type memoryBucket struct {
	objects map[string][]byte
}

func (b *memoryBucket) Bucket() string { return "test-bucket" }

func (b *memoryBucket) UploadJSON(_ context.Context, objectName string, content []byte) error {
	b.objects[objectName] = append([]byte(nil), content...)
	return nil
}

func (b *memoryBucket) ListObjects(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	var out []storage.ObjectInfo
	for key, body := range b.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.ObjectInfo{Key: key, Size: int64(len(body)), LastModified: time.Unix(0, 0).UTC()})
		}
	}
	return out, nil
}

func withBucket(bucket *memoryBucket) *cli {
	return &cli{
		openStore: func(context.Context, *config.StorageConfig) (objectStore, error) { return bucket, nil },
		openCache: app.NewDocumentCache,
	}
}

func TestPublishOverwritesSharedCache(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("CACHE_KIND", "redis")
	t.Setenv("REDIS_HOST", mr.Host())
	t.Setenv("REDIS_PORT", mr.Port())

	object := "clustering/clustering_results.json"
	cfg := &config.Config{
		Redis: config.RedisConfig{Host: mr.Host(), Port: mr.Port()},
		Cache: config.CacheConfig{Kind: config.CacheRedis, TTL: time.Minute},
	}
	client, err := cache.NewRedisClient(context.Background(), cfg)
	require.NoError(t, err)
	var docCache repositories.DocumentCache = cache.NewRedisStore(client, time.Minute)
	defer docCache.Close()
	require.NoError(t, docCache.Set(context.Background(), object, []byte(`{"stale": true}`)))

	raw, err := dataset.ClusteringDocument()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "clusters.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	bucket := &memoryBucket{objects: map[string][]byte{}}
	out, err := executeWith(t, withBucket(bucket), "publish", path)
	require.NoError(t, err)
	assert.Contains(t, out, "published 6 clusters to test-bucket/"+object)
	assert.Equal(t, raw, bucket.objects[object])

	cached, ok, err := docCache.Get(context.Background(), object)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, raw, cached)
}

func TestPublishWithMemoryCacheSkipsRefresh(t *testing.T) {
	raw, err := dataset.ClusteringDocument()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "clusters.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	bucket := &memoryBucket{objects: map[string][]byte{}}
	c := withBucket(bucket)
	c.openCache = func(context.Context, *config.Config) (repositories.DocumentCache, error) {
		t.Fatal("memory cache should not be opened by publish")
		return nil, nil
	}

	_, err = executeWith(t, c, "publish", "--object", "runs/2024-06.json", path)
	require.NoError(t, err)
	assert.Contains(t, bucket.objects, "runs/2024-06.json")
}

func TestObjectsCommand(t *testing.T) {
	bucket := &memoryBucket{objects: map[string][]byte{
		"clustering/clustering_results.json": []byte("{}"),
		"clustering/archive.json":            []byte("{}  "),
		"other/readme.txt":                   []byte("x"),
	}}

	out, err := executeWith(t, withBucket(bucket), "objects", "-o", "json")
	require.NoError(t, err)
	var objects []storage.ObjectInfo
	require.NoError(t, json.Unmarshal([]byte(out), &objects))
	assert.Len(t, objects, 2)

	out, err = executeWith(t, withBucket(bucket), "objects", "--prefix", "")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
	assert.Regexp(t, `clustering/clustering_results\.json\s+2\s+\S+\s+\*`, out)
}

func TestObjectPrefix(t *testing.T) {
	assert.Equal(t, "clustering/", objectPrefix("clustering/clustering_results.json"))
	assert.Equal(t, "", objectPrefix("clustering_results.json"))
	assert.Equal(t, "a/b/", objectPrefix("a/b/c.json"))
}
