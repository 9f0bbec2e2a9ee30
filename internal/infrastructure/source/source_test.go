package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/cache"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/storage"
)

type flakyGetter struct {
	failures int32
	calls    atomic.Int32
	body     []byte
	err      error
}

func (g *flakyGetter) GetObject(_ context.Context, _ string) ([]byte, error) {
	n := g.calls.Add(1)
	if g.err != nil {
		return nil, g.err
	}
	if n <= g.failures {
		return nil, errors.New("connection reset")
	}
	return g.body, nil
}

var fastRetry = ObjectSourceOptions{MaxRetries: 3, InitialInterval: time.Millisecond, MaxElapsedTime: time.Second}

func TestEmbeddedSource(t *testing.T) {
	result, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, len(result.Clusters))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.json")
	require.NoError(t, os.WriteFile(path, []byte(threeClusters), 0o600))

	result, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Clusters, 3)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestObjectSource_RetriesThenCaches(t *testing.T) {
	getter := &flakyGetter{failures: 2, body: []byte(threeClusters)}
	store := cache.NewMemoryStore(time.Minute, time.Hour)
	defer store.Close()

	src := NewObjectSource(getter, store, "runs/latest.json", fastRetry, zaptest.NewLogger(t))

	result, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Clusters, 3)
	assert.Equal(t, int32(3), getter.calls.Load())

	_, err = src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), getter.calls.Load(), "second load should be served from cache")
}

func TestObjectSource_GivesUp(t *testing.T) {
	getter := &flakyGetter{failures: 100, body: []byte(threeClusters)}
	src := NewObjectSource(getter, nil, "runs/latest.json", fastRetry, nil)

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(4), getter.calls.Load())
}

func TestObjectSource_MissingObjectIsNotRetried(t *testing.T) {
	getter := &flakyGetter{err: storage.ErrObjectNotFound}
	src := NewObjectSource(getter, nil, "nope.json", fastRetry, nil)

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	assert.Equal(t, int32(1), getter.calls.Load())
}

func TestObjectSource_MalformedDocument(t *testing.T) {
	getter := &flakyGetter{body: []byte(`{"clusters": {}}`)}
	src := NewObjectSource(getter, nil, "bad.json", fastRetry, nil)

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, entities.ErrDataShape)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestObjectSource_MalformedDocumentIsNotCached(t *testing.T) {
	getter := &flakyGetter{body: []byte(`{"clusters": []}`)}
	store := cache.NewMemoryStore(time.Minute, time.Hour)
	defer store.Close()

	src := NewObjectSource(getter, store, "bad.json", fastRetry, zaptest.NewLogger(t))

	_, err := src.Load(context.Background())
	require.ErrorIs(t, err, entities.ErrDataShape)

	_, ok, err := store.Get(context.Background(), "bad.json")
	require.NoError(t, err)
	assert.False(t, ok)

	getter.body = []byte(threeClusters)
	result, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Clusters, 3)
	assert.Equal(t, int32(2), getter.calls.Load())
}
