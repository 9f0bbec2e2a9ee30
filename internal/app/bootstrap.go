package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/repository"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/cache"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/dataset"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/source"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/storage"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/insight"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/usecase/sentiment"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/config"
)

// App holds the services built from the loaded dataset and clustering snapshot
type App struct {
	Sentiment  *sentiment.Service
	Insight    *insight.Service
	SourceName string

	closers []func() error
}

// Close releases caches and clients opened during bootstrap
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Bootstrap loads the static dataset and the clustering document concurrently
// and wires the services. Either failure aborts startup.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{}

	src, err := a.buildSource(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if err := a.load(ctx, src, logger); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) load(ctx context.Context, src repositories.ClusterSource, logger *zap.Logger) error {
	a.SourceName = src.Name()

	var (
		data        *dataset.Dataset
		clusterRepo repositories.ClusterRepository
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := dataset.Load()
		if err != nil {
			return fmt.Errorf("failed to load sentiment dataset: %w", err)
		}
		data = d
		return nil
	})
	g.Go(func() error {
		started := time.Now()
		repo, err := repository.LoadClusterRepository(gctx, src)
		if err != nil {
			return fmt.Errorf("failed to load clustering document from %s: %w", src.Name(), err)
		}
		snapshot, err := repo.Snapshot(gctx)
		if err != nil {
			return fmt.Errorf("clustering snapshot from %s: %w", src.Name(), err)
		}
		logger.Info("clustering snapshot loaded",
			zap.String("source", src.Name()),
			zap.Int("clusters", len(snapshot.Clusters)),
			zap.Duration("elapsed", time.Since(started)),
		)
		clusterRepo = repo
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	a.Sentiment = sentiment.NewService(repository.NewSentimentRepository(data))
	a.Insight = insight.NewService(clusterRepo)
	return nil
}

// BuildSource returns the clustering source selected by cfg. The caller owns
// the returned closer.
func BuildSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.ClusterSource, func() error, error) {
	a := &App{}
	src, err := a.buildSource(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, nil, err
	}
	return src, a.Close, nil
}

func (a *App) buildSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.ClusterSource, error) {
	switch cfg.Source.Kind {
	case config.SourceFile:
		return source.NewFileSource(cfg.Source.Path), nil
	case config.SourceMinIO:
		store, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			return nil, err
		}
		docCache, err := a.buildCache(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return source.NewObjectSource(store, docCache, cfg.Source.Object, source.ObjectSourceOptions{
			MaxRetries: cfg.Storage.MaxRetries,
		}, logger), nil
	default:
		return source.NewEmbeddedSource(), nil
	}
}

func (a *App) buildCache(ctx context.Context, cfg *config.Config) (repositories.DocumentCache, error) {
	docCache, err := NewDocumentCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, docCache.Close)
	return docCache, nil
}

// NewDocumentCache opens the raw document cache selected by cfg. The memory
// backend is local to the process, so only Redis is shared between processes.
func NewDocumentCache(ctx context.Context, cfg *config.Config) (repositories.DocumentCache, error) {
	switch cfg.Cache.Kind {
	case config.CacheRedis:
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewRedisStore(client, cfg.Cache.TTL), nil
	default:
		return cache.NewMemoryStore(cfg.Cache.TTL, cache.DefaultCleanupInterval), nil
	}
}
