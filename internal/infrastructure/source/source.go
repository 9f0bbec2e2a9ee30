package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/dataset"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/infrastructure/storage"
)

// ErrUnavailable wraps failures to fetch a document, as opposed to parsing it
var ErrUnavailable = errors.New("clustering source unavailable")

// embeddedSource serves the sample document bundled with the binary
type embeddedSource struct{}

// NewEmbeddedSource creates a source for the bundled sample document
func NewEmbeddedSource() repositories.ClusterSource {
	return embeddedSource{}
}

func (embeddedSource) Name() string { return "embedded" }

func (embeddedSource) Load(ctx context.Context) (*entities.ClusteringResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := dataset.ClusteringDocument()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return Parse(raw)
}

// fileSource reads a document from the local filesystem
type fileSource struct {
	path string
}

// NewFileSource creates a source reading path
func NewFileSource(path string) repositories.ClusterSource {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string { return "file:" + s.path }

func (s *fileSource) Load(ctx context.Context) (*entities.ClusteringResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return Parse(raw)
}

// ObjectGetter downloads objects from a bucket
type ObjectGetter interface {
	GetObject(ctx context.Context, objectName string) ([]byte, error)
}

// ObjectSourceOptions tunes the object source
type ObjectSourceOptions struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

// objectSource fetches a document from object storage, going through a raw
// document cache first
type objectSource struct {
	store  ObjectGetter
	cache  repositories.DocumentCache
	object string
	opts   ObjectSourceOptions
	logger *zap.Logger
}

// NewObjectSource creates a source reading object from store. cache may be nil.
func NewObjectSource(store ObjectGetter, cache repositories.DocumentCache, object string, opts ObjectSourceOptions, logger *zap.Logger) repositories.ClusterSource {
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = 200 * time.Millisecond
	}
	if opts.MaxElapsedTime <= 0 {
		opts.MaxElapsedTime = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &objectSource{store: store, cache: cache, object: object, opts: opts, logger: logger}
}

func (s *objectSource) Name() string { return "minio:" + s.object }

// Load serves the cached document when present. A freshly fetched document
// is cached only once it parses.
func (s *objectSource) Load(ctx context.Context) (*entities.ClusteringResult, error) {
	if raw, ok := s.cached(ctx); ok {
		return Parse(raw)
	}

	raw, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	result, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.object, raw); err != nil {
			s.logger.Warn("source.cache.set_failed", zap.String("object", s.object), zap.Error(err))
		}
	}
	return result, nil
}

func (s *objectSource) cached(ctx context.Context) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, s.object)
	if err != nil {
		s.logger.Warn("source.cache.get_failed", zap.String("object", s.object), zap.Error(err))
		return nil, false
	}
	if ok {
		s.logger.Debug("source.cache.hit", zap.String("object", s.object))
	}
	return raw, ok
}

func (s *objectSource) fetch(ctx context.Context) ([]byte, error) {

	var raw []byte
	operation := func() error {
		data, err := s.store.GetObject(ctx, s.object)
		if errors.Is(err, storage.ErrObjectNotFound) {
			return backoff.Permanent(err)
		}
		if err != nil {
			return err
		}
		raw = data
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.opts.InitialInterval
	policy.MaxElapsedTime = s.opts.MaxElapsedTime

	notify := func(err error, wait time.Duration) {
		s.logger.Warn("source.fetch.retry",
			zap.String("object", s.object),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, s.opts.MaxRetries), ctx), notify)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, s.object, err)
	}
	return raw, nil
}
