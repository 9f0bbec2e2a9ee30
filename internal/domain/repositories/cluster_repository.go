package repositories

import (
	"context"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
)

// ClusterSource loads and parses a clustering document
type ClusterSource interface {
	// Load fetches the document and returns it with clusters in document order
	Load(ctx context.Context) (*entities.ClusteringResult, error)

	// Name identifies the source in logs and errors
	Name() string
}

// ClusterRepository serves the clustering snapshot loaded for this process
type ClusterRepository interface {
	// Snapshot returns the loaded clustering result. Callers must not mutate it.
	Snapshot(ctx context.Context) (*entities.ClusteringResult, error)

	// FindCluster retrieves one cluster by id
	FindCluster(ctx context.Context, id string) (*entities.ClusterData, error)
}

// DocumentCache caches raw clustering documents keyed by object name
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
