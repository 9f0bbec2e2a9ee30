package repository

import (
	"context"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/repositories"
)

// clusterRepository implements the ClusterRepository interface over a snapshot
// loaded once at startup
type clusterRepository struct {
	snapshot *entities.ClusteringResult
}

// NewClusterRepository creates a cluster repository serving result
func NewClusterRepository(result *entities.ClusteringResult) repositories.ClusterRepository {
	return &clusterRepository{snapshot: result}
}

// LoadClusterRepository loads src once and serves the result
func LoadClusterRepository(ctx context.Context, src repositories.ClusterSource) (repositories.ClusterRepository, error) {
	result, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewClusterRepository(result), nil
}

// Snapshot returns the loaded clustering result
func (r *clusterRepository) Snapshot(ctx context.Context) (*entities.ClusteringResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.snapshot, nil
}

// FindCluster retrieves one cluster by id
func (r *clusterRepository) FindCluster(ctx context.Context, id string) (*entities.ClusterData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := r.snapshot.Cluster(id)
	if !ok {
		return nil, entities.ErrClusterNotFound
	}
	return c, nil
}
