package entities

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrDataShape marks input that violates the clustering document contract
	ErrDataShape = errors.New("data shape violation")

	ErrPlatformNotFound = errors.New("platform not found")
	ErrClusterNotFound  = errors.New("cluster not found")
	ErrInvalidPlatform  = errors.New("invalid platform")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrTrendIndex       = errors.New("trend index out of range")
	ErrInvalidSortKey   = errors.New("invalid sort key")
)

// DataShapeError describes where a clustering document broke its contract
type DataShapeError struct {
	ClusterID string
	Field     string
	Reason    string
}

// NewDataShapeError builds a DataShapeError
func NewDataShapeError(clusterID, field, reason string) *DataShapeError {
	return &DataShapeError{ClusterID: clusterID, Field: field, Reason: reason}
}

func (e *DataShapeError) Error() string {
	if e.ClusterID == "" {
		return fmt.Sprintf("%s: %s: %s", ErrDataShape, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: cluster %s: %s: %s", ErrDataShape, e.ClusterID, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrDataShape
func (e *DataShapeError) Unwrap() error {
	return ErrDataShape
}
