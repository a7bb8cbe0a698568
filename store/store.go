// Package store defines persistence of named network datasets.
//
// The sqlite subpackage is the only implementation.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/supplynet/dataset"
)

// ErrDatasetNotFound is returned when a named dataset does not exist.
var ErrDatasetNotFound = errors.New("store: dataset not found")

// ErrEmptyName is returned when saving a dataset without a name.
var ErrEmptyName = errors.New("store: dataset name is empty")

// Summary describes a stored dataset.
type Summary struct {
	Name      string    `json:"name"`
	Nodes     int       `json:"nodes"`
	Routes    int       `json:"routes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists datasets by name. Saving under an existing name replaces
// the previous content.
type Store interface {
	Save(ctx context.Context, ds *dataset.Dataset) error
	Load(ctx context.Context, name string) (*dataset.Dataset, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, name string) error
	Close() error
}
