package service

import (
	"context"
	"errors"

	"github.com/ifct-tools/explorer-api/internal/dataset"
	"github.com/ifct-tools/explorer-api/internal/metrics"
	"github.com/ifct-tools/explorer-api/internal/models"
	"github.com/ifct-tools/explorer-api/internal/nutrient"
)

// DatasetLoader provides the current Dataset for a source path.
type DatasetLoader interface {
	Load(path string) (*dataset.Dataset, error)
}

// CatalogService handles browsing logic over the composition table:
// category listing, name listing under a filter, and single-item
// resolution. Every call goes through the loader, which serves the
// memoized Dataset, so the service itself holds no state.
type CatalogService struct {
	loader DatasetLoader
	path   string
}

// Status describes the dataset for health reporting.
type Status struct {
	Loaded     bool   `json:"loaded"`
	Records    int    `json:"records"`
	SnapshotID string `json:"snapshot_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewCatalogService creates a catalog service over the given source.
func NewCatalogService(loader DatasetLoader, path string) *CatalogService {
	return &CatalogService{
		loader: loader,
		path:   path,
	}
}

// Categories returns the filter options: the "All" sentinel followed by
// every distinct derived category in alphabetical order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	ds, err := s.loader.Load(s.path)
	if err != nil {
		return nil, err
	}
	return append([]string{dataset.AllCategories}, ds.Categories()...), nil
}

// Items returns the distinct display names within the category filter,
// in source order.
func (s *CatalogService) Items(ctx context.Context, category string) ([]string, error) {
	ds, err := s.loader.Load(s.path)
	if err != nil {
		return nil, err
	}
	return ds.Names(category), nil
}

// Record resolves one item by name within the category filter.
func (s *CatalogService) Record(ctx context.Context, category, name string) (*models.FoodRecord, error) {
	ds, err := s.loader.Load(s.path)
	if err != nil {
		return nil, err
	}

	rec, err := ds.Resolve(category, name)
	if err != nil {
		if errors.Is(err, dataset.ErrSelectionNotFound) {
			metrics.SelectionMissesTotal.Inc()
		}
		return nil, err
	}
	return rec, nil
}

// Profile resolves one item and renders its grouped nutrient views.
func (s *CatalogService) Profile(ctx context.Context, category, name string) (*nutrient.Profile, error) {
	rec, err := s.Record(ctx, category, name)
	if err != nil {
		return nil, err
	}
	return nutrient.BuildProfile(rec), nil
}

// Status reports whether the dataset is available and how big it is.
func (s *CatalogService) Status(ctx context.Context) Status {
	ds, err := s.loader.Load(s.path)
	if err != nil {
		return Status{Loaded: false, Error: err.Error()}
	}
	return Status{
		Loaded:     true,
		Records:    ds.Len(),
		SnapshotID: ds.SnapshotID(),
	}
}
