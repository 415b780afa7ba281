package repository

import (
	"context"

	"github.com/alexanderramin/regwise/internal/domain"
)

// CatalogRepo stores immutable catalog snapshots.
type CatalogRepo interface {
	Save(ctx context.Context, data *domain.CatalogData) error
	Load(ctx context.Context, id string) (*domain.CatalogData, error)
	LoadLatest(ctx context.Context) (*domain.CatalogData, error)
	List(ctx context.Context) ([]domain.SnapshotInfo, error)
	Delete(ctx context.Context, id string) error
}
