package service

import (
	"context"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/importer"
)

// SnapshotSource hands out the live catalog snapshot.
type SnapshotSource interface {
	Current(ctx context.Context) (*catalog.Snapshot, error)
}

type CatalogService interface {
	SnapshotSource
	Import(ctx context.Context, path string, format importer.Format, source string) (*contract.ImportResult, error)
	ImportFile(ctx context.Context, file *importer.CatalogFile, source string) (*contract.ImportResult, error)
	Course(ctx context.Context, key string) (*contract.CourseInfo, error)
	CoreCourses(ctx context.Context, tag string, limit int) (*contract.CoreListing, error)
	ListSnapshots(ctx context.Context) ([]domain.SnapshotInfo, error)
	DeleteSnapshot(ctx context.Context, id string) error
}

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	Options(ctx context.Context, req contract.OptionsRequest) (*contract.OptionsResponse, error)
}
