package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/db"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/importer"
	"github.com/alexanderramin/regwise/internal/report"
	"github.com/alexanderramin/regwise/internal/repository"
)

type catalogService struct {
	catalogs repository.CatalogRepo
	uow      db.UnitOfWork
	holder   *catalog.Holder
	opts     catalog.Options
	observer UseCaseObserver
}

func NewCatalogService(
	catalogs repository.CatalogRepo,
	uow db.UnitOfWork,
	holder *catalog.Holder,
	opts catalog.Options,
	observers ...UseCaseObserver,
) CatalogService {
	if holder == nil {
		holder = catalog.NewHolder(nil)
	}
	return &catalogService{
		catalogs: catalogs,
		uow:      uow,
		holder:   holder,
		opts:     opts,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Import(ctx context.Context, path string, format importer.Format, source string) (*contract.ImportResult, error) {
	file, err := importer.LoadCatalogFile(path, format)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	if strings.TrimSpace(source) == "" {
		source = filepath.Base(path)
	}
	return s.ImportFile(ctx, file, source)
}

func (s *catalogService) ImportFile(ctx context.Context, file *importer.CatalogFile, source string) (result *contract.ImportResult, err error) {
	fields := map[string]any{"source": source}
	defer observe(ctx, s.observer, "import-catalog", fields, &err)()

	if errs := importer.ValidateCatalogFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	conv := importer.Convert(file, source)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCatalogRepo(tx).Save(ctx, &conv.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("saving catalog snapshot: %w", err)
	}

	snap := catalog.NewSnapshot(conv.Data, s.opts)
	s.holder.Replace(snap)

	result = &contract.ImportResult{
		SnapshotID:      snap.ID(),
		Source:          source,
		Courses:         snap.Len(),
		Sections:        conv.Sections,
		Meetings:        conv.Meetings,
		DroppedMeetings: conv.DroppedMeetings,
		CoreTags:        len(snap.CoreTags()),
	}
	fields["snapshot"] = result.SnapshotID
	fields["courses"] = result.Courses
	fields["dropped_meetings"] = result.DroppedMeetings
	return result, nil
}

// Current returns the live snapshot, loading the newest stored one on first use.
func (s *catalogService) Current(ctx context.Context) (*catalog.Snapshot, error) {
	if snap := s.holder.Current(); snap != nil {
		return snap, nil
	}
	data, err := s.catalogs.LoadLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.PlanError{
				Code:    contract.ErrNoCatalog,
				Message: "no catalog has been imported; run 'regwise catalog import <file>' first",
			}
		}
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	snap := catalog.NewSnapshot(*data, s.opts)
	s.holder.Replace(snap)
	return snap, nil
}

func (s *catalogService) Course(ctx context.Context, key string) (*contract.CourseInfo, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := snap.Course(key)
	if !ok {
		return nil, fmt.Errorf("course %s: %w", domain.NormalizeKey(key), repository.ErrNotFound)
	}
	info := report.CourseInfo(c)
	return &info, nil
}

// CoreCourses lists courses with open sections for a core tag. limit <= 0
// returns them all.
func (s *catalogService) CoreCourses(ctx context.Context, tag string, limit int) (*contract.CoreListing, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return nil, &contract.PlanError{Code: contract.ErrInvalidRequest, Message: "core code is required"}
	}

	keys := snap.CoursesByCore(tag)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	listing := &contract.CoreListing{
		Core: contract.CoreCodeView{Code: tag, Name: catalog.CoreCodeName(tag)},
	}
	for _, key := range keys {
		if c, ok := snap.Course(key); ok {
			listing.Courses = append(listing.Courses, report.CourseInfo(c))
		}
	}
	return listing, nil
}

func (s *catalogService) ListSnapshots(ctx context.Context) ([]domain.SnapshotInfo, error) {
	return s.catalogs.List(ctx)
}

// DeleteSnapshot removes a stored snapshot. Deleting the live one makes the
// next read fall back to the newest remaining snapshot.
func (s *catalogService) DeleteSnapshot(ctx context.Context, id string) error {
	if err := s.catalogs.Delete(ctx, id); err != nil {
		return err
	}
	if cur := s.holder.Current(); cur != nil && cur.ID() == id {
		s.holder.Replace(nil)
	}
	return nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
