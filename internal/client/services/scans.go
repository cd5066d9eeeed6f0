package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/repositories/scans"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/observable"
)

// ScanService defines the scan history operations used by the screens.
//
// Every successful write re-reads the store and pushes the fresh lists to
// Scans and Favorites, so subscribers always see the committed state.
type ScanService interface {
	Save(ctx context.Context, code models.ScannedCode) (*models.ScanRecord, error)
	ToggleFavorite(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	All(ctx context.Context) ([]models.ScanRecord, error)

	// Import inserts records not already present (matched by content and
	// timestamp) and returns how many were added.
	Import(ctx context.Context, recs []models.ScanRecord) (int, error)

	Refresh(ctx context.Context) error
	Scans() observable.Readable[[]models.ScanRecord]
	Favorites() observable.Readable[[]models.ScanRecord]
}

type scanService struct {
	repo      scans.Repository
	logger    logging.Logger
	all       *observable.Value[[]models.ScanRecord]
	favorites *observable.Value[[]models.ScanRecord]
}

// NewScanService constructs a ScanService over repo. Call Refresh once to
// load the initial lists.
func NewScanService(repo scans.Repository, logger logging.Logger) ScanService {
	return &scanService{
		repo:      repo,
		logger:    logger,
		all:       observable.New[[]models.ScanRecord](nil),
		favorites: observable.New[[]models.ScanRecord](nil),
	}
}

func (s *scanService) Scans() observable.Readable[[]models.ScanRecord] { return s.all }

func (s *scanService) Favorites() observable.Readable[[]models.ScanRecord] { return s.favorites }

func (s *scanService) Refresh(ctx context.Context) error {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	favs, err := s.repo.GetFavorites(ctx)
	if err != nil {
		return err
	}
	s.all.Set(all)
	s.favorites.Set(favs)
	return nil
}

func (s *scanService) Save(ctx context.Context, code models.ScannedCode) (*models.ScanRecord, error) {
	rec := models.NewScanRecord(code.Content, code.Type)

	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	s.logger.Debug(ctx, "scan saved", "id", id, "type", rec.Type)

	return rec, s.Refresh(ctx)
}

func (s *scanService) ToggleFavorite(ctx context.Context, id int64) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	rec.Favorite = !rec.Favorite
	if err := s.repo.Update(ctx, rec); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *scanService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *scanService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *scanService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *scanService) All(ctx context.Context) ([]models.ScanRecord, error) {
	return s.repo.GetAll(ctx)
}

type scanKey struct {
	content string
	millis  int64
}

func (s *scanService) Import(ctx context.Context, recs []models.ScanRecord) (int, error) {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[scanKey]struct{}, len(existing))
	for _, r := range existing {
		seen[scanKey{r.Content, r.Timestamp.UnixMilli()}] = struct{}{}
	}

	added := 0
	for i := range recs {
		rec := recs[i]
		k := scanKey{rec.Content, rec.Timestamp.UnixMilli()}
		if _, ok := seen[k]; ok {
			continue
		}
		if _, err := s.repo.Insert(ctx, &rec); err != nil {
			return added, fmt.Errorf("failed to import scan: %w", err)
		}
		seen[k] = struct{}{}
		added++
	}

	if added > 0 {
		s.logger.Info(ctx, "scans imported", "count", added)
	}
	return added, s.Refresh(ctx)
}
