package screens

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/services"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

type HistoryState struct {
	Scans         []models.ScanRecord
	FavoritesOnly bool
	Error         string
}

type History struct {
	holder[HistoryState]
	scans services.ScanService
}

func NewHistory(ctx context.Context, scans services.ScanService, logger logging.Logger) *History {
	h := &History{
		holder: newHolder(ctx, HistoryState{}, logger.With("screen", "history"),
			func(s HistoryState, err error) HistoryState { s.Error = err.Error(); return s }),
		scans: scans,
	}

	collect(&h.holder, scans.Scans().Subscribe, func(s HistoryState, all []models.ScanRecord) HistoryState {
		if !s.FavoritesOnly {
			s.Scans = all
		}
		return s
	})
	collect(&h.holder, scans.Favorites().Subscribe, func(s HistoryState, favs []models.ScanRecord) HistoryState {
		if s.FavoritesOnly {
			s.Scans = favs
		}
		return s
	})
	return h
}

func (h *History) Delete(id int64) error {
	return h.run(func(ctx context.Context) error { return h.scans.Delete(ctx, id) })
}

func (h *History) DeleteAll() error {
	return h.run(func(ctx context.Context) error { return h.scans.DeleteAll(ctx) })
}

func (h *History) ToggleFavorite(id int64) error {
	return h.run(func(ctx context.Context) error { return h.scans.ToggleFavorite(ctx, id) })
}

// ShowFavorites switches the list between all scans and favorites only.
func (h *History) ShowFavorites(only bool) error {
	return h.run(func(context.Context) error {
		h.state.Update(func(s HistoryState) HistoryState {
			s.FavoritesOnly = only
			if only {
				s.Scans = h.scans.Favorites().Get()
			} else {
				s.Scans = h.scans.Scans().Get()
			}
			return s
		})
		return nil
	})
}

// Refresh reloads the store and clears a previous error.
func (h *History) Refresh() error {
	return h.run(func(ctx context.Context) error {
		h.state.Update(func(s HistoryState) HistoryState { s.Error = ""; return s })
		return h.scans.Refresh(ctx)
	})
}
