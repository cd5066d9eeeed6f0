package screens

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/services"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

type HomeState struct {
	IsPremium bool
	ScanCount int
}

// Home projects the premium flag and the history size for the landing screen.
type Home struct {
	holder[HomeState]
}

func NewHome(ctx context.Context, scans services.ScanService, ent Entitlements, logger logging.Logger) *Home {
	h := &Home{holder: newHolder(ctx, HomeState{}, logger.With("screen", "home"), nil)}

	collect(&h.holder, ent.Subscribe, func(s HomeState, e models.EntitlementState) HomeState {
		s.IsPremium = e.IsPremium
		return s
	})
	collect(&h.holder, scans.Scans().Subscribe, func(s HomeState, all []models.ScanRecord) HomeState {
		s.ScanCount = len(all)
		return s
	})
	return h
}
