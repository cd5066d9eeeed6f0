package screens

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_ProjectsPremiumAndCount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ent := newFakeEntitlements()
	h := NewHome(ctx, e.scans, ent, logging.Nop{})
	defer h.Close()

	assert.Eventually(t, func() bool { return h.State() == HomeState{} }, waitFor, tick)

	_, err := e.scans.Save(ctx, models.ScannedCode{Content: "a", Type: models.ScanTypeText})
	require.NoError(t, err)
	ent.state.Set(models.EntitlementState{IsPremium: true})

	assert.Eventually(t, func() bool {
		return h.State() == HomeState{IsPremium: true, ScanCount: 1}
	}, waitFor, tick)
}
