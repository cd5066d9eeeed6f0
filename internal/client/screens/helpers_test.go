package screens

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/client/client"
	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/services"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/observable"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type env struct {
	repos    *client.Repositories
	scans    services.ScanService
	settings services.SettingsService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	repos, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	e := &env{
		repos:    repos,
		scans:    services.NewScanService(repos.Scans, logging.Nop{}),
		settings: services.NewSettingsService(repos.Preferences, logging.Nop{}),
	}
	require.NoError(t, e.scans.Refresh(ctx))
	_, err = e.settings.Load(ctx)
	require.NoError(t, err)
	return e
}

type fakeEntitlements struct {
	state *observable.Value[models.EntitlementState]

	mu          sync.Mutex
	purchased   []string
	purchaseErr error
	products    []models.ProductDetails
	productsErr error
	cleared     int
}

func newFakeEntitlements() *fakeEntitlements {
	return &fakeEntitlements{state: observable.New(models.EntitlementState{})}
}

func (f *fakeEntitlements) State() models.EntitlementState { return f.state.Get() }

func (f *fakeEntitlements) Subscribe(ctx context.Context) <-chan models.EntitlementState {
	return f.state.Subscribe(ctx)
}

func (f *fakeEntitlements) Purchase(_ context.Context, id string) (*models.LaunchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purchased = append(f.purchased, id)
	if f.purchaseErr != nil {
		return nil, f.purchaseErr
	}
	return &models.LaunchResult{Code: models.ResponseOK, CheckoutURL: "http://checkout/" + id}, nil
}

func (f *fakeEntitlements) LoadProducts(context.Context) ([]models.ProductDetails, error) {
	return f.products, f.productsErr
}

func (f *fakeEntitlements) ClearError() {
	f.mu.Lock()
	f.cleared++
	f.mu.Unlock()
	f.state.Update(func(s models.EntitlementState) models.EntitlementState { s.LastError = ""; return s })
}

type fakePlayer struct {
	mu    sync.Mutex
	vibes []float64
	beeps []string
}

func (p *fakePlayer) Vibrate(_ context.Context, intensity float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vibes = append(p.vibes, intensity)
}

func (p *fakePlayer) Beep(_ context.Context, sound string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.beeps = append(p.beeps, sound)
}

func (p *fakePlayer) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.vibes), len(p.beeps)
}

type fakeTorch struct{ on bool }

func (f *fakeTorch) ToggleTorch() bool {
	f.on = !f.on
	return f.on
}
