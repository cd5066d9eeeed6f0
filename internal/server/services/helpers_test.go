package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/dbx"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/server/config"
	"github.com/dmitrijs2005/qrscanner/internal/server/models"
	"github.com/dmitrijs2005/qrscanner/internal/server/repositories/products"
	"github.com/dmitrijs2005/qrscanner/internal/server/repositories/purchases"
	"github.com/dmitrijs2005/qrscanner/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeProductsRepo struct {
	items map[string]models.Product
	err   error
}

func (f *fakeProductsRepo) List(_ context.Context, category string, ids []string) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Product
	for _, id := range ids {
		if p, ok := f.items[id]; ok && p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PriceMicros < out[j].PriceMicros })
	return out, nil
}

func (f *fakeProductsRepo) Get(_ context.Context, id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

type fakePurchasesRepo struct {
	mu      sync.Mutex
	items   map[string]*models.Purchase
	catalog *fakeProductsRepo
	listErr error

	beforeDelete func(id string)
}

func (f *fakePurchasesRepo) Create(_ context.Context, p *models.Purchase) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.CreatedAt = now()
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakePurchasesRepo) GetByToken(_ context.Context, token string) (*models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.Token == token {
			cp := *p
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakePurchasesRepo) ListByAccount(_ context.Context, accountID, category string) ([]models.Purchase, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Purchase
	for _, p := range f.items {
		if p.AccountID == accountID && f.catalog.items[p.ProductID].Category == category {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePurchasesRepo) MarkPurchased(_ context.Context, id string) (*models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok || p.State != models.StatePending {
		return nil, common.ErrorNotFound
	}
	p.State = models.StatePurchased
	p.PurchasedAt = now()
	cp := *p
	return &cp, nil
}

func (f *fakePurchasesRepo) Acknowledge(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok || p.State != models.StatePurchased {
		return common.ErrorNotFound
	}
	p.Acknowledged = true
	return nil
}

func (f *fakePurchasesRepo) DeletePending(_ context.Context, id string) error {
	if f.beforeDelete != nil {
		f.beforeDelete(id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok || p.State != models.StatePending {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeRepoManager struct {
	products  *fakeProductsRepo
	purchases *fakePurchasesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Products(dbx.DBTX) products.Repository { return m.products }
func (m *fakeRepoManager) Purchases(dbx.DBTX) purchases.Repository { return m.purchases }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

type fakeBroker struct {
	mu        sync.Mutex
	published map[string][]*pb.PurchaseUpdate
	err       error
}

func (b *fakeBroker) Publish(_ context.Context, accountID string, u *pb.PurchaseUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.published[accountID] = append(b.published[accountID], u)
	return nil
}

func (b *fakeBroker) Subscribe(context.Context, string) (<-chan *pb.PurchaseUpdate, error) {
	ch := make(chan *pb.PurchaseUpdate)
	close(ch)
	return ch, nil
}

func (b *fakeBroker) Close() error { return nil }

func (b *fakeBroker) updates(accountID string) []*pb.PurchaseUpdate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.published[accountID]
}

// --- helpers ---

var testCatalog = map[string]models.Product{
	"qr_scanner_monthly_sub": {ID: "qr_scanner_monthly_sub", Category: models.CategorySubs, Title: "Monthly", PriceMicros: 1990000, Currency: "USD", BasePlanID: "monthly"},
	"qr_scanner_yearly_sub":  {ID: "qr_scanner_yearly_sub", Category: models.CategorySubs, Title: "Yearly", PriceMicros: 9990000, Currency: "USD", BasePlanID: "yearly"},
	"qr_scanner_lifetime":    {ID: "qr_scanner_lifetime", Category: models.CategoryInApp, Title: "Lifetime", PriceMicros: 14990000, Currency: "USD"},
	"qr_scanner_remove_ads":  {ID: "qr_scanner_remove_ads", Category: models.CategoryInApp, Title: "Remove Ads", PriceMicros: 2990000, Currency: "USD"},
}

type env struct {
	svc       *BillingService
	mock      sqlmock.Sqlmock
	purchases *fakePurchasesRepo
	products  *fakeProductsRepo
	broker    *fakeBroker
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	prods := &fakeProductsRepo{items: testCatalog}
	purch := &fakePurchasesRepo{items: map[string]*models.Purchase{}, catalog: prods}
	broker := &fakeBroker{published: map[string][]*pb.PurchaseUpdate{}}

	cfg := &config.Config{
		TokenSecret:     "k",
		CheckoutBaseURL: "http://pay.test/",
		CheckoutTTL:     15 * time.Minute,
	}
	svc := NewBillingService(db, &fakeRepoManager{products: prods, purchases: purch}, broker, cfg, logging.Nop{})
	return &env{svc: svc, mock: mock, purchases: purch, products: prods, broker: broker}
}

// launch runs a successful LaunchPurchaseFlow and returns the purchase token.
func (e *env) launch(t *testing.T, accountID, productID, offer string) string {
	t.Helper()
	e.mock.ExpectBegin()
	e.mock.ExpectCommit()

	resp, err := e.svc.LaunchPurchaseFlow(context.Background(), accountID, productID, offer)
	require.NoError(t, err)
	require.Equal(t, pb.CodeOK, resp.ResponseCode, resp.DebugMessage)

	const prefix = "http://pay.test/checkout/"
	require.Contains(t, resp.CheckoutUrl, prefix)
	return resp.CheckoutUrl[len(prefix):]
}

func setNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}
