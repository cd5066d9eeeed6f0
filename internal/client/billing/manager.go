package billing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/observable"
	"github.com/dmitrijs2005/qrscanner/internal/workers"
)

// Manager is the process-wide entitlement client. Build one in the
// composition root and share it.
type Manager struct {
	ctx    context.Context
	svc    Service
	pool   *workers.Pool
	logger logging.Logger
	state  *observable.Value[models.EntitlementState]

	mu      sync.Mutex
	session Session

	// grants counts purchase updates that granted premium. Reconcile does
	// not downgrade IsPremium when it moved while the queries ran.
	grants atomic.Uint64
}

// NewManager returns a Disconnected manager. ctx bounds the lifetime of every
// session the manager opens; acknowledgments run on pool.
func NewManager(ctx context.Context, svc Service, pool *workers.Pool, logger logging.Logger) *Manager {
	return &Manager{
		ctx:    ctx,
		svc:    svc,
		pool:   pool,
		logger: logger.With("component", "billing"),
		state:  observable.New(models.EntitlementState{Status: models.Disconnected}),
	}
}

func (m *Manager) State() models.EntitlementState {
	return m.state.Get()
}

// Subscribe streams entitlement state changes until ctx is done.
func (m *Manager) Subscribe(ctx context.Context) <-chan models.EntitlementState {
	return m.state.Subscribe(ctx)
}

// Connect starts a session unless one is already connecting or connected.
// On success the existing purchases are reconciled.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	if m.state.Get().Status != models.Disconnected {
		m.mu.Unlock()
		return nil
	}
	m.setStatus(models.Connecting)
	m.mu.Unlock()

	return m.establish(ctx)
}

func (m *Manager) establish(ctx context.Context) error {
	m.logger.Debug(ctx, "connecting to billing service")

	sess, err := m.svc.StartConnection(ctx)
	if err != nil {
		m.mu.Lock()
		m.state.Update(func(s models.EntitlementState) models.EntitlementState {
			s.Status = models.Disconnected
			s.LastError = "Billing setup failed: " + err.Error()
			return s
		})
		m.mu.Unlock()
		m.logger.Error(ctx, "billing setup failed", "error", err)
		return fmt.Errorf("%w: %w", ErrSetupFailed, err)
	}

	m.mu.Lock()
	m.session = sess
	m.setStatus(models.Connected)
	m.mu.Unlock()

	m.logger.Info(ctx, "billing service connected")
	_ = m.Reconcile(ctx)

	go m.watch(sess)
	return nil
}

// watch pumps purchase updates of sess until the service drops it, then
// reconnects right away.
func (m *Manager) watch(sess Session) {
	updates := sess.Updates()
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			m.HandleUpdate(m.ctx, u)

		case <-sess.Done():
			m.onDisconnected(sess)
			return

		case <-m.ctx.Done():
			_ = sess.Close()
			return
		}
	}
}

func (m *Manager) onDisconnected(sess Session) {
	m.mu.Lock()
	if m.session != sess {
		m.mu.Unlock()
		return
	}
	m.session = nil
	m.setStatus(models.Connecting)
	m.mu.Unlock()

	m.logger.Warn(m.ctx, "billing service disconnected, reconnecting")
	_ = m.establish(m.ctx)
}

// Reconcile queries subscription and one-time purchases and derives
// IsPremium from them. Unacknowledged purchases are acknowledged in the
// background.
func (m *Manager) Reconcile(ctx context.Context) error {
	grants := m.grants.Load()

	var all []models.Purchase
	for _, cat := range []models.Category{models.CategorySubs, models.CategoryInApp} {
		ps, err := m.svc.QueryPurchases(ctx, cat)
		if err != nil {
			m.setError("Error querying purchases: " + err.Error())
			m.logger.Error(ctx, "error querying purchases", "category", cat, "error", err)
			return fmt.Errorf("%w: %w", ErrQueryPurchases, err)
		}
		all = append(all, ps...)
	}

	premium := false
	for _, p := range all {
		if p.GrantsPremium() {
			premium = true
		}
		m.acknowledge(p)
	}

	m.logger.Debug(ctx, "purchases reconciled", "count", len(all), "premium", premium)
	if !premium && m.grants.Load() != grants {
		m.logger.Debug(ctx, "premium granted during reconciliation, keeping it")
		return nil
	}
	m.state.Update(func(s models.EntitlementState) models.EntitlementState {
		s.IsPremium = premium
		return s
	})
	return nil
}

// LoadProducts returns the live details of every catalog product.
func (m *Manager) LoadProducts(ctx context.Context) ([]models.ProductDetails, error) {
	byCategory := map[models.Category][]string{}
	for _, e := range models.Catalog {
		byCategory[e.Category] = append(byCategory[e.Category], e.ProductID)
	}

	var out []models.ProductDetails
	for _, cat := range []models.Category{models.CategorySubs, models.CategoryInApp} {
		details, err := m.svc.QueryProductDetails(ctx, cat, byCategory[cat])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProductDetails, err)
		}
		out = append(out, details...)
	}
	return out, nil
}

// Purchase launches the purchase flow for a catalog product. The outcome is
// delivered later on the session's update channel.
func (m *Manager) Purchase(ctx context.Context, productID string) (*models.LaunchResult, error) {
	category, ok := models.CatalogCategory(productID)
	if !ok {
		m.setError("Unknown product: " + productID)
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}

	details, err := m.svc.QueryProductDetails(ctx, category, []string{productID})
	if err != nil {
		m.setError("Failed to get product details: " + err.Error())
		m.logger.Error(ctx, "failed to query product details", "product", productID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrProductDetails, err)
	}
	if len(details) == 0 {
		m.setError("Product not found")
		m.logger.Error(ctx, "product details not found", "product", productID)
		return nil, ErrProductNotFound
	}

	pd := details[0]
	params := models.FlowParams{Product: pd}
	if pd.Category == models.CategorySubs && len(pd.Offers) > 0 {
		params.OfferToken = pd.Offers[0].Token
	}

	res, err := m.svc.LaunchPurchaseFlow(ctx, params)
	if err != nil {
		m.setError("Failed to launch billing: " + err.Error())
		return nil, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}
	if res.Code != models.ResponseOK {
		m.setError("Failed to launch billing: " + res.DebugMessage)
		return res, fmt.Errorf("%w: %s", ErrLaunchFailed, res.Code)
	}

	m.logger.Info(ctx, "billing flow launched", "product", productID)
	return res, nil
}

// HandleUpdate applies the result of a purchase flow.
func (m *Manager) HandleUpdate(ctx context.Context, u models.PurchaseUpdate) {
	switch u.Code {
	case models.ResponseOK:
		if len(u.Purchases) == 0 {
			m.logger.Debug(ctx, "purchase update without purchases")
			return
		}
		premium := false
		for _, p := range u.Purchases {
			if p.State != models.PurchaseStatePurchased {
				continue
			}
			m.acknowledge(p)
			if p.GrantsPremium() {
				premium = true
			}
		}
		if premium {
			m.grants.Add(1)
			m.state.Update(func(s models.EntitlementState) models.EntitlementState {
				s.IsPremium = true
				return s
			})
			m.logger.Info(ctx, "premium status updated", "premium", true)
		}

	case models.ResponseUserCanceled:
		m.logger.Info(ctx, "user canceled the purchase")
		m.setError("Purchase canceled")

	default:
		m.logger.Error(ctx, "purchase failed", "code", u.Code, "message", u.DebugMessage)
		m.setError("Purchase failed: " + u.DebugMessage)
	}
}

func (m *Manager) ClearError() {
	m.setError("")
}

// Close drops the current session without reconnecting.
func (m *Manager) Close() error {
	m.mu.Lock()
	sess := m.session
	m.session = nil
	m.setStatus(models.Disconnected)
	m.mu.Unlock()

	if sess == nil {
		return nil
	}
	return sess.Close()
}

// acknowledge schedules acknowledgment of a purchased, unacknowledged record.
// Failures are only logged.
func (m *Manager) acknowledge(p models.Purchase) {
	if p.State != models.PurchaseStatePurchased || p.Acknowledged || p.Token == "" {
		return
	}
	token := p.Token
	m.pool.Submit("acknowledge", func(ctx context.Context) error {
		if err := m.svc.Acknowledge(ctx, token); err != nil {
			return fmt.Errorf("acknowledge %s: %w", p.OrderID, err)
		}
		m.logger.Debug(ctx, "purchase acknowledged", "order", p.OrderID)
		return nil
	})
}

func (m *Manager) setStatus(st models.ConnStatus) {
	m.state.Update(func(s models.EntitlementState) models.EntitlementState {
		s.Status = st
		return s
	})
}

func (m *Manager) setError(msg string) {
	m.state.Update(func(s models.EntitlementState) models.EntitlementState {
		s.LastError = msg
		return s
	})
}
