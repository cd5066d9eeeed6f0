package screens

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
)

type SubscriptionState struct {
	IsPremium bool
	Connected bool
	LastError string
	Products  []models.ProductDetails
}

// Subscription mirrors the entitlement state and relays purchase intents.
type Subscription struct {
	holder[SubscriptionState]
	ent Entitlements
}

func NewSubscription(ctx context.Context, ent Entitlements, logger logging.Logger) *Subscription {
	s := &Subscription{
		// the manager records purchase errors itself
		holder: newHolder(ctx, SubscriptionState{}, logger.With("screen", "subscription"), nil),
		ent: ent,
	}
	collect(&s.holder, ent.Subscribe, func(st SubscriptionState, e models.EntitlementState) SubscriptionState {
		st.IsPremium = e.IsPremium
		st.Connected = e.Connected()
		st.LastError = e.LastError
		return st
	})
	return s
}

// Purchase launches the flow for productID. The entitlement change arrives
// later through the state stream.
func (s *Subscription) Purchase(productID string) (*models.LaunchResult, error) {
	var res *models.LaunchResult
	err := s.run(func(ctx context.Context) error {
		var err error
		res, err = s.ent.Purchase(ctx, productID)
		return err
	})
	return res, err
}

func (s *Subscription) LoadProducts() error {
	return s.run(func(ctx context.Context) error {
		products, err := s.ent.LoadProducts(ctx)
		if err != nil {
			s.logger.Error(ctx, "failed to load products", "error", err)
			s.state.Update(func(st SubscriptionState) SubscriptionState { st.LastError = err.Error(); return st })
			return err
		}
		s.state.Update(func(st SubscriptionState) SubscriptionState { st.Products = products; return st })
		return nil
	})
}

func (s *Subscription) ClearError() error {
	return s.run(func(context.Context) error {
		s.ent.ClearError()
		s.state.Update(func(st SubscriptionState) SubscriptionState { st.LastError = ""; return st })
		return nil
	})
}
