package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_MirrorsEntitlements(t *testing.T) {
	ent := newFakeEntitlements()
	s := NewSubscription(context.Background(), ent, logging.Nop{})
	defer s.Close()

	ent.state.Set(models.EntitlementState{Status: models.Connected, IsPremium: true, LastError: "Purchase canceled"})

	assert.Eventually(t, func() bool {
		st := s.State()
		return st.IsPremium && st.Connected && st.LastError == "Purchase canceled"
	}, waitFor, tick)

	require.NoError(t, s.ClearError())
	assert.Eventually(t, func() bool { return s.State().LastError == "" }, waitFor, tick)
	assert.Equal(t, 1, ent.cleared)
}

func TestSubscription_Purchase(t *testing.T) {
	ent := newFakeEntitlements()
	s := NewSubscription(context.Background(), ent, logging.Nop{})
	defer s.Close()

	res, err := s.Purchase(models.ProductLifetime)
	require.NoError(t, err)
	assert.Equal(t, "http://checkout/"+models.ProductLifetime, res.CheckoutURL)
	assert.Equal(t, []string{models.ProductLifetime}, ent.purchased)

	ent.purchaseErr = errors.New("launch failed")
	_, err = s.Purchase(models.ProductMonthly)
	assert.Error(t, err)
}

func TestSubscription_LoadProducts(t *testing.T) {
	ent := newFakeEntitlements()
	ent.products = []models.ProductDetails{{ProductID: models.ProductYearly, FormattedPrice: "$9.99"}}
	s := NewSubscription(context.Background(), ent, logging.Nop{})
	defer s.Close()

	require.NoError(t, s.LoadProducts())
	assert.Equal(t, ent.products, s.State().Products)

	ent.productsErr = errors.New("offline")
	require.Error(t, s.LoadProducts())
	assert.Equal(t, "offline", s.State().LastError)
}
