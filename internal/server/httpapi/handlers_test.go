package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/server/models"
	"github.com/dmitrijs2005/qrscanner/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckout struct {
	pingErr error
	err     error
	view    *services.CheckoutView
	tokens  []string
}

func (f *fakeCheckout) Ping(context.Context) (string, error) {
	return "OK", f.pingErr
}

func (f *fakeCheckout) Checkout(_ context.Context, token string) (*services.CheckoutView, error) {
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeCheckout) Confirm(_ context.Context, token string) (*models.Purchase, error) {
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Purchase{OrderID: "GPA.1", State: models.StatePurchased}, nil
}

func (f *fakeCheckout) Cancel(_ context.Context, token string) error {
	f.tokens = append(f.tokens, token)
	return f.err
}

func do(t *testing.T, f *fakeCheckout, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	h := NewServer(":0", logging.Nop{}, f).Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHealthz(t *testing.T) {
	rec, body := do(t, &fakeCheckout{}, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["state"])

	rec, _ = do(t, &fakeCheckout{pingErr: errors.New("db down")}, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestView(t *testing.T) {
	f := &fakeCheckout{view: &services.CheckoutView{
		Purchase: models.Purchase{OrderID: "GPA.1", State: models.StatePending},
		Product:  models.Product{ID: "qr_scanner_lifetime", Title: "Lifetime", PriceMicros: 14990000, Currency: "USD"},
	}}

	rec, body := do(t, f, http.MethodGet, "/checkout/tok-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "GPA.1", body["order_id"])
	assert.Equal(t, "$14.99", body["price"])
	assert.Equal(t, "pending", body["state"])
	assert.Equal(t, false, body["expired"])
	assert.NotContains(t, body, "purchased_at")
	assert.Equal(t, []string{"tok-1"}, f.tokens)
}

func TestConfirmAndCancel(t *testing.T) {
	f := &fakeCheckout{}

	rec, body := do(t, f, http.MethodPost, "/checkout/tok-1/confirm")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "purchased", body["state"])
	assert.Equal(t, "GPA.1", body["order_id"])

	rec, body = do(t, f, http.MethodPost, "/checkout/tok-2/cancel")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "canceled", body["state"])

	assert.Equal(t, []string{"tok-1", "tok-2"}, f.tokens)
}

func TestMethodNotAllowed(t *testing.T) {
	rec, _ := do(t, &fakeCheckout{}, http.MethodGet, "/checkout/tok/confirm")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid token", common.ErrInvalidToken, http.StatusBadRequest},
		{"not found", common.ErrorNotFound, http.StatusNotFound},
		{"completed", services.ErrAlreadyCompleted, http.StatusConflict},
		{"expired", services.ErrCheckoutExpired, http.StatusGone},
		{"internal", errors.New("db error: boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := do(t, &fakeCheckout{err: tc.err}, http.MethodPost, "/checkout/tok/confirm")
			assert.Equal(t, tc.code, rec.Code)
			assert.NotEmpty(t, body["error"])
			assert.NotContains(t, body["error"], "boom")
		})
	}
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer(lis.Addr().String(), logging.Nop{}, &fakeCheckout{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + lis.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_BadAddress(t *testing.T) {
	s := NewServer("127.0.0.1:99999", logging.Nop{}, &fakeCheckout{})
	require.Error(t, s.Run(context.Background()))
}
