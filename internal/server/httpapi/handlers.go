package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type checkoutResponse struct {
	OrderID     string     `json:"order_id"`
	ProductID   string     `json:"product_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	State       string     `json:"state"`
	Expired     bool       `json:"expired"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
}

type stateResponse struct {
	OrderID string `json:"order_id,omitempty"`
	State   string `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, common.ErrInvalidToken):
		status, msg = http.StatusBadRequest, "invalid purchase token"
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "purchase not found"
	case errors.Is(err, services.ErrAlreadyCompleted):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrCheckoutExpired):
		status, msg = http.StatusGone, err.Error()
	default:
		s.logger.Error(r.Context(), "checkout request failed", "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if _, err := s.checkout.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: "ok"})
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	v, err := s.checkout.Checkout(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := checkoutResponse{
		OrderID:     v.Purchase.OrderID,
		ProductID:   v.Product.ID,
		Title:       v.Product.Title,
		Description: v.Product.Description,
		Price:       v.Product.FormattedPrice(),
		State:       v.Purchase.State,
		Expired:     v.Expired,
	}
	if !v.Purchase.PurchasedAt.IsZero() {
		at := v.Purchase.PurchasedAt
		resp.PurchasedAt = &at
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) confirm(w http.ResponseWriter, r *http.Request) {
	p, err := s.checkout.Confirm(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{OrderID: p.OrderID, State: p.State})
}

func (s *Server) cancel(w http.ResponseWriter, r *http.Request) {
	if err := s.checkout.Cancel(r.Context(), chi.URLParam(r, "token")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: "canceled"})
}
