package screens

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/scope"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/observable"
)

// Entitlements is the part of the billing manager the screens use.
type Entitlements interface {
	State() models.EntitlementState
	Subscribe(ctx context.Context) <-chan models.EntitlementState
	Purchase(ctx context.Context, productID string) (*models.LaunchResult, error)
	LoadProducts(ctx context.Context) ([]models.ProductDetails, error)
	ClearError()
}

type holder[T any] struct {
	scope   *scope.Scope
	state   *observable.Value[T]
	logger  logging.Logger
	onError func(T, error) T
}

func newHolder[T any](ctx context.Context, initial T, logger logging.Logger, onError func(T, error) T) holder[T] {
	return holder[T]{
		scope:   scope.New(ctx),
		state:   observable.New(initial),
		logger:  logger,
		onError: onError,
	}
}

func (h *holder[T]) State() T { return h.state.Get() }

// Subscribe streams state changes until ctx is done or the holder is closed.
func (h *holder[T]) Subscribe(ctx context.Context) <-chan T {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-ctx.Done():
		case <-h.scope.Context().Done():
		}
		cancel()
	}()
	return h.state.Subscribe(ctx)
}

func (h *holder[T]) Close() { h.scope.Close() }

// run executes fn on the scope and records its error in the state.
func (h *holder[T]) run(fn func(ctx context.Context) error) error {
	var opErr error
	if err := h.scope.Await(func(ctx context.Context) { opErr = fn(ctx) }); err != nil {
		return err
	}
	if opErr != nil && h.onError != nil {
		h.state.Update(func(s T) T { return h.onError(s, opErr) })
	}
	return opErr
}

// collect applies fn to every value of src until the holder closes.
func collect[V any, T any](h *holder[T], src func(ctx context.Context) <-chan V, fn func(T, V) T) {
	_ = h.scope.Go(func(ctx context.Context) {
		for v := range src(ctx) {
			h.state.Update(func(s T) T { return fn(s, v) })
		}
	})
}
