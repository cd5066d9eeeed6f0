package billing

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
)

// Service is the purchase-processing collaborator.
type Service interface {
	// StartConnection opens a session. The session stays valid until its Done
	// channel is closed.
	StartConnection(ctx context.Context) (Session, error)

	QueryPurchases(ctx context.Context, category models.Category) ([]models.Purchase, error)
	QueryProductDetails(ctx context.Context, category models.Category, productIDs []string) ([]models.ProductDetails, error)
	LaunchPurchaseFlow(ctx context.Context, params models.FlowParams) (*models.LaunchResult, error)
	Acknowledge(ctx context.Context, purchaseToken string) error
}

// Session is a live connection to the purchase-processing service.
type Session interface {
	// Updates delivers results of launched purchase flows.
	Updates() <-chan models.PurchaseUpdate

	// Done is closed when the service drops the session.
	Done() <-chan struct{}

	Close() error
}
