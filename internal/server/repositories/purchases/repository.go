package purchases

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Purchase) error
	GetByToken(ctx context.Context, token string) (*models.Purchase, error)

	// ListByAccount returns the account's purchases of products in category,
	// oldest first.
	ListByAccount(ctx context.Context, accountID, category string) ([]models.Purchase, error)

	// MarkPurchased moves a pending purchase to purchased. It returns
	// common.ErrorNotFound when no pending purchase has that ID.
	MarkPurchased(ctx context.Context, id string) (*models.Purchase, error)
	Acknowledge(ctx context.Context, id string) error
	// DeletePending removes a purchase that is still pending. It returns
	// common.ErrorNotFound when no pending purchase has that ID.
	DeletePending(ctx context.Context, id string) error
}
