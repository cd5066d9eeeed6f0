package products

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/server/models"
)

type Repository interface {
	// List returns the products of category whose IDs are in ids, cheapest
	// first. Unknown IDs are skipped.
	List(ctx context.Context, category string, ids []string) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
}
