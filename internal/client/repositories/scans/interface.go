package scans

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
)

// Repository describes the operations of the scan store.
type Repository interface {
	// Insert stores rec and returns the assigned ID. rec.ID is ignored.
	Insert(ctx context.Context, rec *models.ScanRecord) (int64, error)

	// Update overwrites the stored record with the same ID.
	Update(ctx context.Context, rec *models.ScanRecord) error

	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error

	// GetAll returns every record ordered by recency, newest first.
	GetAll(ctx context.Context) ([]models.ScanRecord, error)

	// GetFavorites returns favorite records ordered by recency, newest first.
	GetFavorites(ctx context.Context) ([]models.ScanRecord, error)

	GetByID(ctx context.Context, id int64) (*models.ScanRecord, error)
	Count(ctx context.Context) (int, error)
}
