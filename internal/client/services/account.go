package services

import (
	"context"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/client/repositories/preferences"
	"github.com/google/uuid"
)

// LoadOrCreateAccountID returns the local account id, generating and storing
// a random one on first use. The id scopes purchases and backups.
func LoadOrCreateAccountID(ctx context.Context, repo preferences.Repository) (string, error) {
	v, err := repo.Get(ctx, models.KeyAccountID)
	if err != nil {
		return "", err
	}
	if len(v) > 0 {
		return string(v), nil
	}

	id := uuid.NewString()
	if err := repo.Set(ctx, models.KeyAccountID, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}
