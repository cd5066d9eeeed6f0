package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/qrscanner/internal/dbx"
	"github.com/dmitrijs2005/qrscanner/internal/server/repositories/products"
	"github.com/dmitrijs2005/qrscanner/internal/server/repositories/purchases"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Products(db dbx.DBTX) products.Repository
	Purchases(db dbx.DBTX) purchases.Repository
}
