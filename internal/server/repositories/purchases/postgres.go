package purchases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/dbx"
	"github.com/dmitrijs2005/qrscanner/internal/server/models"
)

const purchaseColumns = `p.id, p.order_id, p.account_id, p.product_id, p.token, p.state, p.acknowledged, p.created_at, p.purchased_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPurchase(s scanner) (*models.Purchase, error) {
	p := &models.Purchase{}
	var purchasedAt sql.NullTime
	if err := s.Scan(&p.ID, &p.OrderID, &p.AccountID, &p.ProductID, &p.Token, &p.State,
		&p.Acknowledged, &p.CreatedAt, &purchasedAt); err != nil {
		return nil, err
	}
	if purchasedAt.Valid {
		p.PurchasedAt = purchasedAt.Time
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Purchase) error {
	query :=
		`INSERT INTO purchases (id, order_id, account_id, product_id, token, state)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, p.ID, p.OrderID, p.AccountID, p.ProductID, p.Token, p.State).
		Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases p WHERE p.token = $1`

	p, err := scanPurchase(r.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID, category string) ([]models.Purchase, error) {
	query :=
		`SELECT ` + purchaseColumns + ` FROM purchases p
		 JOIN products pr ON pr.id = p.product_id
		 WHERE p.account_id = $1 AND pr.category = $2
		 ORDER BY p.created_at`

	rows, err := r.db.QueryContext(ctx, query, accountID, category)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) MarkPurchased(ctx context.Context, id string) (*models.Purchase, error) {
	query :=
		`UPDATE purchases p SET state = 'purchased', purchased_at = now()
		 WHERE p.id = $1 AND p.state = 'pending'
		 RETURNING ` + purchaseColumns

	p, err := scanPurchase(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Acknowledge(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE purchases SET acknowledged = TRUE WHERE id = $1 AND state = 'purchased'`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) DeletePending(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = $1 AND state = 'pending'`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
