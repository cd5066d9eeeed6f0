package scans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectColumns = `SELECT id, content, type, timestamp, favorite FROM scans`

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.ScanRecord) (int64, error) {
	query := `INSERT INTO scans (content, type, timestamp, favorite) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, rec.Content, string(rec.Type), rec.Timestamp.UnixMilli(), rec.Favorite)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted scan id: %w", err)
	}
	return id, nil
}

// Update rewrites all columns of the record. It expects exactly one row to be affected.
func (r *SQLiteRepository) Update(ctx context.Context, rec *models.ScanRecord) error {
	query := `UPDATE scans SET content = ?, type = ?, timestamp = ?, favorite = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, rec.Content, string(rec.Type), rec.Timestamp.UnixMilli(), rec.Favorite, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to update scan: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scan: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scans`); err != nil {
		return fmt.Errorf("failed to delete scans: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.ScanRecord, error) {
	return r.list(ctx, selectColumns+` ORDER BY timestamp DESC, id DESC`)
}

func (r *SQLiteRepository) GetFavorites(ctx context.Context) ([]models.ScanRecord, error) {
	return r.list(ctx, selectColumns+` WHERE favorite = 1 ORDER BY timestamp DESC, id DESC`)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.ScanRecord, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	rec, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan %d: %w", id, err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string) ([]models.ScanRecord, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select scans: %w", err)
	}
	defer rows.Close()

	result := make([]models.ScanRecord, 0)
	for rows.Next() {
		rec, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scans: %w", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*models.ScanRecord, error) {
	var (
		rec models.ScanRecord
		typ string
		ts  int64
	)
	if err := row.Scan(&rec.ID, &rec.Content, &typ, &ts, &rec.Favorite); err != nil {
		return nil, err
	}
	rec.Type = models.ScanType(typ)
	rec.Timestamp = time.UnixMilli(ts).UTC()
	return &rec, nil
}

func expectOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}
