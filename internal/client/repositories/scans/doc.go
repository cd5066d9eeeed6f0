// Package scans provides the persistent scan store: the client-side history of
// decoded codes.
//
// The Repository interface is consumed by the scan service and the backup
// service. SQLiteRepository implements it over a dbx.DBTX (either *sql.DB or
// *sql.Tx). Records are returned newest first; IDs are assigned by SQLite and
// never reused.
//
// Typical Usage
//
//	repo := scans.NewSQLiteRepository(db)
//	id, _ := repo.Insert(ctx, models.NewScanRecord("https://example.com", models.ScanTypeURL))
//	list, _ := repo.GetAll(ctx)
//	_ = repo.DeleteAll(ctx)
package scans
