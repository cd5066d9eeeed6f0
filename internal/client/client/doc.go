// Package client contains client-side building blocks for the scanner CLI.
//
// # Overview
//
// The package provides:
//  1. A gRPC implementation of billing.Service (see GRPCClient) that manages
//     a connection, stamps every call with the local account ID via
//     interceptors, turns the PurchaseUpdates stream into a billing.Session,
//     and maps gRPC status codes to sentinel errors.
//  2. Local persistence bootstrap utilities (InitDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound.
//
// See Also
//
//   - gRPC impl:  GRPCClient
//   - DB helpers: InitDatabase, RunMigrations
package client
