// Package billing implements the entitlement client: it keeps a connection to
// the purchase-processing service, reconciles existing purchases into a single
// premium flag, launches purchase flows and handles their asynchronous
// results.
//
// Connection lifecycle
//
//	Disconnected --Connect--> Connecting --ok--> Connected
//	     ^                        |                  |
//	     +--------failure---------+     service drop |
//	                              ^------------------+
//
// A dropped session is reconnected immediately. A failed connection attempt
// leaves the manager Disconnected; callers (the CLI connection watcher) retry
// by calling Connect again.
//
// All service failures are turned into a user-facing LastError message on the
// observable EntitlementState. None of them is fatal.
package billing
