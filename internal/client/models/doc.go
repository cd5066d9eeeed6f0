// Package models defines client-side data models used by the scanner CLI:
// scan history records, billing and entitlement types, and user settings.
package models
