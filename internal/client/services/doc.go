// Package services contains application services for the scanner client.
//
// Services sit between the local repositories and the screen state holders:
// ScanService owns the observable scan history, SettingsService the observable
// user preferences, and BackupService moves the history to and from S3.
package services
