package models

import "time"

// ScanType is the category tag stored with every scan.
type ScanType string

const (
	ScanTypeURL     ScanType = "URL"
	ScanTypeContact ScanType = "Contact"
	ScanTypeWiFi    ScanType = "WiFi"
	ScanTypeText    ScanType = "Text"
)

// ScanRecord is one decoded code persisted in the history.
type ScanRecord struct {
	// ID is assigned by the store on insert and never changes afterwards.
	ID int64 `json:"id"`

	// Content is the decoded text payload.
	Content string `json:"content"`

	Type ScanType `json:"type"`

	// Timestamp is the creation instant in UTC.
	Timestamp time.Time `json:"timestamp"`

	Favorite bool `json:"favorite"`
}

// NewScanRecord returns an unsaved record stamped with the current time.
func NewScanRecord(content string, typ ScanType) *ScanRecord {
	return &ScanRecord{Content: content, Type: typ, Timestamp: time.Now().UTC()}
}

// ScannedCode is a decoded payload before it is persisted.
type ScannedCode struct {
	Content string
	Type    ScanType
}
