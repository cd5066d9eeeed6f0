package scanner

import (
	"strings"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
)

// Kind is the structured payload type reported by a Decoder.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindURL
	KindContact
	KindWiFi
	KindEmail
	KindPhone
	KindSMS
	KindGeo
)

// Barcode is a decoded code.
type Barcode struct {
	Text string
	Kind Kind
}

// Classify maps a decoder kind onto the stored scan type.
func Classify(k Kind) models.ScanType {
	switch k {
	case KindURL:
		return models.ScanTypeURL
	case KindContact:
		return models.ScanTypeContact
	case KindWiFi:
		return models.ScanTypeWiFi
	default:
		return models.ScanTypeText
	}
}

var kindPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"http://", KindURL},
	{"https://", KindURL},
	{"urlto:", KindURL},
	{"begin:vcard", KindContact},
	{"mecard:", KindContact},
	{"wifi:", KindWiFi},
	{"mailto:", KindEmail},
	{"matmsg:", KindEmail},
	{"tel:", KindPhone},
	{"smsto:", KindSMS},
	{"sms:", KindSMS},
	{"geo:", KindGeo},
}

// DetectKind infers the payload type from its text.
func DetectKind(text string) Kind {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, p := range kindPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.kind
		}
	}
	return KindText
}
