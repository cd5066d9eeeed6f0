package scanner

import (
	"testing"

	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"https://example.com", KindURL},
		{"HTTP://EXAMPLE.COM", KindURL},
		{"URLTO:example.com", KindURL},
		{"BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nEND:VCARD", KindContact},
		{"MECARD:N:Doe,John;;", KindContact},
		{"WIFI:S:home;T:WPA;P:secret;;", KindWiFi},
		{"mailto:someone@example.com", KindEmail},
		{"tel:+123456", KindPhone},
		{"geo:52.1,4.3", KindGeo},
		{"just some text", KindText},
		{"", KindText},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetectKind(c.in), c.in)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, models.ScanTypeURL, Classify(KindURL))
	assert.Equal(t, models.ScanTypeContact, Classify(KindContact))
	assert.Equal(t, models.ScanTypeWiFi, Classify(KindWiFi))

	for _, k := range []Kind{KindUnknown, KindText, KindEmail, KindPhone, KindSMS, KindGeo} {
		assert.Equal(t, models.ScanTypeText, Classify(k))
	}
}
