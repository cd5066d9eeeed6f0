package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

type record struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

func TestEncryptDecryptEntry_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 32)
	in := []record{{Content: "https://example.com", Type: "URL"}}

	ct, nonce, err := EncryptEntry(in, key)
	require.NoError(t, err)
	require.Len(t, nonce, 12)

	var out []record
	require.NoError(t, DecryptEntry(ct, nonce, key, &out))
	assert.Equal(t, in, out)
}

func TestDecryptEntry_WrongKeyFails(t *testing.T) {
	ct, nonce, err := EncryptEntry(record{Content: "x"}, bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)

	var out record
	require.Error(t, DecryptEntry(ct, nonce, bytes.Repeat([]byte{2}, 32), &out))
}

func TestSealOpen(t *testing.T) {
	in := record{Content: "WIFI:S:home;T:WPA;P:pw;;", Type: "WiFi"}

	sealed, err := Seal(in, []byte("correct horse"))
	require.NoError(t, err)
	assert.Len(t, sealed.Salt, 16)

	var out record
	require.NoError(t, Open(sealed, []byte("correct horse"), &out))
	assert.Equal(t, in, out)

	require.Error(t, Open(sealed, []byte("battery staple"), &out))
}

func TestSeal_EmptyPassphrase(t *testing.T) {
	_, err := Seal(record{}, nil)
	require.ErrorIs(t, err, ErrEmptyPassphrase)

	require.ErrorIs(t, Open(&Sealed{}, nil, &record{}), ErrEmptyPassphrase)
}
