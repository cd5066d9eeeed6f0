// Package cryptox implements passphrase-based sealing of history backups:
// an argon2id-derived key and AES-GCM over a JSON payload.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/qrscanner/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32
)

var ErrEmptyPassphrase = errors.New("empty passphrase")

// DeriveKey stretches passphrase with argon2id into a 32-byte AES key.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keySize)
}

// EncryptEntry serializes entry to JSON and encrypts it with AES-GCM under key.
// A fresh random nonce is generated for every call and returned alongside the
// ciphertext. key must be 16, 24 or 32 bytes long.
func EncryptEntry(entry any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(entry)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(nonceSize)
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// DecryptEntry reverses EncryptEntry and unmarshals the JSON into v.
func DecryptEntry(ciphertext, nonce, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Sealed is the on-disk form of a passphrase-encrypted payload.
type Sealed struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// Seal encrypts v under a key derived from passphrase and a random salt.
func Seal(v any, passphrase []byte) (*Sealed, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}

	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	ciphertext, nonce, err := EncryptEntry(v, key)
	if err != nil {
		return nil, err
	}
	return &Sealed{Salt: salt, Nonce: nonce, Ciphertext: ciphertext}, nil
}

// Open decrypts s with passphrase into v.
func Open(s *Sealed, passphrase []byte, v any) error {
	if len(passphrase) == 0 {
		return ErrEmptyPassphrase
	}

	key := DeriveKey(passphrase, s.Salt)
	defer common.WipeByteArray(key)

	return DecryptEntry(s.Ciphertext, s.Nonce, key, v)
}
