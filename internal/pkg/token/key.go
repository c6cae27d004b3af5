// Package token issues and verifies the bearer credential handed out at login.
// Tokens are PASETO v4.local, encrypted with one symmetric key.
package token

import (
	"encoding/base64"
	"errors"
	"strings"

	"aidanwoods.dev/go-paseto"
	"golang.org/x/crypto/blake2b"
)

const (
	paserkHdr = "k4.local."
	KeySize   = 32
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidKey   = errors.New("invalid symmetric key")
)

var b64 = base64.RawURLEncoding

// ParseKey accepts a PASERK "k4.local.<base64url>" key. Any other secret is stretched
// to 32 bytes with BLAKE2b-256.
func ParseKey(secret string) (paseto.V4SymmetricKey, error) {
	if secret == "" {
		return paseto.V4SymmetricKey{}, ErrInvalidKey
	}
	var raw []byte
	if strings.HasPrefix(secret, paserkHdr) {
		decoded, err := b64.DecodeString(strings.TrimRight(strings.TrimPrefix(secret, paserkHdr), "="))
		if err != nil || len(decoded) != KeySize {
			return paseto.V4SymmetricKey{}, ErrInvalidKey
		}
		raw = decoded
	} else {
		sum := blake2b.Sum256([]byte(secret))
		raw = sum[:]
	}
	key, err := paseto.V4SymmetricKeyFromBytes(raw)
	if err != nil {
		return paseto.V4SymmetricKey{}, ErrInvalidKey
	}
	return key, nil
}

// GenerateKey returns a fresh key in PASERK form.
func GenerateKey() string {
	return paserkHdr + b64.EncodeToString(paseto.NewV4SymmetricKey().ExportBytes())
}
