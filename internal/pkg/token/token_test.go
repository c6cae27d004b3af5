package token

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	issuer, err := NewIssuer("local-dev-secret", 24*time.Hour)
	require.NoError(t, err)

	raw, err := issuer.Sign(42, "ana.perez@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "v4.local."))

	claims, err := issuer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana.perez", claims.UserName)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer, err := NewIssuer("local-dev-secret", time.Hour)
	require.NoError(t, err)

	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer.WithClock(func() time.Time { return issued })
	raw, err := issuer.Sign(1, "a@b.c")
	require.NoError(t, err)

	issuer.WithClock(func() time.Time { return issued.Add(59 * time.Minute) })
	_, err = issuer.Verify(raw)
	assert.NoError(t, err)

	issuer.WithClock(func() time.Time { return issued.Add(61 * time.Minute) })
	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsTampering(t *testing.T) {
	issuer, err := NewIssuer("local-dev-secret", time.Hour)
	require.NoError(t, err)
	raw, err := issuer.Sign(7, "x@y.z")
	require.NoError(t, err)

	body := []byte(raw)
	last := len(body) - 5
	if body[last] == 'A' {
		body[last] = 'B'
	} else {
		body[last] = 'A'
	}
	_, err = issuer.Verify(string(body))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("v3.local." + strings.TrimPrefix(raw, "v4.local."))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("v4.local.AAAA")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewIssuer("another-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseKey(t *testing.T) {
	_, err := ParseKey(GenerateKey())
	assert.NoError(t, err)

	_, err = ParseKey("k4.local.doPhJGTf4E4lAtRrC8WKUmr18LwF6T_r-kI9D1C_J-k=")
	assert.NoError(t, err)

	_, err = ParseKey("k4.local.short")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = ParseKey("")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

// Key and token from the PASETO v4.local test vectors (4-E-1).
func TestDecryptKnownVector(t *testing.T) {
	keyBytes, err := hex.DecodeString("707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f")
	require.NoError(t, err)
	key, err := paseto.V4SymmetricKeyFromBytes(keyBytes)
	require.NoError(t, err)

	vector := "v4.local.AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAQAr68PS4AXe7If_ZgesdkUMvSwscFlAl1pk5HC0e8kApeaqMfGo_7OpBnwJOAbY9V7WU6abu74MmcUE8YWAiaArVI8XJ5hOb_4v9RmDkneN0S92dx0OW4pgy7omxgf3S8c3LlQg"
	parser := paseto.NewParserWithoutExpiryCheck()
	tok, err := parser.ParseV4Local(key, vector, nil)
	require.NoError(t, err)

	data, err := tok.GetString("data")
	require.NoError(t, err)
	assert.Equal(t, "this is a secret message", data)
	exp, err := tok.GetString("exp")
	require.NoError(t, err)
	assert.Equal(t, "2022-01-01T00:00:00+00:00", exp)
}

func TestIssuerAcceptsPaserkKey(t *testing.T) {
	secret := GenerateKey()
	a, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	b, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)

	raw, err := a.Sign(3, "eva@example.com")
	require.NoError(t, err)
	claims, err := b.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, "eva", claims.UserName)
}
