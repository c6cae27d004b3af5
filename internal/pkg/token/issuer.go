package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"aidanwoods.dev/go-paseto"
)

var ErrExpiredToken = errors.New("token expired")

type Claims struct {
	UserID   int64   `json:"user_id"`
	UserName string  `json:"user_name"`
	Expires  float64 `json:"expires"`
}

// Issuer signs and verifies access tokens with one symmetric key.
type Issuer struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	key, err := ParseKey(secret)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{key: key, ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source. Used by tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Sign issues a token for the user. The display name is the local part of the email.
func (i *Issuer) Sign(userID int64, email string) (string, error) {
	claims := Claims{
		UserID:   userID,
		UserName: UserName(email),
		Expires:  float64(i.now().Add(i.ttl).UnixNano()) / float64(time.Second),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}
	tok, err := paseto.NewTokenFromClaimsJSON(payload, nil)
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}
	return tok.V4Encrypt(i.key, nil), nil
}

// Verify decrypts the token and checks its expiry against the issuer clock. The
// library expiry rule is skipped because it reads the wall clock and the "exp" claim.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	parser := paseto.NewParserWithoutExpiryCheck()
	tok, err := parser.ParseV4Local(i.key, raw, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}
	var claims Claims
	if err := tok.Get("user_id", &claims.UserID); err != nil {
		return nil, ErrInvalidToken
	}
	if err := tok.Get("expires", &claims.Expires); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.UserName, err = tok.GetString("user_name"); err != nil {
		return nil, ErrInvalidToken
	}
	now := float64(i.now().UnixNano()) / float64(time.Second)
	if claims.Expires < now {
		return nil, ErrExpiredToken
	}
	return &claims, nil
}

func UserName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
