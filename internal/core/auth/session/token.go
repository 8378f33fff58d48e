package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

const hasuraClaims = "https://hasura.io/jwt/claims"

var ErrTokenExpired = errors.New("auth token expired")

// TokenInfo is what we can read from the API bearer token without its
// signing key.
type TokenInfo struct {
	Subject string
	UserID  string
	Expiry  time.Time
}

// Inspect reads the claims of a JWT bearer token. The signature is not
// verified; the API does that.
func Inspect(raw string) (*TokenInfo, error) {
	tok, err := jwt.ParseString(raw, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return nil, fmt.Errorf("session: parse token: %w", err)
	}

	info := &TokenInfo{
		Subject: tok.Subject(),
		Expiry:  tok.Expiration(),
	}
	if claims, ok := tok.Get(hasuraClaims); ok {
		if m, ok := claims.(map[string]interface{}); ok {
			if id, ok := m["x-hasura-user-id"].(string); ok {
				info.UserID = id
			}
		}
	}
	return info, nil
}

// Valid fails with ErrTokenExpired once now is past the token expiry. Tokens
// without an expiry are always valid.
func (t *TokenInfo) Valid(now time.Time) error {
	if t == nil || t.Expiry.IsZero() {
		return nil
	}
	if now.After(t.Expiry) {
		return fmt.Errorf("%w at %s", ErrTokenExpired, t.Expiry.Format(time.RFC3339))
	}
	return nil
}

func (t *TokenInfo) ExpiresWithin(now time.Time, d time.Duration) bool {
	if t == nil || t.Expiry.IsZero() {
		return false
	}
	return t.Expiry.Sub(now) < d
}
