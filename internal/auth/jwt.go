// Package auth issues and verifies the demo session tokens that gate the
// role-specific route groups. Tokens are short-lived HS256 JWTs carrying
// the account role; there is no refresh flow and no revocation, the token
// is a capability for one demo session.
package auth

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/account"
	"tableside/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail signature or claim
// verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: the account role next to the standard
// registered claims, with the username as subject.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies session tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer. The secret must not be empty and the
// ttl must be positive.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("token secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("token ttl", fmt.Errorf("%s is not positive", ttl))
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a token for an authenticated account.
func (i *Issuer) Issue(username string, role account.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks a token's signature and expiry and returns its claims.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
