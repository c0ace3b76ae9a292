package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token missing subject")
)

// TokenManager issues and verifies signed bearer tokens carrying a subject
// claim and an absolute expiry.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager for the given HMAC algorithm
// (HS256, HS384 or HS512) and default token lifetime.
func NewTokenManager(secret, algorithm string, ttl time.Duration) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Generate creates a signed token for the given subject, expiring ttl from now.
func (m *TokenManager) Generate(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	return jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
}

// Parse validates a token string and returns its subject. Verification is
// pinned to the configured signing method so a token cannot select its own
// algorithm. Returns ErrTokenExpired when the expiry has elapsed,
// ErrTokenMalformed when the signature is valid but the subject claim is
// absent, and ErrTokenInvalid for every other failure.
func (m *TokenManager) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}
