// Package auth issues and verifies the session tokens handed out after a
// successful Telegram authentication. Tokens are self-contained HS256 JWTs
// carrying the caller's Telegram id; no server-side session table exists.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// TokenTTL is the fixed session lifetime.
const TokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// Claims are the JWT claims of a session token.
type Claims struct {
	jwt.RegisteredClaims
	TelegramID string `json:"telegram_id"`
}

// TokenManager signs and verifies session tokens with a shared secret.
type TokenManager struct {
	secret []byte
	clock  clockwork.Clock
}

func NewTokenManager(secret []byte, clock clockwork.Clock) *TokenManager {
	return &TokenManager{secret: secret, clock: clock}
}

// Issue signs a token for the given Telegram id, valid for TokenTTL.
func (m *TokenManager) Issue(telegramID string) (string, error) {
	now := m.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		TelegramID: telegramID,
	})
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded Telegram id.
// Every failure mode collapses into ErrInvalidToken so callers cannot leak
// verification internals.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.TelegramID == "" {
		return "", ErrInvalidToken
	}
	return claims.TelegramID, nil
}
