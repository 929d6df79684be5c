// Package jwt issues and validates the single bearer token that gates
// StockManager's HTTP routes (spec §4.5's operator surface). There is only
// one role in this system — "stock-manager" — so the access/refresh split
// and per-user claims of a multi-tenant auth system have no home here.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OperatorRole is the sole value Claims.Role ever takes.
const OperatorRole = "stock-manager"

// Claims is the token payload. Role is always OperatorRole; it is carried
// explicitly rather than implied so a future second role does not require
// a wire-format change.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies operator tokens with a single shared secret.
type Manager struct {
	secret string
}

// NewManager returns a Manager using secret to sign and verify tokens.
func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// IssueOperatorToken returns a signed token valid for ttl, identifying the
// bearer as the stock manager.
func (m *Manager) IssueOperatorToken(ttl time.Duration) (string, error) {
	claims := Claims{
		Role: OperatorRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateOperatorToken parses tokenString and confirms it carries the
// operator role, signed with this Manager's secret and not expired.
func (m *Manager) ValidateOperatorToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Role != OperatorRole {
		return nil, fmt.Errorf("invalid token role: %s", claims.Role)
	}

	return claims, nil
}
