// internal/pkg/session/token.go
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/your-org/farm-storefront/internal/config"
)

const tokenType = "page_session"

// ErrInvalidToken is returned for any token that does not verify
var ErrInvalidToken = errors.New("invalid or expired session token")

// Claims represents the page-session token claims
type Claims struct {
	SessionID string `json:"sid"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Manager issues and verifies page-session tokens
type Manager struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewManager creates a new session token manager
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		secret: []byte(cfg.Session.Secret),
		expiry: cfg.Session.Expiry,
		issuer: cfg.App.Name,
		now:    time.Now,
	}
}

// Issue starts a new page session and returns its id and signed token
func (m *Manager) Issue() (string, string, time.Time, error) {
	now := m.now().UTC()
	sessionID := uuid.New().String()
	expiresAt := now.Add(m.expiry)

	claims := &Claims{
		SessionID: sessionID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("session:%s", sessionID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return sessionID, signed, expiresAt, nil
}

// Validate verifies a token and returns its session id
func (m *Manager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuer(m.issuer))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.TokenType != tokenType || claims.SessionID == "" {
		return "", ErrInvalidToken
	}

	return claims.SessionID, nil
}

// ExtractTokenFromHeader extracts a token from a "Bearer <token>" header
func ExtractTokenFromHeader(authHeader string) string {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}
