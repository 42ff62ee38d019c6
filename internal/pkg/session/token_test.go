package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/farm-storefront/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "Farm Storefront"},
		Session: config.SessionConfig{Secret: "0123456789abcdef0123456789abcdef", Expiry: time.Hour},
	}
}

func TestIssueAndValidate(t *testing.T) {
	m := NewManager(testConfig())

	sessionID, token, expiresAt, err := m.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	got, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager(testConfig())
	start := time.Now()
	m.now = func() time.Time { return start }

	_, token, _, err := m.Issue()
	require.NoError(t, err)

	m.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	_, token, _, err := NewManager(testConfig()).Issue()
	require.NoError(t, err)

	other := testConfig()
	other.Session.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = NewManager(other).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongTokenType(t *testing.T) {
	cfg := testConfig()
	claims := &Claims{
		SessionID: "abc",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.App.Name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Session.Secret))
	require.NoError(t, err)

	_, err = NewManager(cfg).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := NewManager(testConfig()).Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc"))
	assert.Empty(t, ExtractTokenFromHeader("Bearer "))
}
