package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"directorio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "test-client-id.apps.googleusercontent.com"

func testService() *AuthServiceImpl {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID}}

	return NewAuthService(cfg, logger).(*AuthServiceImpl)
}

// buildIDToken assembles an unsigned JWT carrying the given claims. Signature
// verification is out of scope here; the service checks the claim set.
func buildIDToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".signature"
}

func validClaims() IDTokenClaims {
	return IDTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "10769150350006150715113082367",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "ana@example.com",
		EmailVerified: true,
		Name:          "Ana Pérez",
	}
}

func TestVerifyIDToken_Success(t *testing.T) {
	srv := testService()

	user, err := srv.VerifyIDToken(context.Background(), buildIDToken(t, validClaims()))

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana Pérez", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_WrongAudience(t *testing.T) {
	srv := testService()

	claims := validClaims()
	claims.Aud = "another-client-id"

	user, err := srv.VerifyIDToken(context.Background(), buildIDToken(t, claims))

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid audience")
}

func TestVerifyIDToken_WrongIssuer(t *testing.T) {
	srv := testService()

	claims := validClaims()
	claims.Iss = "https://evil.example.com"

	user, err := srv.VerifyIDToken(context.Background(), buildIDToken(t, claims))

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid issuer")
}

func TestVerifyIDToken_Expired(t *testing.T) {
	srv := testService()

	claims := validClaims()
	claims.Exp = time.Now().Add(-time.Hour).Unix()

	user, err := srv.VerifyIDToken(context.Background(), buildIDToken(t, claims))

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "token expired")
}

func TestVerifyIDToken_UnverifiedEmail(t *testing.T) {
	srv := testService()

	claims := validClaims()
	claims.EmailVerified = false

	user, err := srv.VerifyIDToken(context.Background(), buildIDToken(t, claims))

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "email not verified")
}

func TestVerifyIDToken_MalformedToken(t *testing.T) {
	srv := testService()

	user, err := srv.VerifyIDToken(context.Background(), "not-a-jwt")

	require.Error(t, err)
	assert.Nil(t, user)
}
