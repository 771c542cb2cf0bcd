package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("dev-only"))
	require.NoError(t, err)

	return signed
}

func TestUnverifiedParser_ExtractsClaims(t *testing.T) {
	parser := NewUnverifiedParser(slog.New(slog.NewTextHandler(io.Discard, nil)))

	idToken := signToken(t, jwt.MapClaims{
		"sub":     "uid-123",
		"email":   "nadia@example.com",
		"name":    "Nadia",
		"picture": "https://img.example.com/nadia.png",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	user, err := parser.VerifyIDToken(context.Background(), idToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", user.UID)
	assert.Equal(t, "nadia@example.com", user.Email)
	assert.Equal(t, "Nadia", user.Name)
	assert.Equal(t, "unverified", user.Provider)
}

func TestUnverifiedParser_RejectsExpired(t *testing.T) {
	parser := NewUnverifiedParser(slog.New(slog.NewTextHandler(io.Discard, nil)))

	idToken := signToken(t, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := parser.VerifyIDToken(context.Background(), idToken)
	assert.Error(t, err)
}

func TestUnverifiedParser_RejectsMissingSubject(t *testing.T) {
	parser := NewUnverifiedParser(slog.New(slog.NewTextHandler(io.Discard, nil)))

	idToken := signToken(t, jwt.MapClaims{"email": "nobody@example.com"})

	_, err := parser.VerifyIDToken(context.Background(), idToken)
	assert.Error(t, err)
}
