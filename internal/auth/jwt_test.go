package auth_test

import (
	"testing"
	"time"

	"todoboard/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndParseToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret-key", time.Hour)
	actor := auth.Actor{BoardID: uuid.New(), UserID: uuid.New(), UserName: "Alice"}

	token, expiresAt, err := issuer.Issue(actor)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	parsed, err := issuer.Parse(token)

	assert.NoError(t, err)
	assert.Equal(t, actor, parsed)
}

func TestParseToken_InvalidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret-key", time.Hour)

	_, err := issuer.Parse("invalid-token")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenIssuer("other-secret", time.Hour).
		Issue(auth.Actor{BoardID: uuid.New(), UserID: uuid.New(), UserName: "Bob"})
	assert.NoError(t, err)

	_, err = auth.NewTokenIssuer("test-secret-key", time.Hour).Parse(token)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret-key", -time.Hour)
	token, _, err := issuer.Issue(auth.Actor{BoardID: uuid.New(), UserID: uuid.New(), UserName: "Alice"})
	assert.NoError(t, err)

	_, err = issuer.Parse(token)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_MissingClaims(t *testing.T) {
	// Token without board or user name
	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, _ := token.SignedString([]byte("test-secret-key"))

	_, err := auth.NewTokenIssuer("test-secret-key", time.Hour).Parse(tokenStr)

	assert.ErrorIs(t, err, auth.ErrInvalidClaims)
}
