package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	iss := NewTokenIssuer([]byte("test-secret"), time.Hour)

	raw, err := iss.Issue(User{ID: "u1", IsAdmin: true})
	require.NoError(t, err)

	claims, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.True(t, claims.IsAdmin)
}

func TestTokenWrongSecret(t *testing.T) {
	raw, err := NewTokenIssuer([]byte("secret-a"), time.Hour).Issue(User{ID: "u1"})
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte("secret-b"), time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestTokenExpired(t *testing.T) {
	iss := NewTokenIssuer([]byte("test-secret"), -time.Minute)
	raw, err := iss.Issue(User{ID: "u1"})
	require.NoError(t, err)

	_, err = iss.Parse(raw)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestTokenGarbage(t *testing.T) {
	iss := NewTokenIssuer([]byte("test-secret"), time.Hour)
	_, err := iss.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrBadToken)
}
