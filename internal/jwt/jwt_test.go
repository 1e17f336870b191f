package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessRoundTrip(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithAccessExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.GenerateAccess(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.ParseAccess(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
}

func TestJWT_RefreshRoundTrip(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.GenerateRefresh(ctx, 7)
	require.NoError(t, err)

	claims, err := j.ParseRefresh(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(DefaultAccessExp)))
}

func TestJWT_KindsAreNotInterchangeable(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	access, err := j.GenerateAccess(ctx, 1)
	require.NoError(t, err)
	refresh, err := j.GenerateRefresh(ctx, 1)
	require.NoError(t, err)

	_, err = j.ParseRefresh(ctx, access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = j.ParseAccess(ctx, refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithAccessExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.GenerateAccess(ctx, 1)
	require.NoError(t, err)

	claims, err := j.ParseAccess(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestJWT_ExpiresWithClock(t *testing.T) {
	now := time.Now()
	j := New(WithSecretKey("test-secret"), WithAccessExpiration(time.Minute))
	j.now = func() time.Time { return now }
	ctx := context.Background()

	token, err := j.GenerateAccess(ctx, 1)
	require.NoError(t, err)

	j.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = j.ParseAccess(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims, err := j.ParseAccess(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.GenerateAccess(ctx, 1)
	require.NoError(t, err)

	_, err = j2.ParseAccess(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongIssuer(t *testing.T) {
	j1 := New(WithSecretKey("secret"), WithIssuer("someone-else"))
	j2 := New(WithSecretKey("secret"))
	ctx := context.Background()

	token, err := j1.GenerateAccess(ctx, 1)
	require.NoError(t, err)

	_, err = j2.ParseAccess(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", ErrMissingAuthHeader},
		{"InvalidFormat", "Token mytoken123", "", ErrInvalidAuthHeader},
		{"TooManyParts", "Bearer a b c", "", ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
