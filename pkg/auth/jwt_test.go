package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *JWTValidator {
	t.Helper()
	v, err := NewJWTValidator(JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "elevate",
		Audience:  []string{"elevate-api"},
	})
	require.NoError(t, err)
	return v
}

func TestNewJWTValidatorRequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	v := newTestValidator(t)

	token, err := v.GenerateToken("user-1", "admin@elevate.ph", []string{RoleAdmin}, time.Hour)
	require.NoError(t, err)

	claims, err := v.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@elevate.ph", claims.Email)
	assert.Contains(t, claims.Roles, RoleAdmin)
}

func TestValidateTokenMissing(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateTokenExpired(t *testing.T) {
	v := newTestValidator(t)

	token, err := v.GenerateToken("user-1", "", nil, -time.Minute)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	v := newTestValidator(t)
	other, err := NewJWTValidator(JWTConfig{SecretKey: "different-secret", Issuer: "elevate"})
	require.NoError(t, err)

	token, err := other.GenerateToken("user-1", "", nil, time.Hour)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	v := newTestValidator(t)
	imposter, err := NewJWTValidator(JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "someone-else",
		Audience:  []string{"elevate-api"},
	})
	require.NoError(t, err)

	token, err := imposter.GenerateToken("user-1", "", nil, time.Hour)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestValidateTokenWrongAudience(t *testing.T) {
	v := newTestValidator(t)
	other, err := NewJWTValidator(JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "elevate",
		Audience:  []string{"other-api"},
	})
	require.NoError(t, err)

	token, err := other.GenerateToken("user-1", "", nil, time.Hour)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestUserContextRoundTrip(t *testing.T) {
	user := &UserContext{UserID: "user-1", Roles: []string{RoleAdmin}}
	ctx := SetUserInContext(context.Background(), user)

	got, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.True(t, got.HasRole(RoleAdmin))
	assert.False(t, got.HasRole("viewer"))

	_, err = GetUserFromContext(context.Background())
	assert.Error(t, err)
}

func TestSlidingWindowLimiter(t *testing.T) {
	l := NewSlidingWindowLimiter(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "ip:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "ip:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other keys are tracked independently.
	ok, err = l.Allow(ctx, "ip:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, l.Reset(ctx, "ip:1.2.3.4"))
	ok, err = l.Allow(ctx, "ip:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}
