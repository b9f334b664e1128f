package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-admin-service/internal/domain"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute, time.Hour)
	account := &domain.Account{ID: 42, Role: domain.RoleOfficeStaff, MustChangePassword: true}

	token, expiresAt, err := tm.GenerateAccessToken(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 2*time.Second)

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, domain.RoleOfficeStaff, claims.Role)
	assert.True(t, claims.MustChangePassword)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute, time.Hour)

	token, _, err := tm.GenerateRefreshToken(7, "session-abc")
	require.NoError(t, err)

	claims, err := tm.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AccountID)
	assert.Equal(t, "session-abc", claims.SessionID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Minute, time.Hour)
	verifier := NewTokenManager("secret-b", time.Minute, time.Hour)

	token, _, err := issuer.GenerateAccessToken(&domain.Account{ID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Nanosecond, time.Nanosecond)

	token, _, err := tm.GenerateAccessToken(&domain.Account{ID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute, time.Hour)
	_, err := tm.ParseAccessToken("not-a-jwt")
	assert.Error(t, err)
	_, err = tm.ParseRefreshToken("")
	assert.Error(t, err)
}
