package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/school-admin-service/internal/auth"
	"github.com/spec-kit/school-admin-service/internal/config"
	"github.com/spec-kit/school-admin-service/internal/domain"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 5,
			RefreshTokenTTLHours:  1,
			BcryptCost:            bcrypt.MinCost,
			DefaultPassword:       "ChangeMe@123",
		},
	}
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password string, active bool) *domain.Account {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.Account{
		Email:              strPtr(email),
		FirstName:          "Test",
		LastName:           "User",
		Role:               domain.RoleOfficeStaff,
		Active:             active,
		MustChangePassword: true,
		PasswordHash:       hash,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo := newFakeAccountRepo()
	sessions := newFakeSessionStore()
	svc := NewAuthService(testConfig(), repo, sessions)
	seedAccount(t, repo, "staff@school.test", "secret-pass", true)

	account, pair, err := svc.Login(context.Background(), "staff@school.test", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "staff@school.test", *account.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Len(t, sessions.sessions, 1)

	claims, err := svc.TokenManager().ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, domain.RoleOfficeStaff, claims.Role)
	assert.True(t, claims.MustChangePassword)
}

func TestLoginAcceptsIdentifierAsProvisioned(t *testing.T) {
	repo := newFakeAccountRepo()
	authSvc := NewAuthService(testConfig(), repo, newFakeSessionStore())
	identitySvc := NewIdentityService(testConfig(), repo, nil)

	_, err := identitySvc.ProvisionAccount(context.Background(), adminActor(), domain.RoleOfficeStaff, ProvisionInput{
		Email:     strPtr("Asha.Nair@School.Test"),
		FirstName: "Asha",
		LastName:  "Nair",
	})
	require.NoError(t, err)
	_, err = identitySvc.ProvisionAccount(context.Background(), adminActor(), domain.RoleLibrarian, ProvisionInput{
		Phone:     strPtr("+91 98765-43210"),
		FirstName: "Ravi",
		LastName:  "Kumar",
	})
	require.NoError(t, err)

	// The exact strings used at provisioning time must authenticate,
	// alongside their stored normalized forms.
	for _, identifier := range []string{
		"Asha.Nair@School.Test",
		"asha.nair@school.test",
		"+91 98765-43210",
		"919876543210",
	} {
		account, pair, err := authSvc.Login(context.Background(), identifier, "ChangeMe@123")
		require.NoError(t, err, "identifier %q", identifier)
		assert.NotNil(t, account)
		assert.NotEmpty(t, pair.AccessToken)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testConfig(), repo, newFakeSessionStore())
	seedAccount(t, repo, "staff@school.test", "secret-pass", true)

	cases := []struct {
		name       string
		identifier string
		password   string
	}{
		{"unknown identifier", "nobody@school.test", "secret-pass"},
		{"wrong password", "staff@school.test", "nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tc.identifier, tc.password)
			require.Error(t, err)
			assert.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)
		})
	}
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testConfig(), repo, newFakeSessionStore())
	seedAccount(t, repo, "gone@school.test", "secret-pass", false)

	_, _, err := svc.Login(context.Background(), "gone@school.test", "secret-pass")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)
}

func TestRefreshRotatesSession(t *testing.T) {
	repo := newFakeAccountRepo()
	sessions := newFakeSessionStore()
	svc := NewAuthService(testConfig(), repo, sessions)
	seedAccount(t, repo, "staff@school.test", "secret-pass", true)

	_, pair, err := svc.Login(context.Background(), "staff@school.test", "secret-pass")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.RefreshToken)
	assert.Len(t, sessions.sessions, 1, "old session must be revoked on rotation")

	// The consumed refresh token is no longer honored.
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := newFakeAccountRepo()
	sessions := newFakeSessionStore()
	svc := NewAuthService(testConfig(), repo, sessions)
	seedAccount(t, repo, "staff@school.test", "secret-pass", true)

	_, pair, err := svc.Login(context.Background(), "staff@school.test", "secret-pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.RefreshToken))
	assert.Empty(t, sessions.sessions)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.Error(t, err)
}

func TestLogoutToleratesInvalidToken(t *testing.T) {
	svc := NewAuthService(testConfig(), newFakeAccountRepo(), newFakeSessionStore())
	assert.NoError(t, svc.Logout(context.Background(), "garbage"))
}

func TestChangePasswordClearsMustChangeFlag(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testConfig(), repo, newFakeSessionStore())
	account := seedAccount(t, repo, "staff@school.test", "ChangeMe@123", true)

	err := svc.ChangePassword(context.Background(), account.ID, "ChangeMe@123", "new-password-1", "new-password-1")
	require.NoError(t, err)

	updated, err := repo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.False(t, updated.MustChangePassword)
	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "new-password-1"))
}

func TestChangePasswordConfirmationMismatchLeavesHashUntouched(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testConfig(), repo, newFakeSessionStore())
	account := seedAccount(t, repo, "staff@school.test", "ChangeMe@123", true)

	err := svc.ChangePassword(context.Background(), account.ID, "ChangeMe@123", "new-password-1", "different")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "confirm_password")

	unchanged, err := repo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.MustChangePassword)
	assert.NoError(t, auth.ComparePassword(unchanged.PasswordHash, "ChangeMe@123"))
}

func TestChangePasswordRejectsWrongOldPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testConfig(), repo, newFakeSessionStore())
	account := seedAccount(t, repo, "staff@school.test", "ChangeMe@123", true)

	err := svc.ChangePassword(context.Background(), account.ID, "wrong-old", "new-password-1", "new-password-1")
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "old_password")
}
