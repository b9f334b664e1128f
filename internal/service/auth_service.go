package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/school-admin-service/internal/auth"
	"github.com/spec-kit/school-admin-service/internal/config"
	"github.com/spec-kit/school-admin-service/internal/domain"
	"github.com/spec-kit/school-admin-service/internal/repository"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

// AuthService coordinates login, token refresh and password changes.
type AuthService struct {
	accounts   repository.AccountRepository
	sessions   auth.SessionStore
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, accounts repository.AccountRepository, sessions auth.SessionStore) *AuthService {
	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates by email or phone and issues a token pair. The
// identifier is normalized the same way provisioning normalizes it, so the
// exact string an account was created with always logs in.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.Account, *domain.TokenPair, error) {
	account, err := s.lookupByIdentifier(ctx, identifier)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, apperrors.NewUnauthenticated("invalid credentials")
		}
		return nil, nil, err
	}
	if !account.Active {
		return nil, nil, apperrors.NewUnauthenticated("invalid credentials")
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthenticated("invalid credentials")
	}

	pair, err := s.issuePair(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

// Refresh rotates a refresh session: the presented token's session is
// revoked and a fresh pair issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokenMgr.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthenticated("invalid refresh token")
	}

	accountID, live, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !live || accountID != claims.AccountID {
		return nil, apperrors.NewUnauthenticated("session expired or revoked")
	}

	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthenticated("account not found")
		}
		return nil, err
	}
	if !account.Active {
		return nil, apperrors.NewUnauthenticated("account disabled")
	}

	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return nil, err
	}
	return s.issuePair(ctx, account)
}

// Logout revokes the refresh session carried by the token. An already
// invalid token is treated as logged out.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokenMgr.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

// ChangePassword verifies the old password, checks the confirmation and
// stores the new hash, clearing the must-change flag.
func (s *AuthService) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return apperrors.NewValidationError("password confirmation does not match",
			map[string]any{"confirm_password": "new password and confirm password do not match"})
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Account", nil)
		}
		return err
	}
	if err := auth.ComparePassword(account.PasswordHash, oldPassword); err != nil {
		return apperrors.NewValidationError("old password is incorrect",
			map[string]any{"old_password": "old password is incorrect"})
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.accounts.UpdatePassword(ctx, account.ID, hash, false)
}

// lookupByIdentifier resolves an account by the email form of the identifier
// first (lowercased, trimmed), then by its digits-only phone form.
func (s *AuthService) lookupByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	if email := normalizeEmail(&identifier); email != nil {
		account, err := s.accounts.GetByIdentifier(ctx, *email)
		if err == nil {
			return account, nil
		}
		if !apperrors.IsNotFound(err) {
			return nil, err
		}
	}
	if phone := normalizePhone(&identifier); phone != nil {
		return s.accounts.GetByIdentifier(ctx, *phone)
	}
	return nil, apperrors.NewNotFound("Account", nil)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issuePair(ctx context.Context, account *domain.Account) (*domain.TokenPair, error) {
	accessToken, accessExp, err := s.tokenMgr.GenerateAccessToken(account)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	refreshToken, refreshExp, err := s.tokenMgr.GenerateRefreshToken(account.ID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, sessionID, account.ID, s.tokenMgr.RefreshTTL()); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}
