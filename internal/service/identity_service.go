package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/spec-kit/school-admin-service/internal/auth"
	"github.com/spec-kit/school-admin-service/internal/config"
	"github.com/spec-kit/school-admin-service/internal/domain"
	"github.com/spec-kit/school-admin-service/internal/events"
	"github.com/spec-kit/school-admin-service/internal/repository"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

// IdentityService provisions, updates and deletes operator accounts. Every
// provisioned account starts with the configured default password and must
// change it on first login.
type IdentityService struct {
	accounts        repository.AccountRepository
	dispatcher      events.Dispatcher
	bcryptCost      int
	defaultPassword string
}

// NewIdentityService builds the service.
func NewIdentityService(cfg config.Config, accounts repository.AccountRepository, dispatcher events.Dispatcher) *IdentityService {
	return &IdentityService{
		accounts:        accounts,
		dispatcher:      dispatcher,
		bcryptCost:      cfg.Auth.BcryptCost,
		defaultPassword: cfg.Auth.DefaultPassword,
	}
}

// ProvisionInput carries identity and profile fields for a new account.
type ProvisionInput struct {
	Email     *string
	Phone     *string
	FirstName string
	LastName  string
	Profile   domain.RoleProfile
}

// AccountUpdateInput carries partial updates for an existing account.
type AccountUpdateInput struct {
	Email     *string
	Phone     *string
	FirstName *string
	LastName  *string
	Active    *bool
	Profile   *domain.RoleProfile
}

// ProvisionAccount creates an account plus its matching role profile in one
// atomic step. Only office_staff and librarian accounts are provisionable.
func (s *IdentityService) ProvisionAccount(ctx context.Context, actor *domain.Account, role domain.Role, input ProvisionInput) (*domain.Account, error) {
	if role != domain.RoleOfficeStaff && role != domain.RoleLibrarian {
		return nil, apperrors.NewValidationError("invalid role",
			map[string]any{"role": "must be office_staff or librarian"})
	}

	email := normalizeEmail(input.Email)
	phone := normalizePhone(input.Phone)
	if email == nil && phone == nil {
		return nil, apperrors.NewValidationError("identity missing",
			map[string]any{"identifier": "either email or phone must be provided"})
	}

	if err := s.checkDuplicate(ctx, email, "email"); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(ctx, phone, "phone"); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(s.defaultPassword, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	profile := input.Profile
	if profile.Gender == "" {
		profile.Gender = domain.GenderMale
	}
	if profile.Status == "" {
		profile.Status = domain.ProfileStatusActive
	}

	account := &domain.Account{
		Email:              email,
		Phone:              phone,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Role:               role,
		Active:             true,
		MustChangePassword: true,
		PasswordHash:       hash,
		Profile:            &profile,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, events.Event{
		Type: events.EventAccountProvisioned,
		Payload: events.AccountProvisionedPayload{
			AccountID:  account.ID,
			Role:       account.Role,
			Identifier: account.Identifier(),
		},
	})
	return account, nil
}

// Lookup fetches an account by id.
func (s *IdentityService) Lookup(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Account", nil)
		}
		return nil, err
	}
	return account, nil
}

// UpdateAccount applies a partial update to identity and profile fields.
// The role tag is immutable.
func (s *IdentityService) UpdateAccount(ctx context.Context, actor *domain.Account, id int64, input AccountUpdateInput) (*domain.Account, error) {
	account, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := normalizeEmail(input.Email)
		if email != nil && (account.Email == nil || *account.Email != *email) {
			if err := s.checkDuplicate(ctx, email, "email"); err != nil {
				return nil, err
			}
		}
		account.Email = email
	}
	if input.Phone != nil {
		phone := normalizePhone(input.Phone)
		if phone != nil && (account.Phone == nil || *account.Phone != *phone) {
			if err := s.checkDuplicate(ctx, phone, "phone"); err != nil {
				return nil, err
			}
		}
		account.Phone = phone
	}
	if account.Email == nil && account.Phone == nil {
		return nil, apperrors.NewValidationError("identity missing",
			map[string]any{"identifier": "either email or phone must be provided"})
	}
	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}
	if input.Active != nil {
		account.Active = *input.Active
	}
	if input.Profile != nil && account.Profile != nil {
		mergeProfile(account.Profile, input.Profile)
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Account", nil)
		}
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes an account and its role profile. The confirmation is
// stateless: callers without confirm=true get the prompt back and nothing is
// deleted.
func (s *IdentityService) DeleteAccount(ctx context.Context, actor *domain.Account, id int64, confirm bool) error {
	if !confirm {
		return apperrors.NewConfirmationRequired("are you sure you want to delete this account? resend with confirm=true")
	}

	account, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Account", nil)
		}
		return err
	}

	s.publish(ctx, actor, events.Event{
		Type: events.EventAccountDeleted,
		Payload: events.AccountDeletedPayload{
			AccountID: account.ID,
			Role:      account.Role,
		},
	})
	return nil
}

// SeedAdmin creates the bootstrap admin account when configured and absent.
func (s *IdentityService) SeedAdmin(ctx context.Context, cfg config.BootstrapConfig) error {
	if cfg.AdminEmail == "" {
		return nil
	}
	if _, err := s.accounts.GetByIdentifier(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !apperrors.IsNotFound(err) {
		return err
	}

	hash, err := auth.HashPassword(s.defaultPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	email := cfg.AdminEmail
	admin := &domain.Account{
		Email:              &email,
		FirstName:          cfg.AdminFirstName,
		LastName:           cfg.AdminLastName,
		Role:               domain.RoleAdmin,
		Active:             true,
		MustChangePassword: true,
		PasswordHash:       hash,
	}
	return s.accounts.Create(ctx, admin)
}

func (s *IdentityService) checkDuplicate(ctx context.Context, identifier *string, field string) error {
	if identifier == nil {
		return nil
	}
	_, err := s.accounts.GetByIdentifier(ctx, *identifier)
	if err == nil {
		return apperrors.NewDuplicateIdentity(field)
	}
	if apperrors.IsNotFound(err) {
		return nil
	}
	return err
}

func (s *IdentityService) publish(ctx context.Context, actor *domain.Account, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if actor != nil {
		event.Actor = events.Actor{AccountID: actor.ID, Role: actor.Role}
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.ToLower(strings.TrimSpace(*email))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// normalizePhone strips everything but digits.
func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	var b strings.Builder
	for _, r := range *phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return nil
	}
	return &digits
}

func mergeProfile(dst, src *domain.RoleProfile) {
	if src.Qualification != nil {
		dst.Qualification = src.Qualification
	}
	if src.DateOfBirth != nil {
		dst.DateOfBirth = src.DateOfBirth
	}
	if src.Address != nil {
		dst.Address = src.Address
	}
	if src.Pincode != nil {
		dst.Pincode = src.Pincode
	}
	if src.Gender != "" {
		dst.Gender = src.Gender
	}
	if src.About != nil {
		dst.About = src.About
	}
	if src.Status != "" {
		dst.Status = src.Status
	}
	if src.ProfileImage != nil {
		dst.ProfileImage = src.ProfileImage
	}
}
