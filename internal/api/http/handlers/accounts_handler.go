package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-admin-service/internal/api/dto"
	"github.com/spec-kit/school-admin-service/internal/auth"
	"github.com/spec-kit/school-admin-service/internal/domain"
	"github.com/spec-kit/school-admin-service/internal/service"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

// AccountsHandler exposes admin-only account provisioning and management.
type AccountsHandler struct {
	identity *service.IdentityService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(identity *service.IdentityService) *AccountsHandler {
	return &AccountsHandler{identity: identity}
}

// CreateOfficeStaff handles POST /admin/office-staff.
func (h *AccountsHandler) CreateOfficeStaff(c *fiber.Ctx) error {
	return h.provision(c, domain.RoleOfficeStaff)
}

// CreateLibrarian handles POST /admin/librarians.
func (h *AccountsHandler) CreateLibrarian(c *fiber.Ctx) error {
	return h.provision(c, domain.RoleLibrarian)
}

// Get handles GET /admin/accounts/:id.
func (h *AccountsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	account, err := h.identity.Lookup(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// Update handles PUT /admin/accounts/:id.
func (h *AccountsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	principal, _ := auth.PrincipalFromContext(c)
	input := service.AccountUpdateInput{
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    req.Active,
		Profile:   profileFromUpdate(req),
	}
	account, err := h.identity.UpdateAccount(c.Context(), principal.Account, id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": accountResponse(account)})
}

// Delete handles DELETE /admin/accounts/:id?confirm=true. Deletion is
// stateless: without the confirm flag the caller gets the prompt back.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	confirm := c.QueryBool("confirm")

	principal, _ := auth.PrincipalFromContext(c)
	if err := h.identity.DeleteAccount(c.Context(), principal.Account, id, confirm); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *AccountsHandler) provision(c *fiber.Ctx, role domain.Role) error {
	var req dto.ProvisionAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	principal, _ := auth.PrincipalFromContext(c)
	input := service.ProvisionInput{
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Profile: domain.RoleProfile{
			Qualification: req.Qualification,
			DateOfBirth:   parseDatePtr(req.DateOfBirth),
			Address:       req.Address,
			Pincode:       req.Pincode,
			Gender:        domain.Gender(req.Gender),
			About:         req.About,
			Status:        domain.ProfileStatus(req.Status),
			ProfileImage:  req.ProfileImage,
		},
	}
	account, err := h.identity.ProvisionAccount(c.Context(), principal.Account, role, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": accountResponse(account)})
}

func profileFromUpdate(req dto.UpdateAccountRequest) *domain.RoleProfile {
	if req.Qualification == nil && req.DateOfBirth == nil && req.Address == nil &&
		req.Pincode == nil && req.Gender == "" && req.About == nil &&
		req.Status == "" && req.ProfileImage == nil {
		return nil
	}
	return &domain.RoleProfile{
		Qualification: req.Qualification,
		DateOfBirth:   parseDatePtr(req.DateOfBirth),
		Address:       req.Address,
		Pincode:       req.Pincode,
		Gender:        domain.Gender(req.Gender),
		About:         req.About,
		Status:        domain.ProfileStatus(req.Status),
		ProfileImage:  req.ProfileImage,
	}
}
