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

// FeesHandler exposes fee payment history endpoints.
type FeesHandler struct {
	fees *service.FeesService
}

// NewFeesHandler constructs handler.
func NewFeesHandler(fees *service.FeesService) *FeesHandler {
	return &FeesHandler{fees: fees}
}

// Create handles POST /fees-history.
func (h *FeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return apperrors.NewValidationError("invalid payment date",
			map[string]any{"payment_date": "must be YYYY-MM-DD"})
	}

	principal, _ := auth.PrincipalFromContext(c)
	record, err := h.fees.Create(c.Context(), principal.Account, service.FeesCreateInput{
		StudentID:     req.StudentID,
		FeeType:       req.FeeType,
		AcademicYear:  req.AcademicYear,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
		Remarks:       req.Remarks,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": feesResponse(record)})
}

// Get handles GET /fees-history/:id.
func (h *FeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	record, err := h.fees.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feesResponse(record)})
}

// ListByStudent handles GET /fees-history/student/:studentID.
func (h *FeesHandler) ListByStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		return err
	}
	records, err := h.fees.ListByStudent(c.Context(), studentID)
	if err != nil {
		return err
	}
	out := make([]dto.FeesResponse, 0, len(records))
	for i := range records {
		out = append(out, feesResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Update handles PUT /fees-history/:id.
func (h *FeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.FeesUpdateInput{
		FeeType:      req.FeeType,
		AcademicYear: req.AcademicYear,
		Amount:       req.Amount,
		PaymentDate:  parseDatePtr(req.PaymentDate),
		Remarks:      req.Remarks,
	}
	if req.PaymentStatus != nil {
		status := domain.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &status
	}
	record, err := h.fees.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feesResponse(record)})
}

// Delete handles DELETE /fees-history/:id.
func (h *FeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.fees.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
