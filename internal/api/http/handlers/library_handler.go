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

// LibraryHandler exposes book loan history endpoints.
type LibraryHandler struct {
	library *service.LibraryService
}

// NewLibraryHandler constructs handler.
func NewLibraryHandler(library *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{library: library}
}

// Create handles POST /library-history.
func (h *LibraryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	borrowDate, err := parseDate(req.BorrowDate)
	if err != nil {
		return apperrors.NewValidationError("invalid borrow date",
			map[string]any{"borrow_date": "must be YYYY-MM-DD"})
	}

	input := service.LoanCreateInput{
		StudentID:  req.StudentID,
		BookName:   req.BookName,
		BorrowDate: borrowDate,
		ReturnDate: parseDatePtr(req.ReturnDate),
		Status:     domain.LoanStatus(req.Status),
	}
	if req.BookCategory != nil {
		category := domain.BookCategory(*req.BookCategory)
		input.BookCategory = &category
	}

	principal, _ := auth.PrincipalFromContext(c)
	record, err := h.library.Create(c.Context(), principal.Account, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": loanResponse(record)})
}

// Get handles GET /library-history/:id.
func (h *LibraryHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	record, err := h.library.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loanResponse(record)})
}

// ListByStudent handles GET /library-history/student/:studentID.
func (h *LibraryHandler) ListByStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		return err
	}
	records, err := h.library.ListByStudent(c.Context(), studentID)
	if err != nil {
		return err
	}
	out := make([]dto.LoanResponse, 0, len(records))
	for i := range records {
		out = append(out, loanResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Update handles PUT /library-history/:id.
func (h *LibraryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.LoanUpdateInput{
		BookName:   req.BookName,
		BorrowDate: parseDatePtr(req.BorrowDate),
		ReturnDate: parseDatePtr(req.ReturnDate),
	}
	if req.BookCategory != nil {
		category := domain.BookCategory(*req.BookCategory)
		input.BookCategory = &category
	}
	if req.Status != nil {
		status := domain.LoanStatus(*req.Status)
		input.Status = &status
	}

	principal, _ := auth.PrincipalFromContext(c)
	record, err := h.library.Update(c.Context(), principal.Account, id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loanResponse(record)})
}

// Delete handles DELETE /library-history/:id.
func (h *LibraryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.library.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
