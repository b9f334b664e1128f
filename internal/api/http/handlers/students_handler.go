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

// StudentsHandler exposes student CRUD endpoints.
type StudentsHandler struct {
	students *service.StudentService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(students *service.StudentService) *StudentsHandler {
	return &StudentsHandler{students: students}
}

// Create handles POST /students.
func (h *StudentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.StudentInput{
		FullName:      req.FullName,
		DateOfBirth:   parseDatePtr(req.DateOfBirth),
		ClassName:     req.ClassName,
		Division:      req.Division,
		Address:       req.Address,
		Gender:        domain.Gender(req.Gender),
		Guardian:      req.Guardian,
		Phone:         req.Phone,
		State:         req.State,
		District:      req.District,
		Pincode:       req.Pincode,
		AcademicYear:  req.AcademicYear,
		AdmissionDate: parseDatePtr(req.AdmissionDate),
	}
	student, err := h.students.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": studentResponse(student)})
}

// List handles GET /students.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	students, err := h.students.List(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, studentResponse(&students[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /students/:id.
func (h *StudentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	student, err := h.students.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": studentResponse(student)})
}

// Update handles PUT /students/:id.
func (h *StudentsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.StudentInput{
		FullName:      req.FullName,
		DateOfBirth:   parseDatePtr(req.DateOfBirth),
		ClassName:     req.ClassName,
		Division:      req.Division,
		Address:       req.Address,
		Gender:        domain.Gender(req.Gender),
		Guardian:      req.Guardian,
		Phone:         req.Phone,
		State:         req.State,
		District:      req.District,
		Pincode:       req.Pincode,
		AcademicYear:  req.AcademicYear,
		AdmissionDate: parseDatePtr(req.AdmissionDate),
	}
	student, err := h.students.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": studentResponse(student)})
}

// Delete handles DELETE /students/:id. History rows cascade with the student.
func (h *StudentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.students.Delete(c.Context(), principal.Account, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
