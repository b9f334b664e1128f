package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-admin-service/internal/api/dto"
	"github.com/spec-kit/school-admin-service/internal/domain"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

const dateLayout = "2006-01-02"

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id parameter",
			map[string]any{name: "must be a positive integer"})
	}
	return id, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseDatePtr(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	parsed, err := parseDate(*value)
	if err != nil {
		return nil
	}
	return &parsed
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func accountResponse(account *domain.Account) dto.AccountResponse {
	resp := dto.AccountResponse{
		ID:                 account.ID,
		Email:              account.Email,
		Phone:              account.Phone,
		FirstName:          account.FirstName,
		LastName:           account.LastName,
		Role:               string(account.Role),
		Active:             account.Active,
		MustChangePassword: account.MustChangePassword,
	}
	if account.Profile != nil {
		resp.Profile = &dto.ProfileResponse{
			Qualification: account.Profile.Qualification,
			DateOfBirth:   formatDatePtr(account.Profile.DateOfBirth),
			Address:       account.Profile.Address,
			Pincode:       account.Profile.Pincode,
			Gender:        string(account.Profile.Gender),
			About:         account.Profile.About,
			Status:        string(account.Profile.Status),
			ProfileImage:  account.Profile.ProfileImage,
		}
	}
	return resp
}

func studentResponse(student *domain.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:            student.ID,
		FullName:      student.FullName,
		DateOfBirth:   formatDatePtr(student.DateOfBirth),
		ClassName:     student.ClassName,
		Division:      student.Division,
		Address:       student.Address,
		Gender:        string(student.Gender),
		Guardian:      student.Guardian,
		Phone:         student.Phone,
		State:         student.State,
		District:      student.District,
		Pincode:       student.Pincode,
		AcademicYear:  student.AcademicYear,
		AdmissionDate: formatDatePtr(student.AdmissionDate),
	}
}

func feesResponse(record *domain.FeesHistory) dto.FeesResponse {
	return dto.FeesResponse{
		ID:            record.ID,
		StudentID:     record.StudentID,
		FeeType:       record.FeeType,
		AcademicYear:  record.AcademicYear,
		Amount:        record.Amount,
		PaymentDate:   formatDate(record.PaymentDate),
		PaymentStatus: string(record.PaymentStatus),
		Remarks:       record.Remarks,
	}
}

func loanResponse(record *domain.LibraryHistory) dto.LoanResponse {
	resp := dto.LoanResponse{
		ID:         record.ID,
		StudentID:  record.StudentID,
		BookName:   record.BookName,
		BorrowDate: formatDate(record.BorrowDate),
		ReturnDate: formatDatePtr(record.ReturnDate),
		Status:     string(record.Status),
	}
	if record.BookCategory != nil {
		category := string(*record.BookCategory)
		resp.BookCategory = &category
	}
	return resp
}
