package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/school-admin-service/internal/domain"
	"github.com/spec-kit/school-admin-service/internal/events"
	"github.com/spec-kit/school-admin-service/internal/repository"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

// StudentService manages student records, the aggregate root for library and
// fees history.
type StudentService struct {
	students   repository.StudentRepository
	dispatcher events.Dispatcher
}

// NewStudentService builds the service.
func NewStudentService(students repository.StudentRepository, dispatcher events.Dispatcher) *StudentService {
	return &StudentService{students: students, dispatcher: dispatcher}
}

// StudentInput carries student fields for create and update.
type StudentInput struct {
	FullName      string
	DateOfBirth   *time.Time
	ClassName     *string
	Division      *string
	Address       *string
	Gender        domain.Gender
	Guardian      *string
	Phone         *string
	State         *string
	District      *string
	Pincode       *string
	AcademicYear  *string
	AdmissionDate *time.Time
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, input StudentInput) (*domain.Student, error) {
	name := strings.TrimSpace(input.FullName)
	if name == "" {
		return nil, apperrors.NewValidationError("full name required",
			map[string]any{"full_name": "required"})
	}
	gender := input.Gender
	if gender == "" {
		gender = domain.GenderMale
	}

	student := &domain.Student{
		FullName:      name,
		DateOfBirth:   input.DateOfBirth,
		ClassName:     input.ClassName,
		Division:      input.Division,
		Address:       input.Address,
		Gender:        gender,
		Guardian:      input.Guardian,
		Phone:         input.Phone,
		State:         input.State,
		District:      input.District,
		Pincode:       input.Pincode,
		AcademicYear:  input.AcademicYear,
		AdmissionDate: input.AdmissionDate,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetByID resolves a student or reports NotFound.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Student", nil)
		}
		return nil, err
	}
	return student, nil
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

// Update applies a partial update to a student record.
func (s *StudentService) Update(ctx context.Context, id int64, input StudentInput) (*domain.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.FullName); name != "" {
		student.FullName = name
	}
	if input.DateOfBirth != nil {
		student.DateOfBirth = input.DateOfBirth
	}
	if input.ClassName != nil {
		student.ClassName = input.ClassName
	}
	if input.Division != nil {
		student.Division = input.Division
	}
	if input.Address != nil {
		student.Address = input.Address
	}
	if input.Gender != "" {
		student.Gender = input.Gender
	}
	if input.Guardian != nil {
		student.Guardian = input.Guardian
	}
	if input.Phone != nil {
		student.Phone = input.Phone
	}
	if input.State != nil {
		student.State = input.State
	}
	if input.District != nil {
		student.District = input.District
	}
	if input.Pincode != nil {
		student.Pincode = input.Pincode
	}
	if input.AcademicYear != nil {
		student.AcademicYear = input.AcademicYear
	}
	if input.AdmissionDate != nil {
		student.AdmissionDate = input.AdmissionDate
	}

	if err := s.students.Update(ctx, student); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Student", nil)
		}
		return nil, err
	}
	return student, nil
}

// Delete removes a student; library and fees history rows cascade with it.
func (s *StudentService) Delete(ctx context.Context, actor *domain.Account, id int64) error {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Student", nil)
		}
		return err
	}

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStudentDeleted,
			Timestamp: time.Now(),
			Payload: events.StudentDeletedPayload{
				StudentID: student.ID,
				FullName:  student.FullName,
			},
		}
		if actor != nil {
			event.Actor = events.Actor{AccountID: actor.ID, Role: actor.Role}
		}
		_ = s.dispatcher.Publish(ctx, event)
	}
	return nil
}
