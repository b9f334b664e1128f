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

// FeesService manages fee payment history. Every write resolves the student
// first; a missing student fails before anything persists.
type FeesService struct {
	fees       repository.FeesHistoryRepository
	students   repository.StudentRepository
	dispatcher events.Dispatcher
}

// NewFeesService builds the service.
func NewFeesService(fees repository.FeesHistoryRepository, students repository.StudentRepository, dispatcher events.Dispatcher) *FeesService {
	return &FeesService{fees: fees, students: students, dispatcher: dispatcher}
}

// FeesCreateInput carries fields for a new fee record.
type FeesCreateInput struct {
	StudentID     int64
	FeeType       string
	AcademicYear  *string
	Amount        float64
	PaymentDate   time.Time
	PaymentStatus domain.PaymentStatus
	Remarks       *string
}

// FeesUpdateInput carries partial updates for an existing fee record.
type FeesUpdateInput struct {
	FeeType       *string
	AcademicYear  *string
	Amount        *float64
	PaymentDate   *time.Time
	PaymentStatus *domain.PaymentStatus
	Remarks       *string
}

// Create records a fee payment for an existing student. Amount must be
// strictly positive; payment status defaults to pending.
func (s *FeesService) Create(ctx context.Context, actor *domain.Account, input FeesCreateInput) (*domain.FeesHistory, error) {
	if input.Amount <= 0 {
		return nil, amountError()
	}
	feeType := strings.TrimSpace(input.FeeType)
	if feeType == "" {
		return nil, apperrors.NewValidationError("fee type required",
			map[string]any{"fee_type": "required"})
	}
	status := input.PaymentStatus
	if status == "" {
		status = domain.PaymentStatusPending
	}
	if !status.Valid() {
		return nil, statusError()
	}

	if _, err := s.students.GetByID(ctx, input.StudentID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Student", nil)
		}
		return nil, err
	}

	record := &domain.FeesHistory{
		StudentID:     input.StudentID,
		FeeType:       feeType,
		AcademicYear:  input.AcademicYear,
		Amount:        input.Amount,
		PaymentDate:   input.PaymentDate,
		PaymentStatus: status,
		Remarks:       input.Remarks,
	}
	if err := s.fees.Create(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, record)
	return record, nil
}

// GetByID resolves a fee record or reports NotFound.
func (s *FeesService) GetByID(ctx context.Context, id int64) (*domain.FeesHistory, error) {
	record, err := s.fees.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Fees history", nil)
		}
		return nil, err
	}
	return record, nil
}

// ListByStudent returns all fee records for the student, oldest last.
func (s *FeesService) ListByStudent(ctx context.Context, studentID int64) ([]domain.FeesHistory, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Student", nil)
		}
		return nil, err
	}
	return s.fees.ListByStudent(ctx, studentID)
}

// Update applies a partial update; the student reference never changes.
func (s *FeesService) Update(ctx context.Context, id int64, input FeesUpdateInput) (*domain.FeesHistory, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, amountError()
		}
		record.Amount = *input.Amount
	}
	if input.FeeType != nil {
		feeType := strings.TrimSpace(*input.FeeType)
		if feeType == "" {
			return nil, apperrors.NewValidationError("fee type required",
				map[string]any{"fee_type": "required"})
		}
		record.FeeType = feeType
	}
	if input.AcademicYear != nil {
		record.AcademicYear = input.AcademicYear
	}
	if input.PaymentDate != nil {
		record.PaymentDate = *input.PaymentDate
	}
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.Valid() {
			return nil, statusError()
		}
		record.PaymentStatus = *input.PaymentStatus
	}
	if input.Remarks != nil {
		record.Remarks = input.Remarks
	}

	if err := s.fees.Update(ctx, record); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Fees history", nil)
		}
		return nil, err
	}
	return record, nil
}

// Delete removes a fee record.
func (s *FeesService) Delete(ctx context.Context, id int64) error {
	if err := s.fees.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Fees history", nil)
		}
		return err
	}
	return nil
}

func (s *FeesService) publish(ctx context.Context, actor *domain.Account, record *domain.FeesHistory) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventFeeRecorded,
		Timestamp: time.Now(),
		Payload: events.FeeRecordedPayload{
			FeeID:         record.ID,
			StudentID:     record.StudentID,
			FeeType:       record.FeeType,
			Amount:        record.Amount,
			PaymentStatus: record.PaymentStatus,
		},
	}
	if actor != nil {
		event.Actor = events.Actor{AccountID: actor.ID, Role: actor.Role}
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func amountError() error {
	return apperrors.NewValidationError("amount must be greater than zero",
		map[string]any{"amount": "must be greater than zero"})
}

func statusError() error {
	return apperrors.NewValidationError("invalid payment status",
		map[string]any{"payment_status": "must be paid, pending or partial"})
}
