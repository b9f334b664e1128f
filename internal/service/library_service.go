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

// LibraryService manages borrow/return records. Marking a loan returned
// without a return date is rejected; the return date can never precede the
// borrow date.
type LibraryService struct {
	loans      repository.LibraryHistoryRepository
	students   repository.StudentRepository
	dispatcher events.Dispatcher
}

// NewLibraryService builds the service.
func NewLibraryService(loans repository.LibraryHistoryRepository, students repository.StudentRepository, dispatcher events.Dispatcher) *LibraryService {
	return &LibraryService{loans: loans, students: students, dispatcher: dispatcher}
}

// LoanCreateInput carries fields for a new borrow record.
type LoanCreateInput struct {
	StudentID    int64
	BookName     string
	BookCategory *domain.BookCategory
	BorrowDate   time.Time
	ReturnDate   *time.Time
	Status       domain.LoanStatus
}

// LoanUpdateInput carries partial updates for an existing record.
type LoanUpdateInput struct {
	BookName     *string
	BookCategory *domain.BookCategory
	BorrowDate   *time.Time
	ReturnDate   *time.Time
	Status       *domain.LoanStatus
}

// Create records a borrow entry for an existing student.
func (s *LibraryService) Create(ctx context.Context, actor *domain.Account, input LoanCreateInput) (*domain.LibraryHistory, error) {
	bookName := strings.TrimSpace(input.BookName)
	if bookName == "" {
		return nil, apperrors.NewValidationError("book name required",
			map[string]any{"book_name": "required"})
	}
	status := input.Status
	if status == "" {
		status = domain.LoanStatusBorrowed
	}
	if !status.Valid() {
		return nil, loanStatusError()
	}
	if input.BookCategory != nil && !input.BookCategory.Valid() {
		return nil, bookCategoryError()
	}

	record := &domain.LibraryHistory{
		StudentID:    input.StudentID,
		BookName:     bookName,
		BookCategory: input.BookCategory,
		BorrowDate:   input.BorrowDate,
		ReturnDate:   input.ReturnDate,
		Status:       status,
	}
	if err := validateLoanDates(record); err != nil {
		return nil, err
	}

	if _, err := s.students.GetByID(ctx, input.StudentID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Student", nil)
		}
		return nil, err
	}

	if err := s.loans.Create(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, record)
	return record, nil
}

// GetByID resolves a loan record or reports NotFound.
func (s *LibraryService) GetByID(ctx context.Context, id int64) (*domain.LibraryHistory, error) {
	record, err := s.loans.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Library history", nil)
		}
		return nil, err
	}
	return record, nil
}

// ListByStudent returns all loan records for the student, newest first.
func (s *LibraryService) ListByStudent(ctx context.Context, studentID int64) ([]domain.LibraryHistory, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Student", nil)
		}
		return nil, err
	}
	return s.loans.ListByStudent(ctx, studentID)
}

// Update applies a partial update; the student reference never changes.
func (s *LibraryService) Update(ctx context.Context, actor *domain.Account, id int64, input LoanUpdateInput) (*domain.LibraryHistory, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.BookName != nil {
		bookName := strings.TrimSpace(*input.BookName)
		if bookName == "" {
			return nil, apperrors.NewValidationError("book name required",
				map[string]any{"book_name": "required"})
		}
		record.BookName = bookName
	}
	if input.BookCategory != nil {
		if !input.BookCategory.Valid() {
			return nil, bookCategoryError()
		}
		record.BookCategory = input.BookCategory
	}
	if input.BorrowDate != nil {
		record.BorrowDate = *input.BorrowDate
	}
	if input.ReturnDate != nil {
		record.ReturnDate = input.ReturnDate
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, loanStatusError()
		}
		record.Status = *input.Status
	}
	if err := validateLoanDates(record); err != nil {
		return nil, err
	}

	if err := s.loans.Update(ctx, record); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Library history", nil)
		}
		return nil, err
	}

	s.publish(ctx, actor, record)
	return record, nil
}

// Delete removes a loan record.
func (s *LibraryService) Delete(ctx context.Context, id int64) error {
	if err := s.loans.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Library history", nil)
		}
		return err
	}
	return nil
}

// validateLoanDates enforces the status/return_date coupling.
func validateLoanDates(record *domain.LibraryHistory) error {
	if record.Status == domain.LoanStatusReturned && record.ReturnDate == nil {
		return apperrors.NewValidationError("returned loan requires a return date",
			map[string]any{"return_date": "required when status is returned"})
	}
	if record.ReturnDate != nil && record.ReturnDate.Before(record.BorrowDate) {
		return apperrors.NewValidationError("return date precedes borrow date",
			map[string]any{"return_date": "must be on or after borrow_date"})
	}
	return nil
}

func (s *LibraryService) publish(ctx context.Context, actor *domain.Account, record *domain.LibraryHistory) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLoanUpdated,
		Timestamp: time.Now(),
		Payload: events.LoanUpdatedPayload{
			LoanID:    record.ID,
			StudentID: record.StudentID,
			BookName:  record.BookName,
			Status:    record.Status,
		},
	}
	if actor != nil {
		event.Actor = events.Actor{AccountID: actor.ID, Role: actor.Role}
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func loanStatusError() error {
	return apperrors.NewValidationError("invalid loan status",
		map[string]any{"status": "must be borrowed or returned"})
}

func bookCategoryError() error {
	return apperrors.NewValidationError("invalid book category",
		map[string]any{"book_category": "unknown category"})
}
