package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-admin-service/internal/domain"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

type libraryFixture struct {
	svc      *LibraryService
	repo     *fakeLibraryRepo
	students *fakeStudentRepo
	student  *domain.Student
}

func newLibraryFixture(t *testing.T) *libraryFixture {
	t.Helper()
	repo := newFakeLibraryRepo()
	students := newFakeStudentRepo()
	svc := NewLibraryService(repo, students, nil)

	student := &domain.Student{FullName: "Arjun Das", Gender: domain.GenderMale}
	require.NoError(t, students.Create(context.Background(), student))
	return &libraryFixture{svc: svc, repo: repo, students: students, student: student}
}

func TestCreateLoanDefaultsToBorrowed(t *testing.T) {
	fx := newLibraryFixture(t)

	record, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:  fx.student.ID,
		BookName:   "Swami and Friends",
		BorrowDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusBorrowed, record.Status)
	assert.Nil(t, record.ReturnDate)
}

func TestCreateLoanRequiresBookName(t *testing.T) {
	fx := newLibraryFixture(t)

	_, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:  fx.student.ID,
		BookName:   "  ",
		BorrowDate: time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "book_name")
}

func TestCreateReturnedLoanRequiresReturnDate(t *testing.T) {
	fx := newLibraryFixture(t)

	_, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:  fx.student.ID,
		BookName:   "Swami and Friends",
		BorrowDate: time.Now(),
		Status:     domain.LoanStatusReturned,
	})
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "return_date")
	assert.Empty(t, fx.repo.records)
}

func TestCreateLoanRejectsReturnBeforeBorrow(t *testing.T) {
	fx := newLibraryFixture(t)

	borrow := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	early := borrow.AddDate(0, 0, -1)
	_, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:  fx.student.ID,
		BookName:   "Swami and Friends",
		BorrowDate: borrow,
		ReturnDate: &early,
	})
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "return_date")
}

func TestCreateLoanRequiresExistingStudent(t *testing.T) {
	fx := newLibraryFixture(t)

	_, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:  9999,
		BookName:   "Swami and Friends",
		BorrowDate: time.Now(),
	})
	require.Error(t, err)
	assert.Equal(t, "Student not found", apperrors.ToDomainError(err).Message)
}

func TestCreateLoanRejectsUnknownCategory(t *testing.T) {
	fx := newLibraryFixture(t)

	category := domain.BookCategory("cookbook")
	_, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:    fx.student.ID,
		BookName:     "Swami and Friends",
		BookCategory: &category,
		BorrowDate:   time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "book_category")
}

func TestMarkLoanReturned(t *testing.T) {
	fx := newLibraryFixture(t)

	borrow := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	record, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:  fx.student.ID,
		BookName:   "Swami and Friends",
		BorrowDate: borrow,
	})
	require.NoError(t, err)

	// Flipping to returned without a date is rejected and nothing changes.
	returned := domain.LoanStatusReturned
	_, err = fx.svc.Update(context.Background(), nil, record.ID, LoanUpdateInput{Status: &returned})
	require.Error(t, err)
	stored, err := fx.svc.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusBorrowed, stored.Status)

	returnDate := borrow.AddDate(0, 0, 14)
	updated, err := fx.svc.Update(context.Background(), nil, record.ID, LoanUpdateInput{
		Status:     &returned,
		ReturnDate: &returnDate,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusReturned, updated.Status)
	require.NotNil(t, updated.ReturnDate)
	assert.True(t, updated.ReturnDate.Equal(returnDate))
}

func TestUpdateLoanRejectsUnknownStatus(t *testing.T) {
	fx := newLibraryFixture(t)

	record, err := fx.svc.Create(context.Background(), nil, LoanCreateInput{
		StudentID:  fx.student.ID,
		BookName:   "Swami and Friends",
		BorrowDate: time.Now(),
	})
	require.NoError(t, err)

	lost := domain.LoanStatus("lost")
	_, err = fx.svc.Update(context.Background(), nil, record.ID, LoanUpdateInput{Status: &lost})
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "status")
}

func TestGetLoanNotFound(t *testing.T) {
	fx := newLibraryFixture(t)

	_, err := fx.svc.GetByID(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, "Library history not found", apperrors.ToDomainError(err).Message)
}

func TestListLoansByStudentChecksStudentFirst(t *testing.T) {
	fx := newLibraryFixture(t)

	_, err := fx.svc.ListByStudent(context.Background(), 9999)
	require.Error(t, err)
	assert.Equal(t, "Student not found", apperrors.ToDomainError(err).Message)

	records, err := fx.svc.ListByStudent(context.Background(), fx.student.ID)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
