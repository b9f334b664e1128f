package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-admin-service/internal/domain"
	"github.com/spec-kit/school-admin-service/internal/events"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

func TestCreateStudentDefaultsAndTrims(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), nil)

	student, err := svc.Create(context.Background(), StudentInput{FullName: "  Meera Pillai  "})
	require.NoError(t, err)
	assert.Equal(t, "Meera Pillai", student.FullName)
	assert.Equal(t, domain.GenderMale, student.Gender)
	assert.NotZero(t, student.ID)
}

func TestCreateStudentRequiresName(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), nil)

	_, err := svc.Create(context.Background(), StudentInput{FullName: "   "})
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "full_name")
}

func TestGetStudentNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), nil)

	_, err := svc.GetByID(context.Background(), 404)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Student not found", domainErr.Message)
}

func TestUpdateStudentIsPartial(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, nil)

	student, err := svc.Create(context.Background(), StudentInput{
		FullName:  "Meera Pillai",
		ClassName: strPtr("5"),
		Gender:    domain.GenderFemale,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), student.ID, StudentInput{
		Division: strPtr("B"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Meera Pillai", updated.FullName)
	assert.Equal(t, "5", *updated.ClassName)
	assert.Equal(t, "B", *updated.Division)
	assert.Equal(t, domain.GenderFemale, updated.Gender)
}

func TestDeleteStudentCascadesHistory(t *testing.T) {
	students := newFakeStudentRepo()
	feesRepo := newFakeFeesRepo()
	libraryRepo := newFakeLibraryRepo()
	students.onDelete = func(studentID int64) {
		feesRepo.deleteByStudent(studentID)
		libraryRepo.deleteByStudent(studentID)
	}

	dispatcher := &recordingDispatcher{}
	studentSvc := NewStudentService(students, dispatcher)
	feesSvc := NewFeesService(feesRepo, students, nil)
	librarySvc := NewLibraryService(libraryRepo, students, nil)

	actor := &domain.Account{ID: 3, Role: domain.RoleAdmin}
	student, err := studentSvc.Create(context.Background(), StudentInput{FullName: "Meera Pillai"})
	require.NoError(t, err)

	_, err = feesSvc.Create(context.Background(), actor, FeesCreateInput{
		StudentID:   student.ID,
		FeeType:     "tuition",
		Amount:      1500,
		PaymentDate: time.Now(),
	})
	require.NoError(t, err)
	_, err = librarySvc.Create(context.Background(), actor, LoanCreateInput{
		StudentID:  student.ID,
		BookName:   "The Blue Umbrella",
		BorrowDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, studentSvc.Delete(context.Background(), actor, student.ID))

	assert.Empty(t, feesRepo.records, "fee history rows cascade with the student")
	assert.Empty(t, libraryRepo.records, "loan history rows cascade with the student")

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventStudentDeleted, published[0].Type)
	assert.Equal(t, int64(3), published[0].Actor.AccountID)

	_, err = studentSvc.GetByID(context.Background(), student.ID)
	assert.Error(t, err)
}
