package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentFixture() (*EnrollmentService, *mockEnrollmentRepo) {
	repo := &mockEnrollmentRepo{}
	students := newMockStudentRepo()
	for id := uint(1); id <= 3; id++ {
		students.students[id] = &models.Student{ID: id}
	}
	return NewEnrollmentService(repo, students, mockClassRepo{}, mockYearRepo{}, nil), repo
}

func newEnrollmentFixtureWithRecords(records *mockPaymentRecordRepo) (*EnrollmentService, *mockEnrollmentRepo) {
	service, repo := newEnrollmentFixture()
	service.records = NewPaymentRecordService(records)
	return service, repo
}

func TestEnrollmentService_Enroll(t *testing.T) {
	service, repo := newEnrollmentFixture()
	ctx := context.Background()

	first, err := service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusOther, first.Status)

	// Same student, class and year
	_, err = service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3})
	assert.ErrorIs(t, err, ErrConflict)

	// Same student and year in another class
	_, err = service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 5, YearID: 3})
	assert.ErrorIs(t, err, ErrConflict)

	// Another year is fine
	_, err = service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 5, YearID: 4, Status: models.EnrollmentStatusRepeating})
	require.NoError(t, err)
	assert.Len(t, repo.rows, 2)
}

func TestEnrollmentService_Enroll_Validation(t *testing.T) {
	service, _ := newEnrollmentFixture()
	ctx := context.Background()

	_, err := service.Enroll(ctx, EnrollInput{StudentID: 1, YearID: 3})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3, Status: "bogus"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Enroll(ctx, EnrollInput{StudentID: 99, ClassID: 2, YearID: 3})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnrollmentService_Enroll_DuplicateIndex(t *testing.T) {
	service, repo := newEnrollmentFixture()
	repo.mockCreate = func(ctx context.Context, e *models.Enrollment) error {
		return repository.ErrDuplicate
	}

	_, err := service.Enroll(context.Background(), EnrollInput{StudentID: 1, ClassID: 2, YearID: 3})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEnrollmentService_Ensure_Idempotent(t *testing.T) {
	service, repo := newEnrollmentFixture()
	ctx := context.Background()

	first, created, err := service.Ensure(ctx, 1, 2, 3)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := service.Ensure(ctx, 1, 2, 3)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.rows, 1)

	_, _, err = service.Ensure(ctx, 1, 7, 3)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEnrollmentService_Update_ExcludesItself(t *testing.T) {
	service, _ := newEnrollmentFixture()
	ctx := context.Background()

	a, err := service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3})
	require.NoError(t, err)
	_, err = service.Enroll(ctx, EnrollInput{StudentID: 2, ClassID: 2, YearID: 3})
	require.NoError(t, err)

	// Moving a to another class in the same year only collides with itself
	moved, err := service.Update(ctx, a.ID, EnrollInput{StudentID: 1, ClassID: 6, YearID: 3, Status: models.EnrollmentStatusAdmitted})
	require.NoError(t, err)
	assert.Equal(t, uint(6), *moved.ClassID)
	assert.Equal(t, models.EnrollmentStatusAdmitted, moved.Status)

	// Re-targeting a onto student 2's year collides with the other row
	_, err = service.Update(ctx, a.ID, EnrollInput{StudentID: 2, ClassID: 6, YearID: 3})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEnrollmentService_Update_RecomputesPaymentRecordOnMove(t *testing.T) {
	records := &mockPaymentRecordRepo{
		enrollment: &models.Enrollment{ID: 1, ClassID: uintPtr(6), SchoolYearID: uintPtr(3)},
		fee:        feeSchedule(),
		records: map[uint]*models.PaymentRecord{
			9: {ID: 9, EnrollmentID: uintPtr(1), V1: dec("100000")},
		},
	}
	service, _ := newEnrollmentFixtureWithRecords(records)
	ctx := context.Background()

	a, err := service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3})
	require.NoError(t, err)

	_, err = service.Update(ctx, a.ID, EnrollInput{StudentID: 1, ClassID: 6, YearID: 3})
	require.NoError(t, err)

	require.NotNil(t, records.saved)
	assert.Equal(t, uint(9), records.saved.ID)
	require.NotNil(t, records.saved.DiscountedFee)
	assert.True(t, records.saved.DiscountedFee.Equal(decimal.NewFromInt(900000)), records.saved.DiscountedFee.String())
	assert.True(t, records.saved.TotalPaid.Equal(decimal.NewFromInt(100000)))
}

func TestEnrollmentService_Update_StatusOnlyKeepsPaymentRecord(t *testing.T) {
	records := &mockPaymentRecordRepo{
		enrollment: &models.Enrollment{ID: 1, ClassID: uintPtr(2), SchoolYearID: uintPtr(3)},
		fee:        feeSchedule(),
		records: map[uint]*models.PaymentRecord{
			9: {ID: 9, EnrollmentID: uintPtr(1)},
		},
	}
	service, _ := newEnrollmentFixtureWithRecords(records)
	ctx := context.Background()

	a, err := service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3})
	require.NoError(t, err)

	_, err = service.Update(ctx, a.ID, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3, Status: models.EnrollmentStatusRepeating})
	require.NoError(t, err)
	assert.Nil(t, records.saved)
}

func TestEnrollmentService_Update_MoveWithoutPaymentRecord(t *testing.T) {
	records := &mockPaymentRecordRepo{}
	service, _ := newEnrollmentFixtureWithRecords(records)
	ctx := context.Background()

	a, err := service.Enroll(ctx, EnrollInput{StudentID: 1, ClassID: 2, YearID: 3})
	require.NoError(t, err)

	moved, err := service.Update(ctx, a.ID, EnrollInput{StudentID: 1, ClassID: 6, YearID: 3})
	require.NoError(t, err)
	assert.Equal(t, uint(6), *moved.ClassID)
	assert.Nil(t, records.saved)
}
