package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "annee_aff", "classe_aff", "eleve_aff", "etat_aff"})
}

func idRows(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id)
}

// An enrollment without a school year is priced from the fee row of its
// class that has no year either.
func TestPaymentRecordRepository_SaveComputed_NullYearUsesYearlessFee(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewPaymentRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "affectations"`)).
		WillReturnRows(enrollmentRows().AddRow(5, nil, 3, 11, "Aut"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "classes"`)).WillReturnRows(idRows(3))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "eleves"`)).WillReturnRows(idRows(11))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "frais_scolarite"`)).WillReturnRows(
		feeRows().AddRow(7, nil, 3, "600000", "200000", "200000", "200000"),
	)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "recouvrements"`)).WillReturnRows(idRows(21))
	mock.ExpectCommit()

	var gotFee *models.FeeSchedule
	record := &models.PaymentRecord{EnrollmentID: uintRef(5)}
	err := repo.SaveComputed(context.Background(), record, func(r *models.PaymentRecord, e *models.Enrollment, fee *models.FeeSchedule) error {
		assert.Nil(t, e.SchoolYearID)
		gotFee = fee
		total := decimal.NewFromInt(600000)
		r.DiscountedFee = &total
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.NotNil(t, gotFee)
	assert.Equal(t, uint(7), gotFee.ID)
	assert.Equal(t, uint(21), record.ID)
	require.NotNil(t, record.Enrollment)
	assert.Equal(t, uint(5), record.Enrollment.ID)

	assert.Contains(t, log.find(`FROM "frais_scolarite"`), "WHERE classe_fs = 3 AND annee_fs IS NULL")
	assert.Empty(t, log.find(`FROM "annees"`))
	assert.NotEmpty(t, log.find(`INSERT INTO "recouvrements"`))
}

func TestPaymentRecordRepository_SaveComputed_WithoutClassSkipsFee(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewPaymentRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "affectations"`)).
		WillReturnRows(enrollmentRows().AddRow(5, 2, nil, 11, "Aut"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "annees"`)).WillReturnRows(idRows(2))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "eleves"`)).WillReturnRows(idRows(11))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "recouvrements"`)).WillReturnRows(idRows(22))
	mock.ExpectCommit()

	called := false
	record := &models.PaymentRecord{EnrollmentID: uintRef(5)}
	err := repo.SaveComputed(context.Background(), record, func(r *models.PaymentRecord, e *models.Enrollment, fee *models.FeeSchedule) error {
		called = true
		assert.Nil(t, fee)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.True(t, called)
	assert.Empty(t, log.find(`FROM "frais_scolarite"`))
}

func TestPaymentRecordRepository_SaveComputed_MissingEnrollment(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewPaymentRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "affectations"`)).WillReturnRows(enrollmentRows())
	mock.ExpectRollback()

	record := &models.PaymentRecord{EnrollmentID: uintRef(404)}
	err := repo.SaveComputed(context.Background(), record, func(*models.PaymentRecord, *models.Enrollment, *models.FeeSchedule) error {
		t.Fatal("compute must not run without an enrollment")
		return nil
	})
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
