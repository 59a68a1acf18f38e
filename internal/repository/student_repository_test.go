package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRepository_Delete_Cascades(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recouvrements"`)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "affectations"`)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "eleves"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())

	records := log.find(`DELETE FROM "recouvrements"`)
	assert.Contains(t, records, "affectation IN (SELECT")
	assert.Contains(t, records, `FROM "affectations" WHERE eleve_aff = 5)`)
	assert.Contains(t, log.find(`DELETE FROM "affectations"`), "WHERE eleve_aff = 5")
	assert.Contains(t, log.find(`DELETE FROM "eleves"`), `"eleves"."id" = 5`)
}

func TestStudentRepository_Delete_NotFoundRollsBack(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recouvrements"`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "affectations"`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "eleves"`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_CreateWithMatricule(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "eleves"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "eleves" SET "matricule"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	student := &models.Student{LastName: "Koné", FirstName1: "Awa", Sex: "F"}
	var generatedFor uint
	err := repo.CreateWithMatricule(context.Background(), student, func(id uint) string {
		generatedFor = id
		return "KOAW010115F4225"
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, uint(42), generatedFor)
	assert.Equal(t, uint(42), student.ID)
	require.NotNil(t, student.Matricule)
	assert.Equal(t, "KOAW010115F4225", *student.Matricule)

	update := log.find(`UPDATE "eleves"`)
	assert.Contains(t, update, `"matricule"='KOAW010115F4225'`)
	assert.Contains(t, update, "= 42")
}

func TestStudentRepository_CreateWithMatricule_Duplicate(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "eleves"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "eleves" SET "matricule"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_eleves_matricule"})
	mock.ExpectRollback()

	student := &models.Student{LastName: "Koné", FirstName1: "Awa", Sex: "F"}
	err := repo.CreateWithMatricule(context.Background(), student, func(id uint) string {
		return "KOAW010115F4325"
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Contains(t, err.Error(), "idx_eleves_matricule")
	assert.Nil(t, student.Matricule)
	require.NoError(t, mock.ExpectationsWereMet())
}
