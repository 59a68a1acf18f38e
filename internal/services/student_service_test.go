package services

import (
	"context"
	"testing"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStudentService_Create_AssignsMatricule(t *testing.T) {
	repo := newMockStudentRepo()
	repo.nextID = 42
	service := NewStudentService(repo)

	student := &models.Student{
		LastName:   "Koné",
		FirstName1: "Aïcha",
		FirstName2: strPtr("Marie"),
		Sex:        models.SexFemale,
		BirthDay:   5,
		BirthMonth: 3,
		BirthYear:  2012,
	}
	require.NoError(t, service.Create(context.Background(), student, 2024))

	require.NotNil(t, student.Matricule)
	assert.Equal(t, "KOAIMA050312F4224", *student.Matricule)
	assert.Equal(t, "Aïcha Marie Koné", student.FullName)
	assert.Equal(t, "05/03/2012", student.BirthDate)
}

func TestStudentService_Create_Validation(t *testing.T) {
	service := NewStudentService(newMockStudentRepo())

	tests := []struct {
		name    string
		student models.Student
	}{
		{"missing last name", models.Student{FirstName1: "Awa"}},
		{"bad month", models.Student{LastName: "Kone", FirstName1: "Awa", BirthMonth: 13}},
		{"future birth year", models.Student{LastName: "Kone", FirstName1: "Awa", BirthYear: 2031}},
		{"early birth year", models.Student{LastName: "Kone", FirstName1: "Awa", BirthYear: 1969}},
		{"unknown sex", models.Student{LastName: "Kone", FirstName1: "Awa", Sex: "X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.student
			assert.ErrorIs(t, service.Create(context.Background(), &s, 2024), ErrValidation)
		})
	}
}

func TestStudentService_Update_KeepsMatricule(t *testing.T) {
	repo := newMockStudentRepo()
	service := NewStudentService(repo)

	student := &models.Student{LastName: "Kone", FirstName1: "Awa", BirthDay: 1, BirthMonth: 1, BirthYear: 2010}
	require.NoError(t, service.Create(context.Background(), student, 2023))
	original := *student.Matricule

	input := &models.Student{
		Matricule:  strPtr("FORGED"),
		LastName:   "Traore",
		FirstName1: "Awa",
		BirthDay:   1,
		BirthMonth: 1,
		BirthYear:  2010,
	}
	updated, err := service.Update(context.Background(), student.ID, input, 2024)
	require.NoError(t, err)

	require.NotNil(t, updated.Matricule)
	assert.Equal(t, original, *updated.Matricule)
	assert.Equal(t, "Awa Traore", updated.FullName)
	assert.Equal(t, original, *repo.updated.Matricule)
}

func TestStudentService_Update_NotFound(t *testing.T) {
	service := NewStudentService(newMockStudentRepo())

	_, err := service.Update(context.Background(), 9, &models.Student{LastName: "A", FirstName1: "B"}, 2024)
	assert.ErrorIs(t, err, ErrNotFound)
}
