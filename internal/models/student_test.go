package models

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func strRef(s string) *string { return &s }

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Koné", "KONE"},
		{"Aïcha", "AICHA"},
		{"N'Guessan", "NGUESSAN"},
		{"Jean-Éric", "JEANERIC"},
		{"  ß ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanName(tt.in), tt.in)
	}
}

func TestStudent_GenerateMatricule(t *testing.T) {
	second, third := "Marie", ""
	tests := []struct {
		name    string
		student Student
		id      uint
		year    int
		want    string
	}{
		{
			name: "two first names",
			student: Student{
				LastName: "Koné", FirstName1: "Aïcha", FirstName2: &second, FirstName3: &third,
				BirthDay: 5, BirthMonth: 3, BirthYear: 2012, Sex: SexFemale,
			},
			id: 42, year: 2024,
			want: "KOAIMA050312F4224",
		},
		{
			name: "short name and unknown birth year",
			student: Student{
				LastName: "Y", FirstName1: "Ali", Sex: SexMale,
			},
			id: 7, year: 2031,
			want: "YAL000000M731",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.student.GenerateMatricule(tt.id, tt.year))
		})
	}
}

func TestStudent_GenerateMatricule_FitsColumn(t *testing.T) {
	second, third := "Marie", "Anne"
	s := Student{
		LastName: "Diallo", FirstName1: "Fatou", FirstName2: &second, FirstName3: &third,
		BirthDay: 12, BirthMonth: 3, BirthYear: 2015, Sex: SexFemale,
	}

	assert.Equal(t, "DIFAMAAN120315F123426", s.GenerateMatricule(1234, 2026))

	longest := s.GenerateMatricule(math.MaxUint32, 2026)
	assert.LessOrEqual(t, len(longest), MatriculeMaxLength, longest)

	parsed, err := schema.Parse(&Student{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	field := parsed.LookUpField("matricule")
	require.NotNil(t, field)
	assert.Equal(t, MatriculeMaxLength, field.Size)
}

func TestStudent_Derive(t *testing.T) {
	second := " Marie "
	s := Student{LastName: "Koné", FirstName1: "Aïcha", FirstName2: &second, BirthDay: 5, BirthMonth: 3, BirthYear: 2012}
	s.Derive()

	assert.Equal(t, "Aïcha Marie Koné", s.FullName)
	assert.Equal(t, "05/03/2012", s.BirthDate)
}

func TestStudent_Validate(t *testing.T) {
	s := Student{LastName: " Koné ", FirstName1: "Awa"}
	assert.NoError(t, s.Validate(2024))

	// 19 characters, 21 bytes
	accented := Student{LastName: "N'Guessan", FirstName1: "Élisabeth-Françoise"}
	assert.NoError(t, accented.Validate(2024))
	assert.Equal(t, "Koné", s.LastName)
	assert.Equal(t, SexOther, s.Sex)

	bad := []Student{
		{FirstName1: "Awa"},
		{LastName: "Koné", FirstName1: "Awa", Sex: "X"},
		{LastName: "Koné", FirstName1: "Anne-Élisabeth-Françoise"},
		{LastName: "Koné", FirstName1: "Awa", FirstName2: strRef("Marie-Élisabeth-Joséphine")},
		{LastName: "Koné", FirstName1: "Awa", BirthDay: 32},
		{LastName: "Koné", FirstName1: "Awa", BirthMonth: 13},
		{LastName: "Koné", FirstName1: "Awa", BirthYear: 1969},
		{LastName: "Koné", FirstName1: "Awa", BirthYear: 2025},
	}
	for _, b := range bad {
		assert.ErrorIs(t, b.Validate(2024), ErrValidation, "%+v", b)
	}
}
