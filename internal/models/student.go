package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Sex constants
const (
	SexFemale = "F"
	SexMale   = "M"
	SexOther  = "O"
)

// MatriculeMaxLength is the width of the matricule column: 17 fixed
// characters plus up to 15 id digits.
const MatriculeMaxLength = 32

// MaxNameLength bounds each name, in characters
const MaxNameLength = 20

// MinBirthYear is the earliest accepted birth year; 0 means unknown
const MinBirthYear = 1970

// Student represents an enrolled pupil (élève)
type Student struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Matricule  *string   `gorm:"size:32;uniqueIndex" json:"matricule"`
	LastName   string    `gorm:"column:nom;size:20;not null" json:"nom"`
	FirstName1 string    `gorm:"column:prenom1;size:20;not null;index" json:"prenom1"`
	FirstName2 *string   `gorm:"column:prenom2;size:20" json:"prenom2"`
	FirstName3 *string   `gorm:"column:prenom3;size:20" json:"prenom3"`
	FullName   string    `gorm:"column:fullname;index" json:"fullname"`
	Sex        string    `gorm:"column:sexe;size:1;not null;default:O" json:"sexe"`
	BirthDay   int       `gorm:"column:jour_naissance;not null;default:0" json:"jour_naissance"`
	BirthMonth int       `gorm:"column:mois_naissance;not null;default:0" json:"mois_naissance"`
	BirthYear  int       `gorm:"column:annee_naissance;not null;default:0" json:"annee_naissance"`
	BirthDate  string    `gorm:"column:date_naissance;size:10" json:"date_naissance"`
	BirthPlace *string   `gorm:"column:lieu_naissance;size:100" json:"lieu_naissance"`
	Father     *string   `gorm:"column:pere;size:100" json:"pere"`
	Mother     *string   `gorm:"column:mere;size:100" json:"mere"`
	PhotoPath  *string   `gorm:"column:photo" json:"photo"`
	CreatedAt  time.Time `gorm:"column:dateajout" json:"dateajout"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Associations
	Enrollments []Enrollment `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "eleves"
}

// Validate checks the student fields; currentYear bounds the birth year
func (s *Student) Validate(currentYear int) error {
	s.LastName = strings.TrimSpace(s.LastName)
	s.FirstName1 = strings.TrimSpace(s.FirstName1)
	if s.LastName == "" || s.FirstName1 == "" {
		return invalid("le nom et le premier prénom sont requis")
	}
	for _, name := range append([]string{s.LastName}, s.firstNames()...) {
		if utf8.RuneCountInString(name) > MaxNameLength {
			return invalid("le nom et les prénoms ne doivent pas dépasser %d caractères", MaxNameLength)
		}
	}
	switch s.Sex {
	case "":
		s.Sex = SexOther
	case SexFemale, SexMale, SexOther:
	default:
		return invalid("sexe inconnu: %s", s.Sex)
	}
	if s.BirthDay < 0 || s.BirthDay > 31 {
		return invalid("jour de naissance invalide: %d", s.BirthDay)
	}
	if s.BirthMonth < 0 || s.BirthMonth > 12 {
		return invalid("mois de naissance invalide: %d", s.BirthMonth)
	}
	if s.BirthYear != 0 && (s.BirthYear < MinBirthYear || s.BirthYear > currentYear) {
		return invalid("année de naissance invalide: %d", s.BirthYear)
	}
	return nil
}

// firstNames returns the non-empty given names in order
func (s *Student) firstNames() []string {
	names := []string{s.FirstName1}
	for _, n := range []*string{s.FirstName2, s.FirstName3} {
		if n != nil && strings.TrimSpace(*n) != "" {
			names = append(names, strings.TrimSpace(*n))
		}
	}
	return names
}

// Derive recomputes the full name and the canonical birth-date string
func (s *Student) Derive() {
	s.FullName = strings.TrimSpace(strings.Join(s.firstNames(), " ") + " " + s.LastName)
	s.BirthDate = fmt.Sprintf("%02d/%02d/%04d", s.BirthDay, s.BirthMonth, s.BirthYear)
}

// GenerateMatricule builds the identifier from name letters, birth date, sex,
// the allocated primary key and the two-digit creation year.
func (s *Student) GenerateMatricule(id uint, creationYear int) string {
	var letters strings.Builder
	letters.WriteString(prefix(CleanName(s.LastName), 2))
	for _, n := range s.firstNames() {
		letters.WriteString(prefix(CleanName(n), 2))
	}

	year := fmt.Sprintf("%04d", s.BirthYear)
	birth := fmt.Sprintf("%02d%02d%s", s.BirthDay, s.BirthMonth, year[len(year)-2:])

	return fmt.Sprintf("%s%s%s%d%02d", letters.String(), birth, s.Sex, id, creationYear%100)
}

// HasMatricule reports whether a matricule was already assigned
func (s *Student) HasMatricule() bool {
	return s.Matricule != nil && *s.Matricule != ""
}

// CleanName strips accents and every non-letter, then upper-cases
func CleanName(text string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(text) {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// StudentResponse is the JSON response format for students
type StudentResponse struct {
	ID         uint      `json:"id"`
	Matricule  *string   `json:"matricule"`
	LastName   string    `json:"nom"`
	FirstName1 string    `json:"prenom1"`
	FirstName2 *string   `json:"prenom2"`
	FirstName3 *string   `json:"prenom3"`
	FullName   string    `json:"fullname"`
	Sex        string    `json:"sexe"`
	BirthDay   int       `json:"jour_naissance"`
	BirthMonth int       `json:"mois_naissance"`
	BirthYear  int       `json:"annee_naissance"`
	BirthDate  string    `json:"date_naissance"`
	BirthPlace *string   `json:"lieu_naissance"`
	Father     *string   `json:"pere"`
	Mother     *string   `json:"mere"`
	PhotoPath  *string   `json:"photo"`
	CreatedAt  time.Time `json:"dateajout"`
}

// ToResponse converts Student to StudentResponse
func (s *Student) ToResponse() StudentResponse {
	return StudentResponse{
		ID:         s.ID,
		Matricule:  s.Matricule,
		LastName:   s.LastName,
		FirstName1: s.FirstName1,
		FirstName2: s.FirstName2,
		FirstName3: s.FirstName3,
		FullName:   s.FullName,
		Sex:        s.Sex,
		BirthDay:   s.BirthDay,
		BirthMonth: s.BirthMonth,
		BirthYear:  s.BirthYear,
		BirthDate:  s.BirthDate,
		BirthPlace: s.BirthPlace,
		Father:     s.Father,
		Mother:     s.Mother,
		PhotoPath:  s.PhotoPath,
		CreatedAt:  s.CreatedAt,
	}
}
