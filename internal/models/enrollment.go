package models

import (
	"time"
)

// Enrollment status constants
const (
	EnrollmentStatusNew       = "Nouv"
	EnrollmentStatusAdmitted  = "adm"
	EnrollmentStatusRepeating = "red"
	EnrollmentStatusExternal  = "Cdt"
	EnrollmentStatusOther     = "Aut"
)

// Enrollment (affectation) links a student to a class within a school year
type Enrollment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SchoolYearID *uint     `gorm:"column:annee_aff;index;uniqueIndex:unique_affectation1;uniqueIndex:unique_affectation2" json:"annee_aff"`
	ClassID      *uint     `gorm:"column:classe_aff;index;uniqueIndex:unique_affectation1" json:"classe_aff"`
	StudentID    uint      `gorm:"column:eleve_aff;not null;uniqueIndex:unique_affectation1;uniqueIndex:unique_affectation2" json:"eleve_aff"`
	Status       string    `gorm:"column:etat_aff;size:5;default:Aut" json:"etat_aff"`
	EnrolledAt   time.Time `gorm:"column:date_aff;autoCreateTime" json:"date_aff"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Associations
	SchoolYear    *SchoolYear    `gorm:"foreignKey:SchoolYearID;constraint:OnDelete:SET NULL" json:"-"`
	Class         *Class         `gorm:"foreignKey:ClassID;constraint:OnDelete:SET NULL" json:"-"`
	Student       Student        `gorm:"foreignKey:StudentID" json:"-"`
	PaymentRecord *PaymentRecord `gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Enrollment
func (Enrollment) TableName() string {
	return "affectations"
}

// ValidEnrollmentStatus reports whether status is a known enrollment status
func ValidEnrollmentStatus(status string) bool {
	switch status {
	case EnrollmentStatusNew, EnrollmentStatusAdmitted, EnrollmentStatusRepeating,
		EnrollmentStatusExternal, EnrollmentStatusOther:
		return true
	}
	return false
}

// Validate checks the enrollment before persistence
func (e *Enrollment) Validate() error {
	if e.StudentID == 0 {
		return invalid("l'élève est requis")
	}
	if e.Status == "" {
		e.Status = EnrollmentStatusOther
	}
	if !ValidEnrollmentStatus(e.Status) {
		return invalid("état d'affectation inconnu: %s", e.Status)
	}
	return nil
}

// SameSlot reports whether e targets the given class and year
func (e *Enrollment) SameSlot(classID, yearID *uint) bool {
	return equalRef(e.ClassID, classID) && equalRef(e.SchoolYearID, yearID)
}

func equalRef(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// EnrollmentResponse is the JSON response format for enrollments
type EnrollmentResponse struct {
	ID           uint             `json:"id"`
	SchoolYearID *uint            `json:"annee_aff"`
	ClassID      *uint            `json:"classe_aff"`
	StudentID    uint             `json:"eleve_aff"`
	Status       string           `json:"etat_aff"`
	EnrolledAt   time.Time        `json:"date_aff"`
	Student      *StudentResponse `json:"eleve_details,omitempty"`
	ClassLabel   string           `json:"classe_nom,omitempty"`
	YearLabel    string           `json:"annee_nom,omitempty"`
	Level        *Level           `json:"niveau_classe,omitempty"`
	Track        *Track           `json:"option_classe,omitempty"`
}

// ToResponse converts Enrollment to EnrollmentResponse
func (e *Enrollment) ToResponse() EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:           e.ID,
		SchoolYearID: e.SchoolYearID,
		ClassID:      e.ClassID,
		StudentID:    e.StudentID,
		Status:       e.Status,
		EnrolledAt:   e.EnrolledAt,
	}
	if e.Student.ID != 0 {
		student := e.Student.ToResponse()
		resp.Student = &student
	}
	if e.Class != nil {
		resp.ClassLabel = e.Class.Label
		resp.Level = e.Class.Level
		resp.Track = e.Class.Track
	}
	if e.SchoolYear != nil {
		resp.YearLabel = e.SchoolYear.Label
	}
	return resp
}
