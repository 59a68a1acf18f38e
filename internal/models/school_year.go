package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrValidation marks input rejected before persistence
var ErrValidation = errors.New("données invalides")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// SchoolYear represents a school year such as 2024-2025
type SchoolYear struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"column:annee_scolaire;size:9;not null;index" json:"annee_scolaire"`
	Start     int       `gorm:"column:debut;not null" json:"debut"`
	End       int       `gorm:"column:fin;not null" json:"fin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for SchoolYear
func (SchoolYear) TableName() string {
	return "annees"
}

// SchoolYearLabel builds the "{start}-{end}" identifier after checking the span
func SchoolYearLabel(start, end int) (string, error) {
	if end <= start {
		return "", invalid("l'année de fin doit être supérieure à l'année de début")
	}
	if end-start != 1 {
		return "", invalid("l'écart entre le début et la fin doit être de 1 an (ex: 2023-2024)")
	}
	return fmt.Sprintf("%d-%d", start, end), nil
}

// Normalize validates the span and derives the label
func (y *SchoolYear) Normalize() error {
	label, err := SchoolYearLabel(y.Start, y.End)
	if err != nil {
		return err
	}
	y.Label = label
	return nil
}

// BeforeSave keeps the label in sync with start/end on every write
func (y *SchoolYear) BeforeSave(tx *gorm.DB) error {
	return y.Normalize()
}

func (y *SchoolYear) String() string {
	return y.Label
}
