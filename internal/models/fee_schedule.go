package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeSchedule holds the annual fee of a class for a school year and its three tranches
type FeeSchedule struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	SchoolYearID *uint           `gorm:"column:annee_fs;uniqueIndex:idx_frais_annee_classe" json:"annee_fs"`
	ClassID      uint            `gorm:"column:classe_fs;not null;uniqueIndex:idx_frais_annee_classe" json:"classe_fs"`
	AnnualFee    decimal.Decimal `gorm:"column:frais_annuel;type:numeric(14,2);not null;default:0" json:"frais_annuel"`
	Tranche1     decimal.Decimal `gorm:"column:t1_fs;type:numeric(14,2);not null;default:0" json:"t1_fs"`
	Tranche2     decimal.Decimal `gorm:"column:t2_fs;type:numeric(14,2);not null;default:0" json:"t2_fs"`
	Tranche3     decimal.Decimal `gorm:"column:t3_fs;type:numeric(14,2);not null;default:0" json:"t3_fs"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Associations
	SchoolYear *SchoolYear `gorm:"foreignKey:SchoolYearID;constraint:OnDelete:SET NULL" json:"-"`
	Class      Class       `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for FeeSchedule
func (FeeSchedule) TableName() string {
	return "frais_scolarite"
}

// Validate checks that every amount is non-negative
func (f *FeeSchedule) Validate() error {
	if f.ClassID == 0 {
		return invalid("la classe est requise")
	}
	amounts := map[string]decimal.Decimal{
		"frais_annuel": f.AnnualFee,
		"t1_fs":        f.Tranche1,
		"t2_fs":        f.Tranche2,
		"t3_fs":        f.Tranche3,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			return invalid("%s ne peut pas être négatif", field)
		}
	}
	return nil
}

// FeeScheduleResponse is the JSON response format for fee schedules
type FeeScheduleResponse struct {
	ID           uint            `json:"id"`
	SchoolYearID *uint           `json:"annee_fs"`
	ClassID      uint            `json:"classe_fs"`
	AnnualFee    decimal.Decimal `json:"frais_annuel"`
	Tranche1     decimal.Decimal `json:"t1_fs"`
	Tranche2     decimal.Decimal `json:"t2_fs"`
	Tranche3     decimal.Decimal `json:"t3_fs"`
	ClassLabel   string          `json:"classe_libelle,omitempty"`
	YearLabel    string          `json:"annee_libelle,omitempty"`
}

// ToResponse converts FeeSchedule to FeeScheduleResponse
func (f *FeeSchedule) ToResponse() FeeScheduleResponse {
	resp := FeeScheduleResponse{
		ID:           f.ID,
		SchoolYearID: f.SchoolYearID,
		ClassID:      f.ClassID,
		AnnualFee:    f.AnnualFee,
		Tranche1:     f.Tranche1,
		Tranche2:     f.Tranche2,
		Tranche3:     f.Tranche3,
		ClassLabel:   f.Class.Label,
	}
	if f.SchoolYear != nil {
		resp.YearLabel = f.SchoolYear.Label
	}
	return resp
}
