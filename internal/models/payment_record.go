package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentSlots is the number of partial payments a record can hold
const InstallmentSlots = 12

// Registration kind constants
const (
	RegistrationKindNew     = "Ins"
	RegistrationKindRenewal = "Reins"
	RegistrationKindOther   = "Aut"
)

// Installment is one partial payment (versement) and its date
type Installment struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *Date            `json:"date"`
}

// PaymentRecord (recouvrement) tracks tuition collection for one enrollment.
// DiscountedFee, DiscountedTranche1..3 and TotalPaid are derived on every save.
type PaymentRecord struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	EnrollmentID       *uint            `gorm:"column:affectation;uniqueIndex:unique_rec" json:"affectation"`
	RegistrationKind   string           `gorm:"column:statut_ar;size:5;default:Aut" json:"statut_ar"`
	RegistrationAmount decimal.Decimal  `gorm:"column:montant_statut_ar;type:numeric(14,2);not null;default:0" json:"montant_statut_ar"`
	Discount           *decimal.Decimal `gorm:"column:reduction;type:numeric(5,2);default:0" json:"reduction"`

	DiscountedFee      *decimal.Decimal `gorm:"column:frais_paiement;type:numeric(14,2)" json:"frais_paiement"`
	DiscountedTranche1 *decimal.Decimal `gorm:"column:tranche1_paiement;type:numeric(14,2)" json:"tranche1_paiement"`
	DiscountedTranche2 *decimal.Decimal `gorm:"column:tranche2_paiement;type:numeric(14,2)" json:"tranche2_paiement"`
	DiscountedTranche3 *decimal.Decimal `gorm:"column:tranche3_paiement;type:numeric(14,2)" json:"tranche3_paiement"`
	TotalPaid          decimal.Decimal  `gorm:"column:total_paye;type:numeric(14,2);not null;default:0" json:"total_paye"`

	GuardianName       *string `gorm:"column:tuteur_paiement;size:200" json:"tuteur_paiement"`
	GuardianContact    *string `gorm:"column:contact_tuteur_paiement;size:15" json:"contact_tuteur_paiement"`
	GuardianAddress    *string `gorm:"column:adresse_tuteur_paiement;size:300" json:"adresse_tuteur_paiement"`
	GuardianProfession *string `gorm:"column:profession_tuteur_paiement;size:100" json:"profession_tuteur_paiement"`

	V1  *decimal.Decimal `gorm:"column:v1;type:numeric(14,2);default:0" json:"v1"`
	D1  *Date            `gorm:"column:d1" json:"d1"`
	V2  *decimal.Decimal `gorm:"column:v2;type:numeric(14,2);default:0" json:"v2"`
	D2  *Date            `gorm:"column:d2" json:"d2"`
	V3  *decimal.Decimal `gorm:"column:v3;type:numeric(14,2);default:0" json:"v3"`
	D3  *Date            `gorm:"column:d3" json:"d3"`
	V4  *decimal.Decimal `gorm:"column:v4;type:numeric(14,2);default:0" json:"v4"`
	D4  *Date            `gorm:"column:d4" json:"d4"`
	V5  *decimal.Decimal `gorm:"column:v5;type:numeric(14,2);default:0" json:"v5"`
	D5  *Date            `gorm:"column:d5" json:"d5"`
	V6  *decimal.Decimal `gorm:"column:v6;type:numeric(14,2);default:0" json:"v6"`
	D6  *Date            `gorm:"column:d6" json:"d6"`
	V7  *decimal.Decimal `gorm:"column:v7;type:numeric(14,2);default:0" json:"v7"`
	D7  *Date            `gorm:"column:d7" json:"d7"`
	V8  *decimal.Decimal `gorm:"column:v8;type:numeric(14,2);default:0" json:"v8"`
	D8  *Date            `gorm:"column:d8" json:"d8"`
	V9  *decimal.Decimal `gorm:"column:v9;type:numeric(14,2);default:0" json:"v9"`
	D9  *Date            `gorm:"column:d9" json:"d9"`
	V10 *decimal.Decimal `gorm:"column:v10;type:numeric(14,2);default:0" json:"v10"`
	D10 *Date            `gorm:"column:d10" json:"d10"`
	V11 *decimal.Decimal `gorm:"column:v11;type:numeric(14,2);default:0" json:"v11"`
	D11 *Date            `gorm:"column:d11" json:"d11"`
	V12 *decimal.Decimal `gorm:"column:v12;type:numeric(14,2);default:0" json:"v12"`
	D12 *Date            `gorm:"column:d12" json:"d12"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Enrollment *Enrollment `gorm:"foreignKey:EnrollmentID" json:"-"`
}

// TableName specifies the table name for PaymentRecord
func (PaymentRecord) TableName() string {
	return "recouvrements"
}

func (p *PaymentRecord) slots() [InstallmentSlots]struct {
	amount **decimal.Decimal
	date   **Date
} {
	return [InstallmentSlots]struct {
		amount **decimal.Decimal
		date   **Date
	}{
		{&p.V1, &p.D1}, {&p.V2, &p.D2}, {&p.V3, &p.D3}, {&p.V4, &p.D4},
		{&p.V5, &p.D5}, {&p.V6, &p.D6}, {&p.V7, &p.D7}, {&p.V8, &p.D8},
		{&p.V9, &p.D9}, {&p.V10, &p.D10}, {&p.V11, &p.D11}, {&p.V12, &p.D12},
	}
}

// Installments returns the twelve installment slots in order
func (p *PaymentRecord) Installments() [InstallmentSlots]Installment {
	var out [InstallmentSlots]Installment
	for i, s := range p.slots() {
		out[i] = Installment{Amount: *s.amount, Date: *s.date}
	}
	return out
}

// SetInstallments overwrites the twelve installment slots
func (p *PaymentRecord) SetInstallments(in [InstallmentSlots]Installment) {
	for i, s := range p.slots() {
		*s.amount = in[i].Amount
		*s.date = in[i].Date
	}
}

// InstallmentAmounts returns the twelve amounts, nil where absent
func (p *PaymentRecord) InstallmentAmounts() [InstallmentSlots]*decimal.Decimal {
	var out [InstallmentSlots]*decimal.Decimal
	for i, in := range p.Installments() {
		out[i] = in.Amount
	}
	return out
}

// DiscountValue returns the discount percentage, zero when unset
func (p *PaymentRecord) DiscountValue() decimal.Decimal {
	if p.Discount == nil {
		return decimal.Zero
	}
	return *p.Discount
}

// Outstanding returns max(0, discounted fee - total paid), zero without a fee
func (p *PaymentRecord) Outstanding() decimal.Decimal {
	if p.DiscountedFee == nil {
		return decimal.Zero
	}
	rest := p.DiscountedFee.Sub(p.TotalPaid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// Validate rejects out-of-range discounts and negative amounts
func (p *PaymentRecord) Validate() error {
	if p.EnrollmentID == nil || *p.EnrollmentID == 0 {
		return invalid("l'affectation est requise")
	}
	switch p.RegistrationKind {
	case "":
		p.RegistrationKind = RegistrationKindOther
	case RegistrationKindNew, RegistrationKindRenewal, RegistrationKindOther:
	default:
		return invalid("statut inconnu: %s", p.RegistrationKind)
	}
	if p.RegistrationAmount.IsNegative() {
		return invalid("le montant du statut ne peut pas être négatif")
	}
	if d := p.DiscountValue(); d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return invalid("la réduction doit être comprise entre 0 et 100")
	}
	for i, amount := range p.InstallmentAmounts() {
		if amount != nil && amount.IsNegative() {
			return invalid("le versement %d ne peut pas être négatif", i+1)
		}
	}
	return nil
}

// PaymentRecordResponse is the JSON response format for payment records
type PaymentRecordResponse struct {
	ID                 uint                          `json:"id"`
	EnrollmentID       *uint                         `json:"affectation"`
	RegistrationKind   string                        `json:"statut_ar"`
	RegistrationAmount decimal.Decimal               `json:"montant_statut_ar"`
	Discount           decimal.Decimal               `json:"reduction"`
	DiscountedFee      *decimal.Decimal              `json:"frais_paiement"`
	DiscountedTranche1 *decimal.Decimal              `json:"tranche1_paiement"`
	DiscountedTranche2 *decimal.Decimal              `json:"tranche2_paiement"`
	DiscountedTranche3 *decimal.Decimal              `json:"tranche3_paiement"`
	TotalPaid          decimal.Decimal               `json:"total_paye"`
	Outstanding        decimal.Decimal               `json:"reste"`
	GuardianName       *string                       `json:"tuteur_paiement"`
	GuardianContact    *string                       `json:"contact_tuteur_paiement"`
	GuardianAddress    *string                       `json:"adresse_tuteur_paiement"`
	GuardianProfession *string                       `json:"profession_tuteur_paiement"`
	Installments       [InstallmentSlots]Installment `json:"versements"`
	StudentName        string                        `json:"info_eleve,omitempty"`
	Matricule          string                        `json:"info_matricule,omitempty"`
	ClassLabel         string                        `json:"info_classe,omitempty"`
	YearLabel          string                        `json:"info_annee,omitempty"`
	CreatedAt          time.Time                     `json:"created_at"`
	UpdatedAt          time.Time                     `json:"updated_at"`
}

// ToResponse converts PaymentRecord to PaymentRecordResponse
func (p *PaymentRecord) ToResponse() PaymentRecordResponse {
	resp := PaymentRecordResponse{
		ID:                 p.ID,
		EnrollmentID:       p.EnrollmentID,
		RegistrationKind:   p.RegistrationKind,
		RegistrationAmount: p.RegistrationAmount,
		Discount:           p.DiscountValue(),
		DiscountedFee:      p.DiscountedFee,
		DiscountedTranche1: p.DiscountedTranche1,
		DiscountedTranche2: p.DiscountedTranche2,
		DiscountedTranche3: p.DiscountedTranche3,
		TotalPaid:          p.TotalPaid,
		Outstanding:        p.Outstanding(),
		GuardianName:       p.GuardianName,
		GuardianContact:    p.GuardianContact,
		GuardianAddress:    p.GuardianAddress,
		GuardianProfession: p.GuardianProfession,
		Installments:       p.Installments(),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	if e := p.Enrollment; e != nil {
		if e.Student.ID != 0 {
			resp.StudentName = e.Student.FullName
			if e.Student.Matricule != nil {
				resp.Matricule = *e.Student.Matricule
			}
		}
		if e.Class != nil {
			resp.ClassLabel = e.Class.Label
		}
		if e.SchoolYear != nil {
			resp.YearLabel = e.SchoolYear.Label
		}
	}

	return resp
}
