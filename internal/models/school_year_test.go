package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolYearLabel(t *testing.T) {
	label, err := SchoolYearLabel(2024, 2025)
	require.NoError(t, err)
	assert.Equal(t, "2024-2025", label)

	for _, span := range [][2]int{{2024, 2024}, {2024, 2023}, {2024, 2026}} {
		_, err := SchoolYearLabel(span[0], span[1])
		assert.ErrorIs(t, err, ErrValidation, "%v", span)
	}
}

func TestSchoolYear_NormalizeOverwritesLabel(t *testing.T) {
	y := SchoolYear{Label: "forged", Start: 2030, End: 2031}
	require.NoError(t, y.Normalize())
	assert.Equal(t, "2030-2031", y.Label)
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.September, 9)
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-09-09"`, string(out))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-09-09T14:30:00Z"`), &parsed))
	assert.True(t, parsed.Equal(d.Time))

	assert.ErrorIs(t, json.Unmarshal([]byte(`"09/09/2024"`), &parsed), ErrValidation)
}

func decPtr(v int64) *decimal.Decimal {
	x := decimal.NewFromInt(v)
	return &x
}

func TestPaymentRecord_Installments(t *testing.T) {
	var in [InstallmentSlots]Installment
	in[0].Amount = decPtr(100)
	in[11].Amount = decPtr(50)

	var p PaymentRecord
	p.SetInstallments(in)
	assert.Equal(t, decPtr(100), p.V1)
	assert.Equal(t, decPtr(50), p.V12)
	assert.Nil(t, p.V6)
	assert.Equal(t, in, p.Installments())
}

func TestPaymentRecord_Outstanding(t *testing.T) {
	assert.True(t, (&PaymentRecord{TotalPaid: decimal.NewFromInt(10)}).Outstanding().IsZero())
	assert.True(t, (&PaymentRecord{DiscountedFee: decPtr(100), TotalPaid: decimal.NewFromInt(150)}).Outstanding().IsZero())
	assert.True(t, (&PaymentRecord{DiscountedFee: decPtr(100), TotalPaid: decimal.NewFromInt(40)}).Outstanding().Equal(decimal.NewFromInt(60)))
}

func TestEnrollment_Validate(t *testing.T) {
	e := Enrollment{StudentID: 1}
	require.NoError(t, e.Validate())
	assert.Equal(t, EnrollmentStatusOther, e.Status)

	assert.ErrorIs(t, (&Enrollment{StudentID: 1, Status: "zz"}).Validate(), ErrValidation)
}

func TestFeeSchedule_Validate(t *testing.T) {
	assert.NoError(t, (&FeeSchedule{ClassID: 1, AnnualFee: decimal.NewFromInt(900000)}).Validate())
	assert.ErrorIs(t, (&FeeSchedule{}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&FeeSchedule{ClassID: 1, Tranche2: decimal.NewFromInt(-1)}).Validate(), ErrValidation)
}
