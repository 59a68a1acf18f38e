package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func uintPtr(v uint) *uint { return &v }

func feeSchedule() *models.FeeSchedule {
	return &models.FeeSchedule{
		ID:        1,
		ClassID:   2,
		AnnualFee: decimal.NewFromInt(900000),
		Tranche1:  decimal.NewFromInt(300000),
		Tranche2:  decimal.NewFromInt(300000),
		Tranche3:  decimal.NewFromInt(300000),
	}
}

func TestPaymentRecordService_Create_DerivesAmounts(t *testing.T) {
	repo := &mockPaymentRecordRepo{
		enrollment: &models.Enrollment{ID: 5, ClassID: uintPtr(2), SchoolYearID: uintPtr(3)},
		fee:        feeSchedule(),
	}
	service := NewPaymentRecordService(repo)

	record := &models.PaymentRecord{
		EnrollmentID:  uintPtr(5),
		Discount:      dec("10"),
		V1:            dec("100000"),
		V2:            dec("170000"),
		DiscountedFee: dec("1"),
		TotalPaid:     decimal.NewFromInt(999),
	}
	require.NoError(t, service.Create(context.Background(), record))

	require.NotNil(t, repo.saved)
	require.NotNil(t, repo.saved.DiscountedFee)
	assert.True(t, repo.saved.DiscountedFee.Equal(decimal.NewFromInt(810000)), repo.saved.DiscountedFee.String())
	assert.True(t, repo.saved.DiscountedTranche1.Equal(decimal.NewFromInt(270000)))
	assert.True(t, repo.saved.DiscountedTranche3.Equal(decimal.NewFromInt(270000)))
	assert.True(t, repo.saved.TotalPaid.Equal(decimal.NewFromInt(270000)))
	assert.True(t, repo.saved.Outstanding().Equal(decimal.NewFromInt(540000)))
	assert.Equal(t, models.RegistrationKindOther, repo.saved.RegistrationKind)
}

func TestPaymentRecordService_Create_WithoutFee(t *testing.T) {
	repo := &mockPaymentRecordRepo{
		enrollment: &models.Enrollment{ID: 5, ClassID: uintPtr(2), SchoolYearID: uintPtr(3)},
	}
	service := NewPaymentRecordService(repo)

	record := &models.PaymentRecord{EnrollmentID: uintPtr(5), V3: dec("25000"), DiscountedFee: dec("5")}
	require.NoError(t, service.Create(context.Background(), record))

	assert.Nil(t, repo.saved.DiscountedFee)
	assert.Nil(t, repo.saved.DiscountedTranche1)
	assert.True(t, repo.saved.TotalPaid.Equal(decimal.NewFromInt(25000)))
}

func TestPaymentRecordService_Create_Validation(t *testing.T) {
	repo := &mockPaymentRecordRepo{enrollment: &models.Enrollment{ID: 5}}
	service := NewPaymentRecordService(repo)

	tests := []struct {
		name   string
		record models.PaymentRecord
	}{
		{"missing enrollment", models.PaymentRecord{}},
		{"discount above 100", models.PaymentRecord{EnrollmentID: uintPtr(5), Discount: dec("150")}},
		{"negative discount", models.PaymentRecord{EnrollmentID: uintPtr(5), Discount: dec("-1")}},
		{"negative installment", models.PaymentRecord{EnrollmentID: uintPtr(5), V7: dec("-10")}},
		{"negative registration amount", models.PaymentRecord{EnrollmentID: uintPtr(5), RegistrationAmount: decimal.NewFromInt(-5)}},
		{"unknown registration kind", models.PaymentRecord{EnrollmentID: uintPtr(5), RegistrationKind: "X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.record
			assert.ErrorIs(t, service.Create(context.Background(), &r), ErrValidation)
		})
	}
	assert.Nil(t, repo.saved)
}

func TestPaymentRecordService_Update_Recomputes(t *testing.T) {
	repo := &mockPaymentRecordRepo{
		enrollment: &models.Enrollment{ID: 5, ClassID: uintPtr(2)},
		fee:        feeSchedule(),
		records: map[uint]*models.PaymentRecord{
			8: {ID: 8, EnrollmentID: uintPtr(5), V1: dec("100000"), TotalPaid: decimal.NewFromInt(100000)},
		},
	}
	service := NewPaymentRecordService(repo)

	updated, err := service.Update(context.Background(), 8, &models.PaymentRecord{
		Discount: dec("50"),
		V1:       dec("100000"),
		V2:       dec("50000"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(8), updated.ID)
	assert.True(t, updated.DiscountedFee.Equal(decimal.NewFromInt(450000)))
	assert.True(t, updated.TotalPaid.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, uint(5), *updated.EnrollmentID)

	_, err = service.Update(context.Background(), 99, &models.PaymentRecord{})
	assert.ErrorIs(t, err, ErrNotFound)
}
