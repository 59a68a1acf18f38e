// Package tuition derives the amounts a student owes and has paid from a fee
// schedule, a discount percentage and the recorded installments.
package tuition

import (
	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
)

// Precision is the number of decimal places kept on derived amounts
const Precision = 2

var hundred = decimal.NewFromInt(100)

// Derived holds the computed fields of a payment record.
// Fee fields are nil when no fee schedule matched.
type Derived struct {
	DiscountedFee      *decimal.Decimal
	DiscountedTranche1 *decimal.Decimal
	DiscountedTranche2 *decimal.Decimal
	DiscountedTranche3 *decimal.Decimal
	TotalPaid          decimal.Decimal
}

// FeeFound reports whether a fee schedule contributed to d
func (d Derived) FeeFound() bool {
	return d.DiscountedFee != nil
}

// ClampDiscount bounds a percentage to [0, 100]
func ClampDiscount(discount decimal.Decimal) decimal.Decimal {
	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(hundred) {
		return hundred
	}
	return discount
}

// Multiplier returns 1 - clamp(discount)/100
func Multiplier(discount decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(ClampDiscount(discount).Div(hundred))
}

// TotalPaid sums the installments, treating nil as zero
func TotalPaid(installments [models.InstallmentSlots]*decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range installments {
		if amount != nil {
			total = total.Add(*amount)
		}
	}
	return total.Round(Precision)
}

// Compute derives the discounted fee, the three discounted tranches and the
// total paid. fee may be nil; the total paid does not depend on it.
func Compute(fee *models.FeeSchedule, discount decimal.Decimal, installments [models.InstallmentSlots]*decimal.Decimal) Derived {
	out := Derived{TotalPaid: TotalPaid(installments)}
	if fee == nil {
		return out
	}

	m := Multiplier(discount)
	apply := func(amount decimal.Decimal) *decimal.Decimal {
		v := amount.Mul(m).Round(Precision)
		return &v
	}
	out.DiscountedFee = apply(fee.AnnualFee)
	out.DiscountedTranche1 = apply(fee.Tranche1)
	out.DiscountedTranche2 = apply(fee.Tranche2)
	out.DiscountedTranche3 = apply(fee.Tranche3)
	return out
}

// Apply recomputes the derived fields of record in place, discarding any
// value previously set on them.
func Apply(record *models.PaymentRecord, fee *models.FeeSchedule) Derived {
	d := Compute(fee, record.DiscountValue(), record.InstallmentAmounts())
	record.DiscountedFee = d.DiscountedFee
	record.DiscountedTranche1 = d.DiscountedTranche1
	record.DiscountedTranche2 = d.DiscountedTranche2
	record.DiscountedTranche3 = d.DiscountedTranche3
	record.TotalPaid = d.TotalPaid
	return d
}

// Outstanding returns max(0, fee - paid)
func Outstanding(fee, paid decimal.Decimal) decimal.Decimal {
	rest := fee.Sub(paid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}
