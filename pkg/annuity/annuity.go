// Package annuity provides closed-form level-payment loan math shared by the
// screening (maximum loan) and repayment (desired loan) calculations.
package annuity

import (
	"math"

	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/constants"
)

// MonthlyRate converts an annual percentage rate (e.g. 3.0 for 3%) to a
// monthly periodic rate.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// PresentValue returns the principal that a level monthly payment stream fully
// amortizes over termMonths at the given monthly rate. For a zero rate it
// falls back to simple multiplication rather than dividing by zero. A
// non-positive payment or term yields no obtainable principal, which is an
// expected boundary state rather than an error.
func PresentValue(payment, monthlyRate float64, termMonths int) float64 {
	if payment <= 0 || termMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(termMonths)
	}
	return payment * (1 - math.Pow(1+monthlyRate, -float64(termMonths))) / monthlyRate
}

// MaxTermYears derives the longest permissible loan term in years for the
// oldest borrower: the loan must be repaid by the repayment age limit and is
// capped regardless of age. Never negative.
func MaxTermYears(oldestAge int) int {
	years := constants.RepaymentAgeLimit - oldestAge
	if years > constants.MaxLoanTermYears {
		years = constants.MaxLoanTermYears
	}
	if years < 0 {
		years = 0
	}
	return years
}
