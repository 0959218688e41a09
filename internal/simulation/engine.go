package simulation

import (
	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/config"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/annuity"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/constants"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/mathutil"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/pricing"
	"go.uber.org/zap"
)

// Calculate runs the affordability simulation for one household against the
// given rate/pricing configuration. The calculation is pure and synchronous;
// identical input and config always produce an identical result. The only
// error condition is a non-finite numeric input field; infeasible scenarios
// (wish exceeding capacity, age exceeding the term limit) surface as zeroed
// fields and warning flags instead.
func Calculate(logger *zap.Logger, input Input, cfg config.SimulationConfig) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	n, err := normalize(input)
	if err != nil {
		return Result{}, err
	}

	// Stage 1: repayment capacity under the debt-to-income ceiling. Existing
	// debt beyond the ceiling clamps to zero, never negative.
	annualCapacity := mathutil.Max(0,
		mathutil.ApplyPercentage(n.totalIncome, cfg.DTIRatio)-n.existingAnnualPayment)
	monthlyPaymentCapacity := annualCapacity / constants.MonthsPerYear

	// Stage 2: maximum borrowable principal at the conservative screening rate
	// over the age-bounded term.
	maxTermYears := annuity.MaxTermYears(n.oldestAge())
	maxLoanAmount := annuity.PresentValue(
		monthlyPaymentCapacity,
		annuity.MonthlyRate(cfg.ScreeningInterestRate),
		maxTermYears*constants.MonthsPerYear,
	)

	// Stage 3: desired principal from the stated payment plus the
	// monthly-equivalent of the bonus installments, at the repayment rate.
	wishMonthlyTotal := n.wishMonthlyPayment + n.bonusAnnual()/constants.MonthsPerYear
	wishLoanAmount := annuity.PresentValue(
		wishMonthlyTotal,
		annuity.MonthlyRate(cfg.RepaymentInterestRate),
		n.wishPaymentYears*constants.MonthsPerYear,
	)
	totalBudget := wishLoanAmount + n.downPayment

	// Stage 4: budget decomposition by land ownership.
	var landCost, demolitionCost float64
	switch {
	case n.hasLand && n.hasExistingBuilding:
		demolitionCost = cfg.DemolitionCost
	case n.hasLand:
		// Owned land with no building: nothing to buy, nothing to demolish.
	case n.hasLandBudget:
		landCost = n.landBudget
	default:
		landCost = cfg.DefaultLandCost
	}
	miscCost := cfg.MiscCost
	buildingBudget := mathutil.Max(0, totalBudget-landCost-demolitionCost-miscCost)

	// Stage 5: tier selection and floor area. The stored unit price is the
	// tier's base price; option increases apply only to the division.
	tier := pricing.Select(cfg.UnitPriceTiers, buildingBudget)
	effectiveUnitPrice := tier.UnitPrice
	if n.usesTechnostructure {
		effectiveUnitPrice += cfg.TechnostructureUnitPriceIncrease
	}
	if n.usesAdditionalInsulation {
		effectiveUnitPrice += cfg.InsulationUnitPriceIncrease
	}
	estimatedTsubo := pricing.EstimateTsubo(buildingBudget, effectiveUnitPrice)

	result := Result{
		MaxLoanAmount:  maxLoanAmount,
		WishLoanAmount: wishLoanAmount,
		TotalBudget:    totalBudget,
		BuildingBudget: buildingBudget,
		LandCost:       landCost,
		DemolitionCost: demolitionCost,
		MiscCost:       miscCost,

		EstimatedTsubo:        estimatedTsubo,
		EstimatedSquareMeters: pricing.TsuboToSquareMeters(estimatedTsubo),
		UnitPricePerTsubo:     tier.UnitPrice,

		MonthlyPaymentCapacity: monthlyPaymentCapacity,
		DTIRatio:               resultDTIRatio(n),
		LoanRatio:              loanRatio(wishLoanAmount, maxLoanAmount),

		TotalPayment:        wishTotalPayment(n),
		MaxLoanTotalPayment: monthlyPaymentCapacity * float64(maxTermYears) * constants.MonthsPerYear,

		ScreeningInterestRate: cfg.ScreeningInterestRate,
		RepaymentInterestRate: cfg.RepaymentInterestRate,
		LoanTerm:              n.wishPaymentYears,
		MaxTermYears:          maxTermYears,

		Warnings: Warnings{
			ExceedsMaxLoan: wishLoanAmount > maxLoanAmount,
			ExceedsMaxTerm: n.wishPaymentYears > maxTermYears,
		},
	}
	result.TotalInterest = result.TotalPayment - wishLoanAmount
	result.MaxLoanTotalInterest = result.MaxLoanTotalPayment - maxLoanAmount

	if result.Warnings.ExceedsMaxLoan || result.Warnings.ExceedsMaxTerm {
		logger.Debug("simulation produced advisory warnings",
			zap.String("op", "simulation.Calculate"),
			zap.Bool("exceedsMaxLoan", result.Warnings.ExceedsMaxLoan),
			zap.Bool("exceedsMaxTerm", result.Warnings.ExceedsMaxTerm),
			zap.Float64("wishLoanAmount", wishLoanAmount),
			zap.Float64("maxLoanAmount", maxLoanAmount),
		)
	}

	return result, nil
}

// resultDTIRatio is the household's total debt service (existing plus desired,
// bonus included) as a percentage of income, clamped to a displayable band.
// Zero income reports zero rather than dividing.
func resultDTIRatio(n normalized) float64 {
	if n.totalIncome <= 0 {
		return 0
	}
	desiredAnnual := n.wishMonthlyPayment*constants.MonthsPerYear + n.bonusAnnual()
	ratio := mathutil.CalculatePercentage(n.existingAnnualPayment+desiredAnnual, n.totalIncome)
	return mathutil.Clamp(ratio, 0, constants.DTIRatioCap)
}

// loanRatio may exceed 1 when the wish exceeds capacity; that is the signal
// behind the exceedsMaxLoan warning, not a value to clamp away.
func loanRatio(wishLoanAmount, maxLoanAmount float64) float64 {
	if maxLoanAmount <= 0 {
		return 0
	}
	return mathutil.Max(0, wishLoanAmount/maxLoanAmount)
}

// wishTotalPayment is the nominal sum the applicant would pay over the wished
// term, monthly payments plus bonus installments.
func wishTotalPayment(n normalized) float64 {
	years := float64(n.wishPaymentYears)
	return n.wishMonthlyPayment*constants.MonthsPerYear*years + n.bonusAnnual()*years
}
