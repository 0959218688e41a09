// Package simulation implements the loan affordability and budget simulation
// engine: household income, existing debt, and construction preferences go in;
// borrowing capacity, a budget decomposition, and an estimated floor area come
// out. The engine is a pure function of one Input and one SimulationConfig.
package simulation

import (
	"fmt"

	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/constants"
	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/mathutil"
)

// Input holds one household's data for a single calculation. Optional fields
// default to their zero values; SpouseAge is a pointer so that an absent value
// can fall back to Age when a spouse exists. All monetary figures are in 万円
// and loan payments are monthly.
type Input struct {
	Age       int  `yaml:"age" json:"age"`
	HasSpouse bool `yaml:"hasSpouse,omitempty" json:"hasSpouse,omitempty"`
	SpouseAge *int `yaml:"spouseAge,omitempty" json:"spouseAge,omitempty"`

	OwnIncome         float64 `yaml:"ownIncome" json:"ownIncome"`
	SpouseIncome      float64 `yaml:"spouseIncome,omitempty" json:"spouseIncome,omitempty"`
	OwnLoanPayment    float64 `yaml:"ownLoanPayment,omitempty" json:"ownLoanPayment,omitempty"`
	SpouseLoanPayment float64 `yaml:"spouseLoanPayment,omitempty" json:"spouseLoanPayment,omitempty"`

	DownPayment        float64 `yaml:"downPayment" json:"downPayment"`
	WishMonthlyPayment float64 `yaml:"wishMonthlyPayment" json:"wishMonthlyPayment"`
	WishPaymentYears   int     `yaml:"wishPaymentYears" json:"wishPaymentYears"`

	UsesBonus    bool    `yaml:"usesBonus,omitempty" json:"usesBonus,omitempty"`
	BonusPayment float64 `yaml:"bonusPayment,omitempty" json:"bonusPayment,omitempty"`

	HasLand                  bool    `yaml:"hasLand,omitempty" json:"hasLand,omitempty"`
	HasExistingBuilding      bool    `yaml:"hasExistingBuilding,omitempty" json:"hasExistingBuilding,omitempty"`
	HasLandBudget            bool    `yaml:"hasLandBudget,omitempty" json:"hasLandBudget,omitempty"`
	LandBudget               float64 `yaml:"landBudget,omitempty" json:"landBudget,omitempty"`
	UsesTechnostructure      bool    `yaml:"usesTechnostructure,omitempty" json:"usesTechnostructure,omitempty"`
	UsesAdditionalInsulation bool    `yaml:"usesAdditionalInsulation,omitempty" json:"usesAdditionalInsulation,omitempty"`
}

// normalized is the fully-defaulted form of an Input. Every downstream formula
// reads from this struct, so all default handling lives in one place.
type normalized struct {
	age       int
	spouseAge int

	totalIncome           float64
	existingAnnualPayment float64

	downPayment        float64
	wishMonthlyPayment float64
	wishPaymentYears   int

	// bonusPayment is the effective per-installment bonus amount; zero unless
	// the applicant opted into bonus payments, regardless of any stray value.
	bonusPayment float64

	hasLand                  bool
	hasExistingBuilding      bool
	hasLandBudget            bool
	landBudget               float64
	usesTechnostructure      bool
	usesAdditionalInsulation bool
}

// bonusAnnual is the yearly bonus repayment, paid in semi-annual installments.
func (n normalized) bonusAnnual() float64 {
	return n.bonusPayment * constants.BonusInstallmentsPerYear
}

// oldestAge is the age that bounds the loan term.
func (n normalized) oldestAge() int {
	if n.spouseAge > n.age {
		return n.spouseAge
	}
	return n.age
}

// normalize applies the defaulting table to a partially-populated Input and
// rejects non-finite numeric fields with a descriptive error. Financially
// infeasible but finite inputs pass through untouched; the engine reports
// those via warnings, never errors.
func normalize(input Input) (normalized, error) {
	numeric := map[string]float64{
		"ownIncome":          input.OwnIncome,
		"spouseIncome":       input.SpouseIncome,
		"ownLoanPayment":     input.OwnLoanPayment,
		"spouseLoanPayment":  input.SpouseLoanPayment,
		"downPayment":        input.DownPayment,
		"wishMonthlyPayment": input.WishMonthlyPayment,
		"bonusPayment":       input.BonusPayment,
		"landBudget":         input.LandBudget,
	}
	for name, value := range numeric {
		if !mathutil.IsFinite(value) {
			return normalized{}, fmt.Errorf("input field %s is not a finite number", name)
		}
	}

	n := normalized{
		age:                      input.Age,
		spouseAge:                input.Age,
		totalIncome:              input.OwnIncome + input.SpouseIncome,
		existingAnnualPayment:    (input.OwnLoanPayment + input.SpouseLoanPayment) * constants.MonthsPerYear,
		downPayment:              input.DownPayment,
		wishMonthlyPayment:       input.WishMonthlyPayment,
		wishPaymentYears:         input.WishPaymentYears,
		hasLand:                  input.HasLand,
		hasExistingBuilding:      input.HasExistingBuilding,
		hasLandBudget:            input.HasLandBudget,
		landBudget:               input.LandBudget,
		usesTechnostructure:      input.UsesTechnostructure,
		usesAdditionalInsulation: input.UsesAdditionalInsulation,
	}

	if input.HasSpouse && input.SpouseAge != nil {
		n.spouseAge = *input.SpouseAge
	}

	if input.UsesBonus {
		n.bonusPayment = input.BonusPayment
	}

	return n, nil
}
