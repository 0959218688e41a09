package config

import (
	"fmt"

	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/pricing"
)

// Validate performs general validation of the simulation parameters and
// returns warnings. Degenerate configurations are never errors; the engine
// clamps and falls back instead (a zero DTI simply yields zero capacity).
func (c SimulationConfig) Validate() []string {
	var warnings []string

	if c.DTIRatio <= 0 {
		warnings = append(warnings, fmt.Sprintf("dtiRatio %.2f is not positive - repayment capacity will always be zero", c.DTIRatio))
	}
	if c.ScreeningInterestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("screeningInterestRate %.2f is negative", c.ScreeningInterestRate))
	}
	if c.RepaymentInterestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("repaymentInterestRate %.2f is negative", c.RepaymentInterestRate))
	}
	if len(c.UnitPriceTiers) == 0 {
		warnings = append(warnings, "unitPriceTiers is empty - estimated floor area will always be zero")
	} else if !pricing.Monotonic(c.UnitPriceTiers) {
		warnings = append(warnings, "unitPriceTiers unit prices are not non-decreasing with maxTsubo - tier selection may be inconsistent")
	}
	for _, tier := range c.UnitPriceTiers {
		if tier.UnitPrice <= 0 {
			warnings = append(warnings, fmt.Sprintf("unit price tier up to %.1f tsubo has non-positive unitPrice %.2f", tier.MaxTsubo, tier.UnitPrice))
		}
	}
	if c.DemolitionCost < 0 || c.DefaultLandCost < 0 || c.MiscCost < 0 {
		warnings = append(warnings, "cost constants should not be negative")
	}

	return warnings
}

// ValidateConfiguration validates the full configuration, currently just the
// simulation parameters.
func (conf *Configuration) ValidateConfiguration() []string {
	return conf.Simulation.Validate()
}
