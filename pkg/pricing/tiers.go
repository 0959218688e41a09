// Package pricing models the tiered construction unit-price table and derives
// estimated floor area from a building budget.
package pricing

import (
	"sort"

	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/constants"
)

// Tier maps a floor-area ceiling to a base construction unit price (万円/tsubo).
type Tier struct {
	MaxTsubo  float64 `yaml:"maxTsubo" json:"maxTsubo" mapstructure:"maxTsubo"`
	UnitPrice float64 `yaml:"unitPrice" json:"unitPrice" mapstructure:"unitPrice"`
}

// Select picks the base unit-price tier for a building budget: the first tier,
// in ascending MaxTsubo order, whose budget ceiling (MaxTsubo x UnitPrice)
// accommodates the budget. A budget above every ceiling saturates at the
// largest tier; an empty table degenerates to a zero tier. The input slice is
// not modified and its ordering is not assumed.
func Select(tiers []Tier, buildingBudget float64) Tier {
	if len(tiers) == 0 {
		return Tier{}
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MaxTsubo < sorted[j].MaxTsubo
	})

	for _, tier := range sorted {
		if buildingBudget <= tier.MaxTsubo*tier.UnitPrice {
			return tier
		}
	}
	return sorted[len(sorted)-1]
}

// EstimateTsubo divides the building budget by the effective unit price,
// guarding against a zero or negative price.
func EstimateTsubo(buildingBudget, effectiveUnitPrice float64) float64 {
	if effectiveUnitPrice <= 0 {
		return 0
	}
	return buildingBudget / effectiveUnitPrice
}

// TsuboToSquareMeters converts a floor area in tsubo to square meters.
func TsuboToSquareMeters(tsubo float64) float64 {
	return tsubo * constants.TsuboToSquareMeters
}

// Monotonic reports whether the tiers, sorted ascending by MaxTsubo, are also
// non-decreasing in UnitPrice. Non-monotonic tables can mis-select because the
// boundary check conflates the area ceiling with a budget ceiling.
func Monotonic(tiers []Tier) bool {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MaxTsubo < sorted[j].MaxTsubo
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].UnitPrice < sorted[i-1].UnitPrice {
			return false
		}
	}
	return true
}
