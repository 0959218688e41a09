package pricing

import (
	"math"
	"testing"
)

func standardTiers() []Tier {
	return []Tier{
		{MaxTsubo: 30, UnitPrice: 65},
		{MaxTsubo: 40, UnitPrice: 70},
		{MaxTsubo: 50, UnitPrice: 75},
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name           string
		tiers          []Tier
		buildingBudget float64
		expected       Tier
	}{
		{
			name:           "Budget fits the smallest tier",
			tiers:          standardTiers(),
			buildingBudget: 1500,
			expected:       Tier{MaxTsubo: 30, UnitPrice: 65},
		},
		{
			name:           "Budget lands in the middle tier",
			tiers:          standardTiers(),
			buildingBudget: 2500,
			expected:       Tier{MaxTsubo: 40, UnitPrice: 70},
		},
		{
			name:           "Budget exactly at a tier ceiling stays in that tier",
			tiers:          standardTiers(),
			buildingBudget: 30 * 65,
			expected:       Tier{MaxTsubo: 30, UnitPrice: 65},
		},
		{
			name:           "Budget above every ceiling saturates at the top tier",
			tiers:          standardTiers(),
			buildingBudget: 99999,
			expected:       Tier{MaxTsubo: 50, UnitPrice: 75},
		},
		{
			name: "Unsorted table is tolerated",
			tiers: []Tier{
				{MaxTsubo: 50, UnitPrice: 75},
				{MaxTsubo: 30, UnitPrice: 65},
				{MaxTsubo: 40, UnitPrice: 70},
			},
			buildingBudget: 2500,
			expected:       Tier{MaxTsubo: 40, UnitPrice: 70},
		},
		{
			name:           "Empty table degenerates to a zero tier",
			tiers:          nil,
			buildingBudget: 5000,
			expected:       Tier{},
		},
		{
			name:           "Zero budget selects the smallest tier",
			tiers:          standardTiers(),
			buildingBudget: 0,
			expected:       Tier{MaxTsubo: 30, UnitPrice: 65},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Select(tt.tiers, tt.buildingBudget)
			if result != tt.expected {
				t.Errorf("Select() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	tiers := []Tier{
		{MaxTsubo: 50, UnitPrice: 75},
		{MaxTsubo: 30, UnitPrice: 65},
	}
	Select(tiers, 1000)
	if tiers[0].MaxTsubo != 50 || tiers[1].MaxTsubo != 30 {
		t.Errorf("Select reordered the caller's tier slice: %+v", tiers)
	}
}

func TestEstimateTsubo(t *testing.T) {
	tests := []struct {
		name               string
		buildingBudget     float64
		effectiveUnitPrice float64
		expected           float64
	}{
		{"Standard division", 7913.206, 77.3, 102.370},
		{"Zero unit price guards divide-by-zero", 5000, 0, 0},
		{"Negative unit price guards as well", 5000, -10, 0},
		{"Zero budget", 0, 70, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateTsubo(tt.buildingBudget, tt.effectiveUnitPrice)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EstimateTsubo(%v, %v) = %.3f, expected %.3f",
					tt.buildingBudget, tt.effectiveUnitPrice, result, tt.expected)
			}
		})
	}
}

func TestTsuboToSquareMeters(t *testing.T) {
	result := TsuboToSquareMeters(100)
	if math.Abs(result-330.5785) > 0.0001 {
		t.Errorf("TsuboToSquareMeters(100) = %.4f, expected 330.5785", result)
	}
}

func TestMonotonic(t *testing.T) {
	tests := []struct {
		name     string
		tiers    []Tier
		expected bool
	}{
		{"Standard ascending table", standardTiers(), true},
		{"Empty table", nil, true},
		{"Single tier", []Tier{{MaxTsubo: 40, UnitPrice: 70}}, true},
		{
			name: "Unit price decreasing with area is flagged",
			tiers: []Tier{
				{MaxTsubo: 30, UnitPrice: 75},
				{MaxTsubo: 40, UnitPrice: 70},
			},
			expected: false,
		},
		{
			name: "Unsorted but monotonic after sorting",
			tiers: []Tier{
				{MaxTsubo: 40, UnitPrice: 70},
				{MaxTsubo: 30, UnitPrice: 65},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Monotonic(tt.tiers); result != tt.expected {
				t.Errorf("Monotonic() = %v, expected %v", result, tt.expected)
			}
		})
	}
}
