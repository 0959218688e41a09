package simulation

import (
	"math"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	n, err := normalize(Input{Age: 40})
	if err != nil {
		t.Fatalf("normalize() error = %v", err)
	}

	if n.spouseAge != 40 {
		t.Errorf("spouseAge = %d, expected to default to age", n.spouseAge)
	}
	if n.totalIncome != 0 || n.existingAnnualPayment != 0 {
		t.Errorf("income/debt should default to zero: %+v", n)
	}
	if n.bonusPayment != 0 {
		t.Errorf("bonusPayment = %v, expected 0 without usesBonus", n.bonusPayment)
	}
}

func TestNormalizeSpouseAge(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		expected  int
		oldestAge int
	}{
		{
			name:      "Spouse age provided",
			input:     Input{Age: 35, HasSpouse: true, SpouseAge: intPtr(42)},
			expected:  42,
			oldestAge: 42,
		},
		{
			name:      "Spouse exists but age absent defaults to own age",
			input:     Input{Age: 35, HasSpouse: true},
			expected:  35,
			oldestAge: 35,
		},
		{
			name:      "Stray spouse age without a spouse is ignored",
			input:     Input{Age: 35, SpouseAge: intPtr(70)},
			expected:  35,
			oldestAge: 35,
		},
		{
			name:      "Younger spouse does not raise the bound",
			input:     Input{Age: 35, HasSpouse: true, SpouseAge: intPtr(25)},
			expected:  25,
			oldestAge: 35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := normalize(tt.input)
			if err != nil {
				t.Fatalf("normalize() error = %v", err)
			}
			if n.spouseAge != tt.expected {
				t.Errorf("spouseAge = %d, expected %d", n.spouseAge, tt.expected)
			}
			if n.oldestAge() != tt.oldestAge {
				t.Errorf("oldestAge() = %d, expected %d", n.oldestAge(), tt.oldestAge)
			}
		})
	}
}

func TestNormalizeAggregates(t *testing.T) {
	n, err := normalize(Input{
		Age:               30,
		HasSpouse:         true,
		OwnIncome:         600,
		SpouseIncome:      400,
		OwnLoanPayment:    4,
		SpouseLoanPayment: 2,
		UsesBonus:         true,
		BonusPayment:      80,
	})
	if err != nil {
		t.Fatalf("normalize() error = %v", err)
	}

	if n.totalIncome != 1000 {
		t.Errorf("totalIncome = %v, expected 1000", n.totalIncome)
	}
	if n.existingAnnualPayment != 72 {
		t.Errorf("existingAnnualPayment = %v, expected 72", n.existingAnnualPayment)
	}
	if n.bonusAnnual() != 160 {
		t.Errorf("bonusAnnual() = %v, expected 160 (two installments)", n.bonusAnnual())
	}
}

func TestNormalizeNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"NaN income", Input{Age: 30, OwnIncome: math.NaN()}},
		{"Infinite down payment", Input{Age: 30, DownPayment: math.Inf(1)}},
		{"NaN bonus", Input{Age: 30, BonusPayment: math.NaN()}},
		{"Negative infinity land budget", Input{Age: 30, LandBudget: math.Inf(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := normalize(tt.input); err == nil {
				t.Error("expected error for non-finite field")
			}
		})
	}
}
