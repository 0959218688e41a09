package format

import "testing"

func TestManYen(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Simple amount", 500.0, "500.00万円"},
		{"Thousands separator", 8637.097, "8,637.10万円"},
		{"Negative amount", -1234.56, "-1,234.56万円"},
		{"Zero", 0.0, "0.00万円"},
		{"Large amount", 1234567.891, "1,234,567.89万円"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ManYen(tt.amount); result != tt.expected {
				t.Errorf("ManYen(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Positive", 8213.206, "8,213.21"},
		{"Negative", -500.0, "-500.00"},
		{"Small", 0.5, "0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Amount(tt.amount); result != tt.expected {
				t.Errorf("Amount(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestArea(t *testing.T) {
	if result := Area(102.370, "tsubo"); result != "102.37 tsubo" {
		t.Errorf("Area() = %q, expected %q", result, "102.37 tsubo")
	}
	if result := Area(338.413, "m²"); result != "338.41 m²" {
		t.Errorf("Area() = %q, expected %q", result, "338.41 m²")
	}
}

func TestPercent(t *testing.T) {
	if result := Percent(35.0); result != "35.00%" {
		t.Errorf("Percent() = %q, expected %q", result, "35.00%")
	}
}
