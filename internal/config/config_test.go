package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/pricing"
)

const sampleConfigYAML = `simulation:
  screeningInterestRate: 3.0
  repaymentInterestRate: 0.8
  dtiRatio: 35.0
  unitPriceTiers:
    - maxTsubo: 30
      unitPrice: 65
    - maxTsubo: 40
      unitPrice: 70
    - maxTsubo: 50
      unitPrice: 75
  technostructureUnitPriceIncrease: 4.8
  insulationUnitPriceIncrease: 2.5
  demolitionCost: 500
  defaultLandCost: 1500
  miscCost: 300
logging:
  level: debug
  format: console
output:
  format: pretty
`

func TestLoadConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfigYAML), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Simulation.ScreeningInterestRate != 3.0 {
		t.Errorf("ScreeningInterestRate = %v, expected 3.0", conf.Simulation.ScreeningInterestRate)
	}
	if conf.Simulation.RepaymentInterestRate != 0.8 {
		t.Errorf("RepaymentInterestRate = %v, expected 0.8", conf.Simulation.RepaymentInterestRate)
	}
	if len(conf.Simulation.UnitPriceTiers) != 3 {
		t.Fatalf("expected 3 unit price tiers, got %d", len(conf.Simulation.UnitPriceTiers))
	}
	if conf.Simulation.UnitPriceTiers[1] != (pricing.Tier{MaxTsubo: 40, UnitPrice: 70}) {
		t.Errorf("middle tier = %+v, expected {40 70}", conf.Simulation.UnitPriceTiers[1])
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging config not decoded: %+v", conf.Logging)
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("output format = %q, expected pretty", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if conf.Simulation.DTIRatio != 35.0 {
		t.Errorf("DTIRatio = %v, expected 35.0", conf.Simulation.DTIRatio)
	}
	if conf.Simulation.MiscCost != 300 {
		t.Errorf("MiscCost = %v, expected 300", conf.Simulation.MiscCost)
	}
}

func TestDefaultSimulationConfig(t *testing.T) {
	cfg := DefaultSimulationConfig()

	if cfg.ScreeningInterestRate != 3.0 || cfg.RepaymentInterestRate != 0.8 || cfg.DTIRatio != 35.0 {
		t.Errorf("unexpected default rates: %+v", cfg)
	}
	if len(cfg.UnitPriceTiers) == 0 {
		t.Fatal("default config has no unit price tiers")
	}
	if warnings := cfg.Validate(); len(warnings) != 0 {
		t.Errorf("default config should validate cleanly, got warnings: %v", warnings)
	}
}

func TestParseKeyValues(t *testing.T) {
	cfg, err := ParseKeyValues(map[string]string{
		KeyScreeningInterestRate: "2.5",
		KeyDTIRatio:              "30",
		KeyUnitPriceTiers:        "35:68, 45:72",
		KeyMiscCost:              "250",
	})
	if err != nil {
		t.Fatalf("ParseKeyValues() error = %v", err)
	}

	if cfg.ScreeningInterestRate != 2.5 {
		t.Errorf("ScreeningInterestRate = %v, expected 2.5", cfg.ScreeningInterestRate)
	}
	if cfg.DTIRatio != 30 {
		t.Errorf("DTIRatio = %v, expected 30", cfg.DTIRatio)
	}
	if cfg.MiscCost != 250 {
		t.Errorf("MiscCost = %v, expected 250", cfg.MiscCost)
	}
	// Untouched keys keep their defaults.
	if cfg.RepaymentInterestRate != 0.8 {
		t.Errorf("RepaymentInterestRate = %v, expected default 0.8", cfg.RepaymentInterestRate)
	}
	expected := []pricing.Tier{{MaxTsubo: 35, UnitPrice: 68}, {MaxTsubo: 45, UnitPrice: 72}}
	if len(cfg.UnitPriceTiers) != 2 || cfg.UnitPriceTiers[0] != expected[0] || cfg.UnitPriceTiers[1] != expected[1] {
		t.Errorf("UnitPriceTiers = %+v, expected %+v", cfg.UnitPriceTiers, expected)
	}
}

func TestParseKeyValuesErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"Malformed float", map[string]string{KeyDTIRatio: "abc"}},
		{"Malformed tier entry", map[string]string{KeyUnitPriceTiers: "30-65"}},
		{"Malformed tier price", map[string]string{KeyUnitPriceTiers: "30:x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseKeyValues(tt.values); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SimulationConfig)
		fragment string
	}{
		{
			name:     "Zero DTI",
			mutate:   func(c *SimulationConfig) { c.DTIRatio = 0 },
			fragment: "dtiRatio",
		},
		{
			name:     "Empty tiers",
			mutate:   func(c *SimulationConfig) { c.UnitPriceTiers = nil },
			fragment: "unitPriceTiers is empty",
		},
		{
			name: "Non-monotonic tiers",
			mutate: func(c *SimulationConfig) {
				c.UnitPriceTiers = []pricing.Tier{
					{MaxTsubo: 30, UnitPrice: 75},
					{MaxTsubo: 40, UnitPrice: 70},
				}
			},
			fragment: "not non-decreasing",
		},
		{
			name:     "Negative screening rate",
			mutate:   func(c *SimulationConfig) { c.ScreeningInterestRate = -1 },
			fragment: "screeningInterestRate",
		},
		{
			name:     "Negative cost constant",
			mutate:   func(c *SimulationConfig) { c.DemolitionCost = -100 },
			fragment: "cost constants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSimulationConfig()
			tt.mutate(&cfg)

			warnings := cfg.Validate()
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.fragment) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected warning containing %q, got %v", tt.fragment, warnings)
			}
		})
	}
}
