// Package config defines the data structures related to configuration and
// includes functions for loading and validating the simulation config.
package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/pricing"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the simulation engine.
type Configuration struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// SimulationConfig holds the rate and pricing parameters of the affordability
// model. All monetary figures are in 万円; rates are annual percentages.
type SimulationConfig struct {
	ScreeningInterestRate            float64        `yaml:"screeningInterestRate" json:"screeningInterestRate" mapstructure:"screeningInterestRate"`
	RepaymentInterestRate            float64        `yaml:"repaymentInterestRate" json:"repaymentInterestRate" mapstructure:"repaymentInterestRate"`
	DTIRatio                         float64        `yaml:"dtiRatio" json:"dtiRatio" mapstructure:"dtiRatio"`
	UnitPriceTiers                   []pricing.Tier `yaml:"unitPriceTiers" json:"unitPriceTiers" mapstructure:"unitPriceTiers"`
	TechnostructureUnitPriceIncrease float64        `yaml:"technostructureUnitPriceIncrease" json:"technostructureUnitPriceIncrease" mapstructure:"technostructureUnitPriceIncrease"`
	InsulationUnitPriceIncrease      float64        `yaml:"insulationUnitPriceIncrease" json:"insulationUnitPriceIncrease" mapstructure:"insulationUnitPriceIncrease"`
	DemolitionCost                   float64        `yaml:"demolitionCost" json:"demolitionCost" mapstructure:"demolitionCost"`
	DefaultLandCost                  float64        `yaml:"defaultLandCost" json:"defaultLandCost" mapstructure:"defaultLandCost"`
	MiscCost                         float64        `yaml:"miscCost" json:"miscCost" mapstructure:"miscCost"`
}

// DefaultSimulationConfig returns the seeded production parameters used when
// no external configuration is supplied.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		ScreeningInterestRate: 3.0,
		RepaymentInterestRate: 0.8,
		DTIRatio:              35.0,
		UnitPriceTiers: []pricing.Tier{
			{MaxTsubo: 30, UnitPrice: 65},
			{MaxTsubo: 40, UnitPrice: 70},
			{MaxTsubo: 50, UnitPrice: 75},
		},
		TechnostructureUnitPriceIncrease: 4.8,
		InsulationUnitPriceIncrease:      2.5,
		DemolitionCost:                   500,
		DefaultLandCost:                  1500,
		MiscCost:                         300,
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decodeConfiguration(v)
}

// LoadConfigurationFromReader loads the YAML-formatted configuration from an
// in-memory source, e.g. a request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decodeConfiguration(v)
}

func decodeConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}
