package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Scarlet1107/mitsumori-gate-sub000/pkg/pricing"
)

// Key names used by the external key-value configuration store. Values are
// strings and are parsed to floats here; tiers are encoded as
// "maxTsubo:unitPrice" pairs joined by commas.
const (
	KeyScreeningInterestRate            = "screeningInterestRate"
	KeyRepaymentInterestRate            = "repaymentInterestRate"
	KeyDTIRatio                         = "dtiRatio"
	KeyUnitPriceTiers                   = "unitPriceTiers"
	KeyTechnostructureUnitPriceIncrease = "technostructureUnitPriceIncrease"
	KeyInsulationUnitPriceIncrease      = "insulationUnitPriceIncrease"
	KeyDemolitionCost                   = "demolitionCost"
	KeyDefaultLandCost                  = "defaultLandCost"
	KeyMiscCost                         = "miscCost"
)

// ParseKeyValues overlays string-valued configuration entries onto the default
// simulation config. Unknown keys are ignored; malformed values error with the
// offending key named.
func ParseKeyValues(values map[string]string) (SimulationConfig, error) {
	cfg := DefaultSimulationConfig()

	for key, raw := range values {
		var err error
		switch key {
		case KeyScreeningInterestRate:
			cfg.ScreeningInterestRate, err = parseFloat(key, raw)
		case KeyRepaymentInterestRate:
			cfg.RepaymentInterestRate, err = parseFloat(key, raw)
		case KeyDTIRatio:
			cfg.DTIRatio, err = parseFloat(key, raw)
		case KeyUnitPriceTiers:
			cfg.UnitPriceTiers, err = parseTiers(raw)
		case KeyTechnostructureUnitPriceIncrease:
			cfg.TechnostructureUnitPriceIncrease, err = parseFloat(key, raw)
		case KeyInsulationUnitPriceIncrease:
			cfg.InsulationUnitPriceIncrease, err = parseFloat(key, raw)
		case KeyDemolitionCost:
			cfg.DemolitionCost, err = parseFloat(key, raw)
		case KeyDefaultLandCost:
			cfg.DefaultLandCost, err = parseFloat(key, raw)
		case KeyMiscCost:
			cfg.MiscCost, err = parseFloat(key, raw)
		}
		if err != nil {
			return SimulationConfig{}, err
		}
	}

	return cfg, nil
}

func parseFloat(key, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, raw)
	}
	return value, nil
}

func parseTiers(raw string) ([]pricing.Tier, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, ",")
	tiers := make([]pricing.Tier, 0, len(parts))
	for _, part := range parts {
		fields := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid tier entry %q, expected maxTsubo:unitPrice", part)
		}
		maxTsubo, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tier maxTsubo in %q", part)
		}
		unitPrice, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tier unitPrice in %q", part)
		}
		tiers = append(tiers, pricing.Tier{MaxTsubo: maxTsubo, UnitPrice: unitPrice})
	}

	return tiers, nil
}
