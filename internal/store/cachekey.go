package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/config"
	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/simulation"
)

// CacheKey derives a stable key for a simulation request from the input and
// the configuration it runs against, so a config change never serves stale
// results.
func CacheKey(input simulation.Input, cfg config.SimulationConfig) (string, error) {
	payload := struct {
		Input  simulation.Input        `json:"input"`
		Config config.SimulationConfig `json:"config"`
	}{Input: input, Config: cfg}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return "simulation:" + hex.EncodeToString(sum[:]), nil
}
