// Package store provides the persistence collaborators of the simulation
// engine: a repository for completed simulation records and a cache for
// rendered results. Both sit behind interfaces so the engine and server never
// depend on a concrete backend.
package store

import (
	"context"
	"time"

	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/simulation"
)

// Record pairs a simulation input with its result for staff review.
type Record struct {
	Input     simulation.Input
	Result    simulation.Result
	CreatedAt time.Time
}

// SimulationRepository persists completed simulations. Saves are advisory:
// callers log failures and still return the result to the customer.
type SimulationRepository interface {
	Save(ctx context.Context, input simulation.Input, result simulation.Result) error
}

// ResultCache caches rendered simulation responses by key.
type ResultCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
