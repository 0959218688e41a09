package store

import (
	"context"
	"sync"
	"time"

	"github.com/Scarlet1107/mitsumori-gate-sub000/internal/simulation"
)

// MemoryRepository is an in-memory implementation of SimulationRepository.
// It is the default backend and the one used in tests.
type MemoryRepository struct {
	mu   sync.Mutex
	data []Record
}

// NewMemoryRepository creates a new in-memory simulation repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save stores the simulation record in memory.
func (r *MemoryRepository) Save(_ context.Context, input simulation.Input, result simulation.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, Record{Input: input, Result: result, CreatedAt: time.Now()})
	return nil
}

// All returns a copy of every stored record.
func (r *MemoryRepository) All() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.data))
	copy(out, r.data)
	return out
}
