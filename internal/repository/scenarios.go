// Package repository provides the process-local scenario store.
//
// Persistence beyond the running process is out of scope for this service,
// so the store is a mutex-guarded map. Insertion order is preserved because
// the comparison table treats input order as the tie-break.
package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

// ErrScenarioNotFound is returned when the requested scenario id is unknown.
var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioRepository defines the interface for scenario storage.
type ScenarioRepository interface {
	// Create stores a scenario and returns it with its assigned id.
	Create(s model.Scenario) model.Scenario
	// List returns all scenarios in insertion order.
	List() []model.Scenario
	// Get returns the scenario with the given id.
	Get(id string) (model.Scenario, error)
	// Update replaces the scenario with the given id, keeping the id.
	Update(id string, s model.Scenario) (model.Scenario, error)
	// Delete removes the scenario with the given id.
	Delete(id string) error
}

// MemoryScenarioRepository implements ScenarioRepository with an in-memory
// map. Safe for concurrent use.
type MemoryScenarioRepository struct {
	mu        sync.RWMutex
	scenarios map[string]model.Scenario
	order     []string
}

// NewMemoryScenarioRepository creates an empty MemoryScenarioRepository.
func NewMemoryScenarioRepository() *MemoryScenarioRepository {
	return &MemoryScenarioRepository{
		scenarios: make(map[string]model.Scenario),
	}
}

// Create stores a scenario and returns it with a fresh uuid.
func (r *MemoryScenarioRepository) Create(s model.Scenario) model.Scenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = uuid.New().String()
	r.scenarios[s.ID] = s
	r.order = append(r.order, s.ID)

	return s
}

// List returns all scenarios in insertion order.
func (r *MemoryScenarioRepository) List() []model.Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Scenario, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.scenarios[id])
	}

	return out
}

// Get returns the scenario with the given id.
func (r *MemoryScenarioRepository) Get(id string) (model.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scenarios[id]
	if !ok {
		return model.Scenario{}, ErrScenarioNotFound
	}

	return s, nil
}

// Update replaces the stored scenario, preserving its id and position.
func (r *MemoryScenarioRepository) Update(id string, s model.Scenario) (model.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scenarios[id]; !ok {
		return model.Scenario{}, ErrScenarioNotFound
	}

	s.ID = id
	r.scenarios[id] = s

	return s, nil
}

// Delete removes the scenario with the given id.
func (r *MemoryScenarioRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scenarios[id]; !ok {
		return ErrScenarioNotFound
	}

	delete(r.scenarios, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
