package cleaning

import (
	"fmt"
	"sync"
)

// Registry holds cleaners by ID, keeping registration order for
// deterministic listing.
type Registry struct {
	mu       sync.RWMutex
	cleaners map[string]Cleaner
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cleaners: make(map[string]Cleaner),
		order:    make([]string, 0),
	}
}

// DefaultRegistry returns a registry with every built-in cleaner
// registered under its canonical ID.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []Cleaner{
		NormalizeColumns(),
		StripWhitespace(),
		DropEmptyRows(),
		DropEmptyCols(),
		StandardizeNA(),
		Deduplicate(),
		InferTypes(),
	} {
		// Built-in IDs are unique, registration cannot fail.
		_ = r.Register(c)
	}
	return r
}

// Register adds a cleaner to the registry.
func (r *Registry) Register(c Cleaner) error {
	if c == nil {
		return fmt.Errorf("cannot register nil cleaner")
	}
	id := c.ID()
	if id == "" {
		return fmt.Errorf("cleaner ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cleaners[id]; exists {
		return fmt.Errorf("cleaner with ID %s already registered", id)
	}

	r.cleaners[id] = c
	r.order = append(r.order, id)
	return nil
}

// Get retrieves a cleaner by ID.
func (r *Registry) Get(id string) (Cleaner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.cleaners[id]
	if !exists {
		return nil, fmt.Errorf("cleaner with ID %s not found", id)
	}
	return c, nil
}

// Has checks if a cleaner is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.cleaners[id]
	return exists
}

// ListIDs returns all registered cleaner IDs in registration order.
func (r *Registry) ListIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Count returns the number of registered cleaners.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.cleaners)
}

// Resolve maps a list of cleaner IDs to cleaners, failing on the first
// unknown ID.
func (r *Registry) Resolve(ids []string) ([]Cleaner, error) {
	out := make([]Cleaner, 0, len(ids))
	for _, id := range ids {
		c, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
